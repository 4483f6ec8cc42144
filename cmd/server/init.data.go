package main

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authmodels "creator_studio/internal/api/auth/models"
	authsvc "creator_studio/internal/api/auth/service"
	tenantmodels "creator_studio/internal/api/tenant/models"
	tenantsvc "creator_studio/internal/api/tenant/service"
	"creator_studio/internal/global"
	"creator_studio/internal/logger"
)

// InitDefaultData tạo dữ liệu khởi đầu: tài khoản admin (nếu được cấu hình)
// và một client demo kèm hồ sơ kênh khi chạy ở chế độ init.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	seedAdminUser()

	if global.MongoDB_ServerConfig.InitMode {
		seedDemoClient()
	}

	log.Info("✅ [INIT] InitDefaultData completed")
}

// seedAdminUser tạo tài khoản admin từ ADMIN_EMAIL/ADMIN_PASSWORD nếu hệ thống chưa có admin.
// Bỏ trống ADMIN_PASSWORD thì không seed.
func seedAdminUser() {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminPassword == "" {
		log.Info("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}

	ctx := context.TODO()
	exists, err := userService.DocumentExists(ctx, bson.M{"role": authmodels.RoleAdmin})
	if err != nil {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}
	if exists {
		log.Info("Admin user already exists, skipping seed")
		return
	}

	salt := uuid.New().String()
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword+salt), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin, err := userService.InsertOne(ctx, authmodels.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Salt:     salt,
		Role:     authmodels.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Infof("Seeded admin user %s (ID: %s)", admin.Email, admin.ID.Hex())
}

// seedDemoClient tạo một client demo và hồ sơ kênh mặc định để thử nghiệm pipeline
func seedDemoClient() {
	log := logger.GetAppLogger()

	clientService, err := tenantsvc.NewClientService()
	if err != nil {
		log.Fatalf("Failed to create client service: %v", err)
	}

	ctx := context.TODO()
	exists, err := clientService.DocumentExists(ctx, bson.M{"name": "Demo Client"})
	if err != nil {
		log.Fatalf("Failed to check for demo client: %v", err)
	}
	if exists {
		log.Info("Demo client already exists, skipping seed")
		return
	}

	client, err := clientService.InsertOne(ctx, tenantmodels.Client{
		Name:         "Demo Client",
		ContactEmail: "demo@creatorstudio.local",
		Status:       tenantmodels.ClientStatusActive,
		Notes:        "Client demo tạo bởi init mode",
	})
	if err != nil {
		log.Fatalf("Failed to seed demo client: %v", err)
	}

	profileService, err := tenantsvc.NewChannelProfileService()
	if err != nil {
		log.Fatalf("Failed to create channel profile service: %v", err)
	}

	if _, err := profileService.UpsertForClient(ctx, client.ID, tenantmodels.ChannelProfile{
		ChannelName:        "Demo Channel",
		Topic:              "Khoa học thường thức",
		Audience:           "Người xem phổ thông",
		Tone:               "Thân thiện, dễ hiểu",
		Language:           "vi",
		AutomationLevel:    tenantmodels.AutomationManual,
		ThumbnailsPerShort: 3,
	}); err != nil {
		log.Fatalf("Failed to seed demo channel profile: %v", err)
	}

	log.Infof("Seeded demo client (ID: %s) with channel profile", client.ID.Hex())
}
