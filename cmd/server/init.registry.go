package main

import (
	"context"

	"creator_studio/config"
	notifysvc "creator_studio/internal/api/notification/service"
	"creator_studio/internal/database"
	"creator_studio/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")

	// Tạo các index cần thiết (unique, compound) cho các collection
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.EnsureIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to ensure indexes: %v", err)
	} else {
		logrus.Info("Ensured indexes")
	}

	// Đăng ký handler ghi activity log cho các sự kiện thay đổi dữ liệu
	if err := notifysvc.RegisterDataChangeHandler(); err != nil {
		logrus.Fatalf("Failed to register data change handler: %v", err)
	}
	logrus.Info("Registered activity log handler")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Clients,
		global.MongoDB_ColNames.ChannelProfiles,
		global.MongoDB_ColNames.PlatformConnections,
		global.MongoDB_ColNames.Submissions,
		global.MongoDB_ColNames.Assets,
		global.MongoDB_ColNames.Deliverables,
		global.MongoDB_ColNames.VideoTasks,
		global.MongoDB_ColNames.PublishingTasks,
		global.MongoDB_ColNames.FvsIdeas,
		global.MongoDB_ColNames.Notifications,
		global.MongoDB_ColNames.ActivityLogs,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
