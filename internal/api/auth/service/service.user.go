// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "creator_studio/internal/api/auth/dto"
	models "creator_studio/internal/api/auth/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới với vai trò client.
// Email phải chưa tồn tại; mật khẩu được trộn salt rồi hash bằng bcrypt.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (models.User, error) {
	var zero models.User

	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeValidationInput, "Email đã được sử dụng", common.StatusConflict, nil)
	}

	salt := uuid.New().String()
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password+salt), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, nil)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Salt:     salt,
		Role:     models.RoleClient,
	}
	if input.ClientID != "" {
		clientID, err := primitive.ObjectIDFromHex(input.ClientID)
		if err != nil {
			return zero, common.ErrInvalidFormat
		}
		user.ClientID = clientID
	}

	return s.InsertOne(ctx, user)
}

// Login xác thực email/mật khẩu, phát hành JWT và lưu token vào user.
// Token được ký HS256, hết hạn sau 72 giờ.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (models.User, string, error) {
	var zero models.User

	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return zero, "", common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return zero, "", common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password+user.Salt)); err != nil {
		return zero, "", common.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID.Hex(),
		"role":   user.Role,
		"exp":    time.Now().Add(72 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(global.MongoDB_ServerConfig.JwtSecret))
	if err != nil {
		return zero, "", common.NewError(common.ErrCodeInternalServer, "Không thể phát hành token", common.StatusInternalServerError, nil)
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": signed},
	})
	if err != nil {
		return zero, "", err
	}

	return updated, signed, nil
}

// Logout xóa token của phiên đăng nhập hiện tại
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": ""},
	})
	return err
}

// FindByToken tìm user theo token của phiên đăng nhập.
// Token đồng thời được verify chữ ký và hạn dùng.
func (s *UserService) FindByToken(ctx context.Context, tokenString string) (models.User, error) {
	var zero models.User

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return zero, common.ErrTokenInvalid
	}

	user, err := s.FindOne(ctx, bson.M{"token": tokenString}, nil)
	if err != nil {
		// Token hợp lệ về chữ ký nhưng đã bị thu hồi (logout)
		return zero, common.ErrTokenInvalid
	}

	return user, nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword+user.Salt)); err != nil {
		return common.ErrInvalidCredentials
	}

	salt := uuid.New().String()
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword+salt), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, nil)
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": string(hashed),
			"salt":     salt,
		},
		Unset: map[string]interface{}{"token": ""}, // Buộc đăng nhập lại sau khi đổi mật khẩu
	})
	return err
}

// SetBlock khóa hoặc mở khóa người dùng theo email (admin)
func (s *UserService) SetBlock(ctx context.Context, email string, block bool, note string) (models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return user, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   block,
			"blockNote": note,
		},
	}
	if block {
		// Thu hồi phiên đăng nhập khi khóa
		update.Unset = map[string]interface{}{"token": ""}
	}

	return s.UpdateById(ctx, user.ID, update)
}
