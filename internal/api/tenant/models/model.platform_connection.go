package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các nền tảng đăng nội dung được hỗ trợ
const (
	PlatformYoutube  = "youtube"
	PlatformTiktok   = "tiktok"
	PlatformFacebook = "facebook"
)

// Trạng thái kết nối nền tảng
const (
	ConnectionStatusConnected    = "connected"
	ConnectionStatusDisconnected = "disconnected"
	ConnectionStatusError        = "error"
)

// PlatformConnection lưu trạng thái kết nối của một client tới một nền tảng đăng bài.
// Token thật không lưu ở đây, chỉ lưu tham chiếu tới secret store.
type PlatformConnection struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerClientID  primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"`
	Platform       string             `json:"platform" bson:"platform" validate:"required"` // youtube | tiktok | facebook
	Status         string             `json:"status" bson:"status" default:"disconnected"`  // connected | disconnected | error
	AccountName    string             `json:"accountName,omitempty" bson:"accountName,omitempty"`
	AccessTokenRef string             `json:"-" bson:"accessTokenRef,omitempty"` // Tham chiếu tới secret store
	LastError      string             `json:"lastError,omitempty" bson:"lastError,omitempty"`
	LastCheckedAt  int64              `json:"lastCheckedAt,omitempty" bson:"lastCheckedAt,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
