package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliverableStatus định nghĩa trạng thái của deliverable
const (
	DeliverableStatusDraft = "draft" // Đang chuẩn bị
	DeliverableStatusReady = "ready" // Đủ asset, sẵn sàng lên lịch
)

// Deliverable là gói nội dung đã đóng gói cho một nền tảng cụ thể:
// video + thumbnail + tiêu đề/mô tả đã tối ưu cho nền tảng đó.
type Deliverable struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== LIÊN KẾT =====
	SubmissionID primitive.ObjectID `json:"submissionId" bson:"submissionId"`

	// ===== NỀN TẢNG =====
	Platform    string `json:"platform" bson:"platform" validate:"required"` // youtube | tiktok | facebook
	Title       string `json:"title" bson:"title"`                           // Tiêu đề tối ưu cho nền tảng
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// ===== ASSETS =====
	VideoAssetID     primitive.ObjectID `json:"videoAssetId,omitempty" bson:"videoAssetId,omitempty"`
	ThumbnailAssetID primitive.ObjectID `json:"thumbnailAssetId,omitempty" bson:"thumbnailAssetId,omitempty"`

	// ===== TRẠNG THÁI =====
	Status string `json:"status" bson:"status" default:"draft"` // draft | ready

	// ===== PHẠM VI KHÁCH HÀNG =====
	OwnerClientID primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"`

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
