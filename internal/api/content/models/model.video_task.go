package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoTaskStatus định nghĩa trạng thái của video task
const (
	VideoTaskStatusQueued     = "queued"     // Đã nhận, chờ xử lý
	VideoTaskStatusProcessing = "processing" // Provider đang render
	VideoTaskStatusCompleted  = "completed"  // Render xong, đã có asset
	VideoTaskStatusFailed     = "failed"     // Render thất bại
)

// VideoTask theo dõi một job render video bất đồng bộ ở provider.
type VideoTask struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== LIÊN KẾT =====
	SubmissionID primitive.ObjectID `json:"submissionId" bson:"submissionId"`

	// ===== PROVIDER =====
	Provider      string `json:"provider,omitempty" bson:"provider,omitempty"`           // Provider thực hiện render
	ExternalJobID string `json:"externalJobId,omitempty" bson:"externalJobId,omitempty"` // ID job phía provider

	// ===== KẾT QUẢ =====
	OutputAssetID primitive.ObjectID `json:"outputAssetId,omitempty" bson:"outputAssetId,omitempty"` // Asset video sinh ra khi hoàn tất
	Error         string             `json:"error,omitempty" bson:"error,omitempty"`                 // Thông tin lỗi khi thất bại

	// ===== TRẠNG THÁI =====
	Status string `json:"status" bson:"status" default:"queued"` // queued | processing | completed | failed

	// ===== PHẠM VI KHÁCH HÀNG =====
	OwnerClientID primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"`

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
