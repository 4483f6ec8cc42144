// Package models định nghĩa các model của pipeline nội dung.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionStatus định nghĩa trạng thái của một submission trong pipeline
const (
	SubmissionStatusNew          = "new"           // Mới tạo, chưa sản xuất
	SubmissionStatusInProduction = "in_production" // Đang sản xuất (script/audio/video)
	SubmissionStatusReview       = "review"        // Chờ duyệt
	SubmissionStatusScheduled    = "scheduled"     // Đã lên lịch đăng
	SubmissionStatusPublished    = "published"     // Đã đăng
)

// Các định dạng nội dung
const (
	FormatShort = "short"
	FormatLong  = "long"
)

// Submission đại diện cho một tập nội dung (episode) đi qua pipeline sản xuất.
// Mọi asset, deliverable và task đều tham chiếu về submission.
type Submission struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của submission

	// ===== NỘI DUNG =====
	Title       string   `json:"title" bson:"title" validate:"required"`             // Tiêu đề
	Description string   `json:"description,omitempty" bson:"description,omitempty"` // Mô tả ngắn
	Script      string   `json:"script,omitempty" bson:"script,omitempty"`           // Kịch bản đầy đủ
	Format      string   `json:"format" bson:"format" default:"short"`               // short | long
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`               // Tag phân loại

	// ===== NGUỒN GỐC =====
	SourceIdeaID primitive.ObjectID `json:"sourceIdeaId,omitempty" bson:"sourceIdeaId,omitempty"` // Ý tưởng FVS sinh ra submission này (nếu có)

	// ===== TRẠNG THÁI =====
	Status string `json:"status" bson:"status" default:"new"` // new | in_production | review | scheduled | published

	// ===== PHẠM VI KHÁCH HÀNG =====
	OwnerClientID primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"` // Khách hàng sở hữu dữ liệu

	// ===== METADATA =====
	Meta map[string]interface{} `json:"meta,omitempty" bson:"meta,omitempty"` // Metadata bổ sung

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo (UnixMilli)
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật (UnixMilli)
}

// SubmissionStatuses liệt kê các trạng thái hợp lệ của submission
var SubmissionStatuses = []string{
	SubmissionStatusNew,
	SubmissionStatusInProduction,
	SubmissionStatusReview,
	SubmissionStatusScheduled,
	SubmissionStatusPublished,
}

// IsValidSubmissionStatus kiểm tra status có thuộc danh sách trạng thái hợp lệ không.
// Pipeline cho phép chuyển giữa hai trạng thái hợp lệ bất kỳ, không ràng buộc thứ tự.
func IsValidSubmissionStatus(status string) bool {
	for _, s := range SubmissionStatuses {
		if s == status {
			return true
		}
	}
	return false
}
