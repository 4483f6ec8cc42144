package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublishingTaskStatus định nghĩa trạng thái của publishing task
const (
	PublishingStatusDraft     = "draft"     // Chưa lên lịch
	PublishingStatusScheduled = "scheduled" // Đã lên lịch, chờ scheduler quét
	PublishingStatusPosted    = "posted"    // Đã đăng lên nền tảng
	PublishingStatusFailed    = "failed"    // Đăng thất bại
)

// PublishingTask đại diện cho việc đăng một deliverable lên một nền tảng
// tại một thời điểm đã định. Scheduler quét các task scheduled đến hạn và đăng.
type PublishingTask struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== LIÊN KẾT =====
	SubmissionID  primitive.ObjectID `json:"submissionId" bson:"submissionId"`
	DeliverableID primitive.ObjectID `json:"deliverableId,omitempty" bson:"deliverableId,omitempty"`

	// ===== NỀN TẢNG =====
	Platform       string `json:"platform" bson:"platform" validate:"required"` // youtube | tiktok | facebook
	PlatformPostID string `json:"platformPostId,omitempty" bson:"platformPostId,omitempty"` // ID bài đăng phía nền tảng sau khi posted

	// ===== LỊCH ĐĂNG =====
	ScheduledAt int64 `json:"scheduledAt,omitempty" bson:"scheduledAt,omitempty"` // Thời điểm đăng dự kiến (UnixMilli)
	PostedAt    int64 `json:"postedAt,omitempty" bson:"postedAt,omitempty"`       // Thời điểm đăng thực tế (UnixMilli)

	// ===== TRẠNG THÁI =====
	Status string `json:"status" bson:"status" default:"draft"` // draft | scheduled | posted | failed
	Error  string `json:"error,omitempty" bson:"error,omitempty"`

	// ===== PHẠM VI KHÁCH HÀNG =====
	OwnerClientID primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"`

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
