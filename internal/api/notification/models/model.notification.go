// Package models định nghĩa các model thuộc domain notification.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType định nghĩa loại notification
const (
	NotificationTypeStatusChange = "STATUS_CHANGE" // Submission đổi trạng thái
	NotificationTypePublished    = "PUBLISHED"     // Publishing task đã đăng
	NotificationTypeProduceDone  = "PRODUCE_DONE"  // Pipeline sản xuất một tập hoàn tất
	NotificationTypeFvsIdea      = "FVS_IDEA"      // Có ý tưởng mới được đề xuất
	NotificationTypeSystem       = "SYSTEM"        // Thông báo hệ thống
)

// NotificationPriority định nghĩa độ ưu tiên hiển thị
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Notification là thông báo gửi tới một người dùng cụ thể. Notification thuộc
// về user, không thuộc client: admin và người dùng của khách hàng có luồng
// thông báo tách biệt.
type Notification struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== NGƯỜI NHẬN =====
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	// ===== NỘI DUNG =====
	Type     string `json:"type" bson:"type" default:"SYSTEM"`         // STATUS_CHANGE | PUBLISHED | PRODUCE_DONE | FVS_IDEA | SYSTEM
	Title    string `json:"title" bson:"title"`
	Body     string `json:"body,omitempty" bson:"body,omitempty"`
	Link     string `json:"link,omitempty" bson:"link,omitempty"`      // Đường dẫn tới màn hình liên quan
	Priority string `json:"priority" bson:"priority" default:"normal"` // normal | high

	// ===== THAM CHIẾU =====
	EntityType string             `json:"entityType,omitempty" bson:"entityType,omitempty"` // Loại đối tượng liên quan (submission, publishing_task, ...)
	EntityID   primitive.ObjectID `json:"entityId,omitempty" bson:"entityId,omitempty"`     // ID đối tượng liên quan

	// ===== TRẠNG THÁI ĐỌC =====
	IsRead bool  `json:"isRead" bson:"isRead"`
	ReadAt int64 `json:"readAt,omitempty" bson:"readAt,omitempty"`

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
