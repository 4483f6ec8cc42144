package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mức độ tự động hóa sản xuất nội dung của một kênh
const (
	AutomationManual   = "manual"    // Mọi bước do người vận hành bấm tay
	AutomationSemiAuto = "semi_auto" // Hệ thống tự đề xuất ý tưởng, sản xuất cần duyệt tay
	AutomationFullAuto = "full_auto" // Hệ thống tự đề xuất và tự sản xuất
)

// ChannelProfile là hồ sơ kênh của một khách hàng: tham số đầu vào cho việc
// đề xuất ý tưởng và sản xuất nội dung. Mỗi client có đúng một profile.
type ChannelProfile struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerClientID primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"`

	// ===== ĐỊNH VỊ KÊNH =====
	ChannelName      string   `json:"channelName" bson:"channelName" validate:"required"`
	Topic            string   `json:"topic" bson:"topic"`
	BrandDescription string   `json:"brandDescription,omitempty" bson:"brandDescription,omitempty"` // Mô tả thương hiệu, trộn vào các prompt sinh nội dung
	ContentPillars   []string `json:"contentPillars,omitempty" bson:"contentPillars,omitempty"`     // Các trụ cột nội dung của kênh
	Audience         string   `json:"audience,omitempty" bson:"audience,omitempty"`                 // Mô tả khán giả mục tiêu
	Tone             string   `json:"tone,omitempty" bson:"tone,omitempty"`                         // Giọng điệu nội dung
	Language         string   `json:"language" bson:"language" default:"vi"`

	// ===== THAM SỐ SẢN XUẤT =====
	AutomationLevel    string `json:"automationLevel" bson:"automationLevel" default:"manual"`    // manual | semi_auto | full_auto
	ThumbnailsPerShort int    `json:"thumbnailsPerShort" bson:"thumbnailsPerShort" default:"3"`   // Số thumbnail sinh cho mỗi video
	ThumbnailStyle     string `json:"thumbnailStyle,omitempty" bson:"thumbnailStyle,omitempty"`   // Phong cách / template prompt cho thumbnail
	PostingSchedule    string `json:"postingSchedule,omitempty" bson:"postingSchedule,omitempty"` // Lịch đăng mong muốn (mô tả tự do)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsValidAutomationLevel kiểm tra giá trị automation level có hợp lệ không
func IsValidAutomationLevel(level string) bool {
	switch level {
	case AutomationManual, AutomationSemiAuto, AutomationFullAuto:
		return true
	}
	return false
}
