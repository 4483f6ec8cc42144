package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetType định nghĩa loại asset media
const (
	AssetTypeScript    = "script"
	AssetTypeAudio     = "audio"
	AssetTypeVideo     = "video"
	AssetTypeImage     = "image"
	AssetTypeThumbnail = "thumbnail"
)

// Asset đại diện cho một file media thuộc về một submission.
// Asset có thể do provider thật sinh ra hoặc là kết quả mock khi provider lỗi.
type Asset struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của asset

	// ===== LIÊN KẾT =====
	SubmissionID primitive.ObjectID `json:"submissionId" bson:"submissionId"` // Submission chứa asset này

	// ===== NỘI DUNG =====
	Type     string `json:"type" bson:"type" validate:"required"`            // script | audio | video | image | thumbnail
	URL      string `json:"url,omitempty" bson:"url,omitempty"`              // URL tới file (object storage hoặc data URL khi mock)
	MimeType string `json:"mimeType,omitempty" bson:"mimeType,omitempty"`    // MIME type của file
	Provider string `json:"provider,omitempty" bson:"provider,omitempty"`    // Provider đã sinh ra asset

	// ===== KẾT QUẢ MOCK =====
	IsMocked bool     `json:"isMocked" bson:"isMocked"`                       // true nếu là kết quả mock thay thế provider lỗi
	Warnings []string `json:"warnings,omitempty" bson:"warnings,omitempty"`   // Cảnh báo degradation kèm theo

	// ===== THUMBNAIL =====
	IsPrimaryThumbnail bool `json:"isPrimaryThumbnail" bson:"isPrimaryThumbnail"` // Mỗi submission có tối đa một thumbnail chính

	// ===== PHẠM VI KHÁCH HÀNG =====
	OwnerClientID primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"`

	// ===== METADATA =====
	Meta map[string]interface{} `json:"meta,omitempty" bson:"meta,omitempty"`

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
