package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog là bản ghi append-only về một thay đổi dữ liệu trong hệ thống.
// Được ghi tự động từ event bus, không sửa hay xóa.
type ActivityLog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== NỘI DUNG =====
	Collection string             `json:"collection" bson:"collection"` // Collection bị thay đổi
	Operation  string             `json:"operation" bson:"operation"`   // insert | update | upsert | delete
	DocumentID primitive.ObjectID `json:"documentId,omitempty" bson:"documentId,omitempty"`
	Summary    string             `json:"summary,omitempty" bson:"summary,omitempty"` // Mô tả ngắn cho màn hình hoạt động

	// ===== PHẠM VI KHÁCH HÀNG =====
	OwnerClientID primitive.ObjectID `json:"ownerClientId,omitempty" bson:"ownerClientId,omitempty"`

	// ===== TIMESTAMP =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
}
