// Package models định nghĩa các model thuộc domain tenant (khách hàng và cấu hình kênh).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của khách hàng
const (
	ClientStatusActive = "active"
	ClientStatusPaused = "paused"
)

// Client đại diện cho một khách hàng (tenant) của studio.
// Mọi dữ liệu nghiệp vụ đều gắn với một client qua field ownerClientId.
type Client struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	ContactEmail string             `json:"contactEmail,omitempty" bson:"contactEmail,omitempty" validate:"omitempty,email"`
	Status       string             `json:"status" bson:"status" default:"active"` // active | paused
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
