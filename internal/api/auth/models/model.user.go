// Package models định nghĩa các model thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò của người dùng trong hệ thống
const (
	RoleAdmin  = "admin"  // Quản trị viên vận hành studio
	RoleClient = "client" // Người dùng thuộc một khách hàng (tenant)
)

// User đại diện cho thông tin người dùng trong hệ thống
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`                         // ID của người dùng
	Name      string             `json:"name" bson:"name" validate:"required"`            // Tên người dùng
	Email     string             `json:"email" bson:"email,omitempty" validate:"required,email"` // Email đăng nhập (unique)
	Password  string             `json:"-" bson:"password,omitempty"`                     // Mật khẩu đã hash (bcrypt)
	Salt      string             `json:"-" bson:"salt,omitempty"`                         // Salt trộn thêm trước khi hash
	Token     string             `json:"-" bson:"token,omitempty"`                        // JWT token của phiên đăng nhập hiện tại
	Role      string             `json:"role" bson:"role" default:"client"`               // Vai trò: admin | client
	ClientID  primitive.ObjectID `json:"clientId,omitempty" bson:"clientId,omitempty"`    // Khách hàng mà user client thuộc về
	IsBlock   bool               `json:"isBlock" bson:"isBlock"`                          // Trạng thái khóa
	BlockNote string             `json:"blockNote,omitempty" bson:"blockNote,omitempty"`  // Ghi chú khi khóa
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`                      // Thời gian tạo (UnixMilli)
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`                      // Thời gian cập nhật (UnixMilli)
}
