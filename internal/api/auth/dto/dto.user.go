// Package authdto chứa các DTO cho domain auth.
package authdto

// UserRegisterInput dữ liệu đăng ký người dùng mới
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	ClientID string `json:"clientId" validate:"omitempty,objectid"` // Khách hàng mà user thuộc về (bỏ trống với admin)
}

// UserLoginInput dữ liệu đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateInput dữ liệu cập nhật hồ sơ người dùng
type UserUpdateInput struct {
	Name string `json:"name" validate:"omitempty"`
}

// UserChangePasswordInput dữ liệu đổi mật khẩu
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UserBlockInput dữ liệu khóa người dùng (admin)
type UserBlockInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note"`
}
