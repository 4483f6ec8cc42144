// Package tenantdto chứa các DTO cho domain tenant.
package tenantdto

// ClientCreateInput dữ liệu tạo khách hàng mới (admin)
type ClientCreateInput struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Notes        string `json:"notes"`
}

// ClientUpdateInput dữ liệu cập nhật khách hàng (admin)
type ClientUpdateInput struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Status       string `json:"status" validate:"omitempty,oneof=active paused"`
	Notes        string `json:"notes"`
}

// ChannelProfileCreateInput dữ liệu tạo hồ sơ kênh
type ChannelProfileCreateInput struct {
	ChannelName        string   `json:"channelName" validate:"required"`
	Topic              string   `json:"topic"`
	BrandDescription   string   `json:"brandDescription"`
	ContentPillars     []string `json:"contentPillars"`
	Audience           string   `json:"audience"`
	Tone               string   `json:"tone"`
	Language           string   `json:"language"`
	AutomationLevel    string   `json:"automationLevel" validate:"omitempty,oneof=manual semi_auto full_auto"`
	ThumbnailsPerShort int      `json:"thumbnailsPerShort" validate:"omitempty,min=1,max=10"`
	ThumbnailStyle     string   `json:"thumbnailStyle"`
	PostingSchedule    string   `json:"postingSchedule"`
}

// ChannelProfileUpdateInput dữ liệu cập nhật hồ sơ kênh
type ChannelProfileUpdateInput struct {
	ChannelName        string   `json:"channelName"`
	Topic              string   `json:"topic"`
	BrandDescription   string   `json:"brandDescription"`
	ContentPillars     []string `json:"contentPillars"`
	Audience           string   `json:"audience"`
	Tone               string   `json:"tone"`
	Language           string   `json:"language"`
	AutomationLevel    string   `json:"automationLevel" validate:"omitempty,oneof=manual semi_auto full_auto"`
	ThumbnailsPerShort int      `json:"thumbnailsPerShort" validate:"omitempty,min=1,max=10"`
	ThumbnailStyle     string   `json:"thumbnailStyle"`
	PostingSchedule    string   `json:"postingSchedule"`
}

// PlatformConnectionCreateInput dữ liệu tạo kết nối nền tảng
type PlatformConnectionCreateInput struct {
	Platform       string `json:"platform" validate:"required,oneof=youtube tiktok facebook"`
	AccountName    string `json:"accountName"`
	AccessTokenRef string `json:"accessTokenRef"`
}

// PlatformConnectionUpdateInput dữ liệu cập nhật kết nối nền tảng
type PlatformConnectionUpdateInput struct {
	Status         string `json:"status" validate:"omitempty,oneof=connected disconnected error"`
	AccountName    string `json:"accountName"`
	AccessTokenRef string `json:"accessTokenRef"`
	LastError      string `json:"lastError"`
}
