// Package fvsdto chứa các DTO cho domain fvs.
package fvsdto

// ProposeInput dữ liệu yêu cầu đề xuất ý tưởng
type ProposeInput struct {
	Count int `json:"count" validate:"omitempty,min=1,max=10"` // Số ý tưởng muốn đề xuất (mặc định 3)
}

// IdeaCreateInput dữ liệu tạo ý tưởng thủ công
type IdeaCreateInput struct {
	Title   string `json:"title" validate:"required"`
	Hook    string `json:"hook"`
	Outline string `json:"outline"`
	Format  string `json:"format" validate:"omitempty,oneof=short long"`
}

// IdeaUpdateInput dữ liệu cập nhật ý tưởng
type IdeaUpdateInput struct {
	Title   string `json:"title"`
	Hook    string `json:"hook"`
	Outline string `json:"outline"`
}
