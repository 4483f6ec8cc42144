// Package models định nghĩa các model thuộc domain fvs (đề xuất và sản xuất tự động).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdeaStatus định nghĩa trạng thái của một ý tưởng
const (
	IdeaStatusProposed = "proposed" // Mới đề xuất, chờ quyết định
	IdeaStatusAccepted = "accepted" // Đã duyệt, chờ sản xuất
	IdeaStatusRejected = "rejected" // Bị từ chối
	IdeaStatusProduced = "produced" // Đã sản xuất thành submission
)

// IdeaSource cho biết ý tưởng đến từ đâu
const (
	IdeaSourceLLM      = "llm"      // Do LLM đề xuất
	IdeaSourceFallback = "fallback" // Sinh deterministic khi LLM lỗi hoặc trả về không parse được
)

// FVSIdea là một ý tưởng nội dung được hệ thống đề xuất cho một kênh,
// dựa trên hồ sơ kênh và số liệu nội dung đã có.
type FVSIdea struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== NỘI DUNG =====
	Title   string  `json:"title" bson:"title" validate:"required"`
	Hook    string  `json:"hook,omitempty" bson:"hook,omitempty"`       // Câu mở đầu thu hút
	Outline string  `json:"outline,omitempty" bson:"outline,omitempty"` // Dàn ý ngắn
	Format  string  `json:"format" bson:"format" default:"short"`       // short | long
	Score   float64 `json:"score,omitempty" bson:"score,omitempty"`     // Điểm ưu tiên do LLM chấm

	// ===== NGUỒN GỐC VÀ TRẠNG THÁI =====
	Source string `json:"source" bson:"source" default:"llm"`      // llm | fallback
	Status string `json:"status" bson:"status" default:"proposed"` // proposed | accepted | rejected | produced

	// ===== KẾT QUẢ SẢN XUẤT =====
	SubmissionID primitive.ObjectID `json:"submissionId,omitempty" bson:"submissionId,omitempty"` // Submission sinh ra khi produced

	// ===== PHẠM VI KHÁCH HÀNG =====
	OwnerClientID primitive.ObjectID `json:"ownerClientId" bson:"ownerClientId"`

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
