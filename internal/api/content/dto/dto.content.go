// Package contentdto chứa các DTO cho pipeline nội dung.
package contentdto

// SubmissionCreateInput dữ liệu tạo submission mới
type SubmissionCreateInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Script      string   `json:"script"`
	Format      string   `json:"format" validate:"omitempty,oneof=short long"`
	Tags        []string `json:"tags"`
	SourceIdeaID string  `json:"sourceIdeaId" validate:"omitempty,objectid"`
}

// SubmissionUpdateInput dữ liệu cập nhật submission
type SubmissionUpdateInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Script      string   `json:"script"`
	Tags        []string `json:"tags"`
}

// SubmissionStatusInput dữ liệu đổi trạng thái submission
type SubmissionStatusInput struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// AssetCreateInput dữ liệu tạo asset
type AssetCreateInput struct {
	SubmissionID string `json:"submissionId" validate:"required,objectid"`
	Type         string `json:"type" validate:"required,oneof=script audio video image thumbnail"`
	URL          string `json:"url"`
	MimeType     string `json:"mimeType"`
	Provider     string `json:"provider"`
}

// AssetUpdateInput dữ liệu cập nhật asset
type AssetUpdateInput struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
}

// DeliverableCreateInput dữ liệu tạo deliverable
type DeliverableCreateInput struct {
	SubmissionID     string `json:"submissionId" validate:"required,objectid"`
	Platform         string `json:"platform" validate:"required,oneof=youtube tiktok facebook"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	VideoAssetID     string `json:"videoAssetId" validate:"omitempty,objectid"`
	ThumbnailAssetID string `json:"thumbnailAssetId" validate:"omitempty,objectid"`
}

// DeliverableUpdateInput dữ liệu cập nhật deliverable
type DeliverableUpdateInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	VideoAssetID     string `json:"videoAssetId" validate:"omitempty,objectid"`
	ThumbnailAssetID string `json:"thumbnailAssetId" validate:"omitempty,objectid"`
	Status           string `json:"status" validate:"omitempty,oneof=draft ready"`
}

// VideoTaskCreateInput dữ liệu tạo video task
type VideoTaskCreateInput struct {
	SubmissionID string `json:"submissionId" validate:"required,objectid"`
	Provider     string `json:"provider"`
}

// VideoTaskUpdateInput dữ liệu cập nhật video task
type VideoTaskUpdateInput struct {
	Status        string `json:"status" validate:"omitempty,oneof=queued processing completed failed"`
	ExternalJobID string `json:"externalJobId"`
	Error         string `json:"error"`
}

// PublishingTaskCreateInput dữ liệu tạo publishing task
type PublishingTaskCreateInput struct {
	SubmissionID  string `json:"submissionId" validate:"required,objectid"`
	DeliverableID string `json:"deliverableId" validate:"omitempty,objectid"`
	Platform      string `json:"platform" validate:"required,oneof=youtube tiktok facebook"`
}

// PublishingTaskUpdateInput dữ liệu cập nhật publishing task
type PublishingTaskUpdateInput struct {
	DeliverableID string `json:"deliverableId" validate:"omitempty,objectid"`
	Platform      string `json:"platform" validate:"omitempty,oneof=youtube tiktok facebook"`
}

// PublishingScheduleInput dữ liệu lên lịch đăng
type PublishingScheduleInput struct {
	ScheduledAt int64 `json:"scheduledAt" validate:"required,gt=0"` // UnixMilli
}
