// Package provider cung cấp gateway thống nhất tới các dịch vụ AI bên ngoài
// (text, voice, image, video) và object storage. Mọi thao tác của gateway
// luôn trả về kết quả dùng được: khi provider thật lỗi, gateway trả về kết
// quả mock kèm cờ isMocked và cảnh báo, không bao giờ đẩy lỗi provider lên caller.
package provider

import "context"

// Tên các provider xuất hiện trong Result.ActualProvider
const (
	ProviderMock    = "mock"
	ProviderOpenAI  = "openai_compat"
	ProviderTTS     = "tts_http"
	ProviderImage   = "image_http"
	ProviderVideo   = "video_http"
	ProviderMinio   = "minio"
	ProviderDataURL = "data_url"
)

// Result là kết quả thống nhất của mọi thao tác qua gateway.
type Result struct {
	Text           string   `json:"text,omitempty"`     // Kết quả text (generate_text)
	URL            string   `json:"url,omitempty"`      // URL tới media hoặc object đã upload
	Data           []byte   `json:"-"`                  // Dữ liệu nhị phân khi provider trả trực tiếp
	MimeType       string   `json:"mimeType,omitempty"`
	ActualProvider string   `json:"actualProvider"`     // Provider thực sự tạo ra kết quả
	IsMocked       bool     `json:"isMocked"`           // true nếu là kết quả mock thay thế
	Warnings       []string `json:"warnings,omitempty"` // Cảnh báo degradation khi fallback
}

// TextRequest yêu cầu sinh text
type TextRequest struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
}

// VoiceRequest yêu cầu sinh giọng đọc từ text
type VoiceRequest struct {
	Text  string
	Voice string
}

// ImageRequest yêu cầu sinh ảnh
type ImageRequest struct {
	Prompt string
	Width  int
	Height int
}

// VideoRequest yêu cầu render video
type VideoRequest struct {
	Script   string
	AudioURL string
	Format   string // short | long
}

// UploadRequest yêu cầu upload file lên object storage
type UploadRequest struct {
	ObjectName  string
	Data        []byte
	ContentType string
}

// TextProvider sinh text từ prompt
type TextProvider interface {
	GenerateText(ctx context.Context, req TextRequest) (*Result, error)
}

// VoiceProvider sinh audio từ text
type VoiceProvider interface {
	GenerateVoice(ctx context.Context, req VoiceRequest) (*Result, error)
}

// ImageProvider sinh ảnh từ prompt
type ImageProvider interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*Result, error)
}

// VideoProvider render video
type VideoProvider interface {
	GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error)
}

// Storage upload file và trả về URL truy cập
type Storage interface {
	UploadToStorage(ctx context.Context, req UploadRequest) (*Result, error)
}

// Gateway gom tất cả thao tác provider sau một mặt cắt duy nhất.
// Mọi method luôn trả về Result khác nil; error chỉ khác nil khi context bị hủy.
type Gateway interface {
	GenerateText(ctx context.Context, req TextRequest) (*Result, error)
	GenerateVoice(ctx context.Context, req VoiceRequest) (*Result, error)
	GenerateImage(ctx context.Context, req ImageRequest) (*Result, error)
	GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error)
	UploadToStorage(ctx context.Context, req UploadRequest) (*Result, error)
}
