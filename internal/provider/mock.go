package provider

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Các kết quả mock deterministic dùng khi provider thật lỗi hoặc chưa cấu hình.
// Mock luôn thành công để pipeline demo chạy được từ đầu đến cuối.

// 1x1 PNG trong suốt
var mockPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

// mockText sinh kịch bản placeholder từ prompt
func mockText(req TextRequest) *Result {
	topic := strings.TrimSpace(req.Prompt)
	// Cắt theo rune: prompt tiếng Việt cắt theo byte sẽ vỡ ký tự UTF-8
	if runes := []rune(topic); len(runes) > 80 {
		topic = string(runes[:80])
	}
	return &Result{
		Text:           fmt.Sprintf("[Nội dung mẫu] Kịch bản được sinh tự động cho yêu cầu: %s", topic),
		ActualProvider: ProviderMock,
		IsMocked:       true,
	}
}

// mockVoice trả về data URL audio rỗng hợp lệ
func mockVoice(req VoiceRequest) *Result {
	return &Result{
		URL:            "data:audio/mpeg;base64,",
		MimeType:       "audio/mpeg",
		ActualProvider: ProviderMock,
		IsMocked:       true,
	}
}

// mockImage trả về data URL của ảnh PNG 1x1
func mockImage(req ImageRequest) *Result {
	return &Result{
		URL:            "data:image/png;base64," + base64.StdEncoding.EncodeToString(mockPNG),
		Data:           mockPNG,
		MimeType:       "image/png",
		ActualProvider: ProviderMock,
		IsMocked:       true,
	}
}

// mockVideo trả về data URL video rỗng hợp lệ
func mockVideo(req VideoRequest) *Result {
	return &Result{
		URL:            "data:video/mp4;base64,",
		MimeType:       "video/mp4",
		ActualProvider: ProviderMock,
		IsMocked:       true,
	}
}

// mockUpload trả về data URL chứa chính dữ liệu cần upload
func mockUpload(req UploadRequest) *Result {
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Result{
		URL:            "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(req.Data),
		MimeType:       contentType,
		ActualProvider: ProviderDataURL,
		IsMocked:       true,
	}
}
