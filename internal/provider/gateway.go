package provider

import (
	"context"
	"fmt"

	"creator_studio/config"
	"creator_studio/internal/logger"
)

// FallbackGateway là Gateway mặc định: mỗi thao tác thử provider thật trước,
// lỗi thì trả về kết quả mock kèm cảnh báo. Provider chưa cấu hình (nil)
// đi thẳng vào mock. Error trả về chỉ khác nil khi context bị hủy.
type FallbackGateway struct {
	text    TextProvider
	voice   VoiceProvider
	image   ImageProvider
	video   VideoProvider
	storage Storage
}

// NewFallbackGateway tạo gateway từ các provider cụ thể; provider nil sẽ luôn dùng mock
func NewFallbackGateway(text TextProvider, voice VoiceProvider, image ImageProvider, video VideoProvider, storage Storage) *FallbackGateway {
	return &FallbackGateway{
		text:    text,
		voice:   voice,
		image:   image,
		video:   video,
		storage: storage,
	}
}

// NewGatewayFromConfig lắp ráp gateway từ cấu hình server.
// Endpoint bỏ trống thì thao tác tương ứng chạy bằng mock.
func NewGatewayFromConfig(cfg *config.Configuration) *FallbackGateway {
	var text TextProvider
	if cfg.LLM_BaseURL != "" {
		text = NewOpenAICompatProvider(cfg.LLM_BaseURL, cfg.LLM_APIKey, cfg.LLM_Model)
	}

	var voice VoiceProvider
	if cfg.TTS_Endpoint != "" {
		voice = NewTTSProvider(cfg.TTS_Endpoint, cfg.TTS_APIKey, cfg.TTS_Voice)
	}

	var image ImageProvider
	if cfg.Image_Endpoint != "" {
		image = NewHTTPImageProvider(cfg.Image_Endpoint, cfg.Image_APIKey)
	}

	var video VideoProvider
	if cfg.Video_Endpoint != "" {
		video = NewHTTPVideoProvider(cfg.Video_Endpoint, cfg.Video_APIKey)
	}

	var storage Storage
	if cfg.Storage_Endpoint != "" {
		minioStorage, err := NewMinioStorage(cfg.Storage_Endpoint, cfg.Storage_AccessKey,
			cfg.Storage_SecretKey, cfg.Storage_Bucket, cfg.Storage_UseSSL)
		if err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Không kết nối được object storage, upload sẽ dùng data URL")
		} else {
			storage = minioStorage
		}
	}

	return NewFallbackGateway(text, voice, image, video, storage)
}

// degrade chuẩn hóa kết quả mock khi provider thật không dùng được
func degrade(mock *Result, operation string, err error) *Result {
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("operation", operation).
			Warn("Provider lỗi, chuyển sang kết quả mock")
		mock.Warnings = append(mock.Warnings,
			fmt.Sprintf("%s: provider lỗi, dùng kết quả mock (%v)", operation, err))
	} else {
		mock.Warnings = append(mock.Warnings,
			fmt.Sprintf("%s: provider chưa cấu hình, dùng kết quả mock", operation))
	}
	return mock
}

// GenerateText sinh text, fallback sang mock khi lỗi
func (g *FallbackGateway) GenerateText(ctx context.Context, req TextRequest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.text == nil {
		return degrade(mockText(req), "generate_text", nil), nil
	}
	result, err := g.text.GenerateText(ctx, req)
	if err != nil {
		return degrade(mockText(req), "generate_text", err), nil
	}
	return result, nil
}

// GenerateVoice sinh audio, fallback sang mock khi lỗi
func (g *FallbackGateway) GenerateVoice(ctx context.Context, req VoiceRequest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.voice == nil {
		return degrade(mockVoice(req), "generate_voice", nil), nil
	}
	result, err := g.voice.GenerateVoice(ctx, req)
	if err != nil {
		return degrade(mockVoice(req), "generate_voice", err), nil
	}
	return result, nil
}

// GenerateImage sinh ảnh, fallback sang mock khi lỗi
func (g *FallbackGateway) GenerateImage(ctx context.Context, req ImageRequest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.image == nil {
		return degrade(mockImage(req), "generate_image", nil), nil
	}
	result, err := g.image.GenerateImage(ctx, req)
	if err != nil {
		return degrade(mockImage(req), "generate_image", err), nil
	}
	return result, nil
}

// GenerateVideo render video, fallback sang mock khi lỗi
func (g *FallbackGateway) GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.video == nil {
		return degrade(mockVideo(req), "generate_video", nil), nil
	}
	result, err := g.video.GenerateVideo(ctx, req)
	if err != nil {
		return degrade(mockVideo(req), "generate_video", err), nil
	}
	return result, nil
}

// UploadToStorage upload file, fallback sang data URL khi storage lỗi
func (g *FallbackGateway) UploadToStorage(ctx context.Context, req UploadRequest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.storage == nil {
		return degrade(mockUpload(req), "upload_to_storage", nil), nil
	}
	result, err := g.storage.UploadToStorage(ctx, req)
	if err != nil {
		return degrade(mockUpload(req), "upload_to_storage", err), nil
	}
	return result, nil
}
