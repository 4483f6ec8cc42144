package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// mediaEndpoint gọi một endpoint media generic: POST JSON, nhận về
// hoặc dữ liệu nhị phân trực tiếp, hoặc JSON {"url": "..."}.
type mediaEndpoint struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func newMediaEndpoint(endpoint, apiKey string, timeout time.Duration) mediaEndpoint {
	return mediaEndpoint{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type mediaURLResponse struct {
	URL string `json:"url"`
}

// call gửi payload và chuẩn hóa kết quả về Result
func (m mediaEndpoint) call(ctx context.Context, payload interface{}, providerName string) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal media request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create media request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call media endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media endpoint status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read media response: %w", err)
	}

	// JSON {"url": ...} hoặc dữ liệu nhị phân trực tiếp
	if contentType == "application/json" || contentType == "application/json; charset=utf-8" {
		var urlResp mediaURLResponse
		if err := json.Unmarshal(respBody, &urlResp); err != nil || urlResp.URL == "" {
			return nil, fmt.Errorf("media endpoint returned unexpected JSON")
		}
		return &Result{URL: urlResp.URL, ActualProvider: providerName}, nil
	}

	return &Result{
		Data:           respBody,
		MimeType:       contentType,
		ActualProvider: providerName,
	}, nil
}

// TTSProvider sinh audio từ text qua endpoint HTTP
type TTSProvider struct {
	mediaEndpoint
	voice string
}

// NewTTSProvider tạo mới provider text-to-speech
func NewTTSProvider(endpoint, apiKey, voice string) *TTSProvider {
	return &TTSProvider{
		mediaEndpoint: newMediaEndpoint(endpoint, apiKey, 120*time.Second),
		voice:         voice,
	}
}

// GenerateVoice sinh audio từ text
func (p *TTSProvider) GenerateVoice(ctx context.Context, req VoiceRequest) (*Result, error) {
	voice := req.Voice
	if voice == "" {
		voice = p.voice
	}
	return p.call(ctx, map[string]interface{}{
		"input": req.Text,
		"voice": voice,
	}, ProviderTTS)
}

// HTTPImageProvider sinh ảnh qua endpoint HTTP
type HTTPImageProvider struct {
	mediaEndpoint
}

// NewHTTPImageProvider tạo mới provider sinh ảnh
func NewHTTPImageProvider(endpoint, apiKey string) *HTTPImageProvider {
	return &HTTPImageProvider{
		mediaEndpoint: newMediaEndpoint(endpoint, apiKey, 180*time.Second),
	}
}

// GenerateImage sinh ảnh từ prompt
func (p *HTTPImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*Result, error) {
	return p.call(ctx, map[string]interface{}{
		"prompt": req.Prompt,
		"width":  req.Width,
		"height": req.Height,
	}, ProviderImage)
}

// HTTPVideoProvider render video qua endpoint HTTP
type HTTPVideoProvider struct {
	mediaEndpoint
}

// NewHTTPVideoProvider tạo mới provider render video
func NewHTTPVideoProvider(endpoint, apiKey string) *HTTPVideoProvider {
	return &HTTPVideoProvider{
		mediaEndpoint: newMediaEndpoint(endpoint, apiKey, 10*time.Minute),
	}
}

// GenerateVideo render video từ script và audio
func (p *HTTPVideoProvider) GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	return p.call(ctx, map[string]interface{}{
		"script":   req.Script,
		"audioUrl": req.AudioURL,
		"format":   req.Format,
	}, ProviderVideo)
}
