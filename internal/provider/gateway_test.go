package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fake provider trả về kết quả cố định hoặc lỗi cố định

type fakeTextProvider struct {
	result *Result
	err    error
}

func (f *fakeTextProvider) GenerateText(ctx context.Context, req TextRequest) (*Result, error) {
	return f.result, f.err
}

type fakeVideoProvider struct {
	err error
}

func (f *fakeVideoProvider) GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	return nil, f.err
}

type fakeStorage struct {
	result *Result
	err    error
}

func (f *fakeStorage) UploadToStorage(ctx context.Context, req UploadRequest) (*Result, error) {
	return f.result, f.err
}

func TestGenerateText_ProviderThanhCong(t *testing.T) {
	real := &Result{Text: "kịch bản thật", ActualProvider: ProviderOpenAI}
	g := NewFallbackGateway(&fakeTextProvider{result: real}, nil, nil, nil, nil)

	result, err := g.GenerateText(context.Background(), TextRequest{Prompt: "viết kịch bản"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "kịch bản thật", result.Text)
	assert.False(t, result.IsMocked)
	assert.Empty(t, result.Warnings)
}

func TestGenerateText_ProviderLoi_TraVeMock(t *testing.T) {
	g := NewFallbackGateway(&fakeTextProvider{err: errors.New("upstream 500")}, nil, nil, nil, nil)

	result, err := g.GenerateText(context.Background(), TextRequest{Prompt: "viết kịch bản"})
	require.NoError(t, err, "lỗi provider không được thoát ra ngoài gateway")
	require.NotNil(t, result)

	assert.True(t, result.IsMocked)
	assert.NotEmpty(t, result.Text)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "upstream 500")
}

func TestGenerateText_ProviderChuaCauHinh_TraVeMock(t *testing.T) {
	g := NewFallbackGateway(nil, nil, nil, nil, nil)

	result, err := g.GenerateText(context.Background(), TextRequest{Prompt: "viết kịch bản"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.IsMocked)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "chưa cấu hình")
}

func TestGenerateText_PromptTiengVietDai_MockCatTheoRune(t *testing.T) {
	g := NewFallbackGateway(nil, nil, nil, nil, nil)

	// Hơn 80 rune, toàn ký tự nhiều byte: cắt theo byte sẽ vỡ giữa ký tự
	prompt := strings.Repeat("Đề xuất ý tưởng về ẩm thực đường phố Việt Nam. ", 5)
	result, err := g.GenerateText(context.Background(), TextRequest{Prompt: prompt})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.IsMocked)
	assert.True(t, utf8.ValidString(result.Text), "text mock phải là UTF-8 hợp lệ")
}

func TestGenerateVideo_ProviderLoi_TraVeMock(t *testing.T) {
	g := NewFallbackGateway(nil, nil, nil, &fakeVideoProvider{err: errors.New("render timeout")}, nil)

	result, err := g.GenerateVideo(context.Background(), VideoRequest{Script: "nội dung"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.IsMocked)
	assert.NotEmpty(t, result.URL)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "render timeout")
}

func TestUploadToStorage_StorageLoi_TraVeDataURL(t *testing.T) {
	g := NewFallbackGateway(nil, nil, nil, nil, &fakeStorage{err: errors.New("connection refused")})

	result, err := g.UploadToStorage(context.Background(), UploadRequest{
		ObjectName:  "clients/x/submissions/y/video.mp4",
		Data:        []byte("nội dung file"),
		ContentType: "video/mp4",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.IsMocked)
	assert.Contains(t, result.URL, "data:video/mp4;base64,")
}

func TestUploadToStorage_StorageThanhCong(t *testing.T) {
	real := &Result{URL: "https://minio.local/bucket/video.mp4", ActualProvider: ProviderMinio}
	g := NewFallbackGateway(nil, nil, nil, nil, &fakeStorage{result: real})

	result, err := g.UploadToStorage(context.Background(), UploadRequest{ObjectName: "video.mp4"})
	require.NoError(t, err)

	assert.Equal(t, "https://minio.local/bucket/video.mp4", result.URL)
	assert.False(t, result.IsMocked)
}

func TestGateway_ContextHuy_TraVeLoi(t *testing.T) {
	g := NewFallbackGateway(nil, nil, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := g.GenerateText(ctx, TextRequest{Prompt: "x"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
