package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Bao gồm cấu hình server, cơ sở dữ liệu, các provider sinh nội dung và object storage.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mặc định
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu chính
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)

	// Admin seed (tạo tài khoản admin trong init nếu chưa có)
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@creatorstudio.local"` // Email admin mặc định
	AdminPassword string `env:"ADMIN_PASSWORD"`                                     // Mật khẩu admin mặc định (bỏ trống = không seed)

	// LLM provider (OpenAI-compatible /v1/chat/completions)
	LLM_BaseURL string `env:"LLM_BASE_URL"`                       // Base URL, ví dụ: https://api.openai.com/v1
	LLM_APIKey  string `env:"LLM_API_KEY"`                        // API key (bỏ trống = chạy mock)
	LLM_Model   string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"` // Model dùng để sinh text

	// Text-to-speech provider
	TTS_Endpoint string `env:"TTS_ENDPOINT"` // Endpoint sinh audio từ script
	TTS_APIKey   string `env:"TTS_API_KEY"`  // API key (bỏ trống = chạy mock)
	TTS_Voice    string `env:"TTS_VOICE" envDefault:"alloy"`

	// Image generation provider
	Image_Endpoint string `env:"IMAGE_ENDPOINT"` // Endpoint sinh thumbnail
	Image_APIKey   string `env:"IMAGE_API_KEY"`  // API key (bỏ trống = chạy mock)

	// Video generation provider
	Video_Endpoint string `env:"VIDEO_ENDPOINT"` // Endpoint sinh video
	Video_APIKey   string `env:"VIDEO_API_KEY"`  // API key (bỏ trống = chạy mock)

	// Object storage (MinIO/S3 compatible)
	Storage_Endpoint  string `env:"STORAGE_ENDPOINT"` // Endpoint MinIO (bỏ trống = fallback data URL)
	Storage_AccessKey string `env:"STORAGE_ACCESS_KEY"`
	Storage_SecretKey string `env:"STORAGE_SECRET_KEY"`
	Storage_Bucket    string `env:"STORAGE_BUCKET" envDefault:"creator-studio-assets"`
	Storage_UseSSL    bool   `env:"STORAGE_USE_SSL" envDefault:"false"`

	// Background workers
	PublishSweepSeconds int `env:"PUBLISH_SWEEP_SECONDS" envDefault:"30"`  // Chu kỳ quét publishing task (giây)
	PublishSweepBatch   int `env:"PUBLISH_SWEEP_BATCH" envDefault:"50"`    // Số task tối đa mỗi lần quét
	FvsAutoMinutes      int `env:"FVS_AUTO_MINUTES" envDefault:"60"`       // Chu kỳ chạy FVS tự động (phút)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên dần từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
