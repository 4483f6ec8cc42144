package main

import (
	"creator_studio/config"
	"creator_studio/internal/database"
	"creator_studio/internal/global"
	"creator_studio/internal/provider"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initProviderGateway()  // Khởi tạo gateway tới các provider sinh nội dung
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: strong_password, objectid, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.Connect(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công
}

// Hàm khởi tạo gateway tới LLM/TTS/image/video provider và object storage.
// Provider nào thiếu cấu hình sẽ chạy ở chế độ mock, không chặn server khởi động.
func initProviderGateway() {
	global.ProviderGateway = provider.NewGatewayFromConfig(global.MongoDB_ServerConfig)
	logrus.Info("Initialized provider gateway")
}
