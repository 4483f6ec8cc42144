package global

import (
	"creator_studio/config"
	"creator_studio/internal/provider"
	"creator_studio/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users               string // Tên collection cho người dùng
	Clients             string // Tên collection cho khách hàng (tenant)
	ChannelProfiles     string // Tên collection cho hồ sơ kênh (tham số sinh nội dung)
	PlatformConnections string // Tên collection cho trạng thái kết nối nền tảng

	Submissions     string // Tên collection cho submission (tập/episode)
	Assets          string // Tên collection cho asset media
	Deliverables    string // Tên collection cho deliverable theo nền tảng
	VideoTasks      string // Tên collection cho video task bất đồng bộ
	PublishingTasks string // Tên collection cho publishing task

	FvsIdeas      string // Tên collection cho ý tưởng FVS
	Notifications string // Tên collection cho notification
	ActivityLogs  string // Tên collection cho activity log
}

// Các biến toàn cục
var (
	Validate             *validator.Validate   // Biến để xác thực dữ liệu
	MongoDB_Session      *mongo.Client         // Phiên kết nối tới MongoDB
	MongoDB_ServerConfig *config.Configuration // Cấu hình của server
	ProviderGateway      provider.Gateway      // Gateway tới các dịch vụ AI và storage
)

var MongoDB_ColNames = MongoDB_CollectionName{
	Users:               "users",
	Clients:             "clients",
	ChannelProfiles:     "channel_profiles",
	PlatformConnections: "platform_connections",
	Submissions:         "submissions",
	Assets:              "assets",
	Deliverables:        "deliverables",
	VideoTasks:          "video_tasks",
	PublishingTasks:     "publishing_tasks",
	FvsIdeas:            "fvs_ideas",
	Notifications:       "notifications",
	ActivityLogs:        "activity_logs",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
