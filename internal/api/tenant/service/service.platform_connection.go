package tenantsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "creator_studio/internal/api/tenant/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
	"creator_studio/internal/utility"
)

// PlatformConnectionService là cấu trúc chứa các phương thức liên quan đến kết nối nền tảng
type PlatformConnectionService struct {
	*basesvc.BaseServiceMongoImpl[models.PlatformConnection]
}

// NewPlatformConnectionService tạo mới PlatformConnectionService
func NewPlatformConnectionService() (*PlatformConnectionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PlatformConnections)
	if !exist {
		return nil, fmt.Errorf("failed to get platform_connections collection: %v", common.ErrNotFound)
	}

	return &PlatformConnectionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.PlatformConnection](collection),
	}, nil
}

// FindByClientAndPlatform tìm kết nối của một client tới một nền tảng
func (s *PlatformConnectionService) FindByClientAndPlatform(ctx context.Context, clientID primitive.ObjectID, platform string) (models.PlatformConnection, error) {
	return s.FindOne(ctx, bson.M{"ownerClientId": clientID, "platform": platform}, nil)
}

// SetStatus cập nhật trạng thái kết nối kèm thời điểm kiểm tra
func (s *PlatformConnectionService) SetStatus(ctx context.Context, connectionID primitive.ObjectID, status string, lastError string) (models.PlatformConnection, error) {
	return s.UpdateById(ctx, connectionID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":        status,
			"lastError":     lastError,
			"lastCheckedAt": utility.CurrentTimeInMilli(),
		},
	})
}
