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
)

// ChannelProfileService là cấu trúc chứa các phương thức liên quan đến hồ sơ kênh
type ChannelProfileService struct {
	*basesvc.BaseServiceMongoImpl[models.ChannelProfile]
}

// NewChannelProfileService tạo mới ChannelProfileService
func NewChannelProfileService() (*ChannelProfileService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChannelProfiles)
	if !exist {
		return nil, fmt.Errorf("failed to get channel_profiles collection: %v", common.ErrNotFound)
	}

	return &ChannelProfileService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChannelProfile](collection),
	}, nil
}

// FindByClient tìm hồ sơ kênh của một khách hàng (mỗi client có đúng một profile)
func (s *ChannelProfileService) FindByClient(ctx context.Context, clientID primitive.ObjectID) (models.ChannelProfile, error) {
	return s.FindOne(ctx, bson.M{"ownerClientId": clientID}, nil)
}

// UpsertForClient tạo hoặc cập nhật hồ sơ kênh của một khách hàng.
// Unique index trên ownerClientId đảm bảo mỗi client chỉ có một profile.
func (s *ChannelProfileService) UpsertForClient(ctx context.Context, clientID primitive.ObjectID, profile models.ChannelProfile) (models.ChannelProfile, error) {
	if profile.AutomationLevel != "" && !models.IsValidAutomationLevel(profile.AutomationLevel) {
		return models.ChannelProfile{}, common.NewError(common.ErrCodeValidationInput,
			"automationLevel không hợp lệ: "+profile.AutomationLevel, common.StatusBadRequest, nil)
	}

	profile.OwnerClientID = clientID
	return s.Upsert(ctx, bson.M{"ownerClientId": clientID}, profile)
}
