// Package tenantsvc chứa các service cho domain tenant.
package tenantsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "creator_studio/internal/api/tenant/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
)

// ClientService là cấu trúc chứa các phương thức liên quan đến khách hàng
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[models.Client]
	submissionCollection *mongo.Collection
	publishingCollection *mongo.Collection
}

// ClientWithStats là client kèm số liệu tổng hợp cho màn hình quản trị
type ClientWithStats struct {
	Client          models.Client `json:"client"`
	SubmissionCount int64         `json:"submissionCount"`
	ScheduledCount  int64         `json:"scheduledCount"`
	PostedCount     int64         `json:"postedCount"`
}

// NewClientService tạo mới ClientService
func NewClientService() (*ClientService, error) {
	clientCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("failed to get clients collection: %v", common.ErrNotFound)
	}
	submissionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Submissions)
	if !exist {
		return nil, fmt.Errorf("failed to get submissions collection: %v", common.ErrNotFound)
	}
	publishingCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PublishingTasks)
	if !exist {
		return nil, fmt.Errorf("failed to get publishing_tasks collection: %v", common.ErrNotFound)
	}

	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Client](clientCollection),
		submissionCollection: submissionCollection,
		publishingCollection: publishingCollection,
	}, nil
}

// ListWithStats trả về toàn bộ khách hàng kèm số liệu tổng hợp (màn hình admin)
func (s *ClientService) ListWithStats(ctx context.Context) ([]ClientWithStats, error) {
	clients, err := s.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	results := make([]ClientWithStats, 0, len(clients))
	for _, client := range clients {
		submissionCount, err := s.submissionCollection.CountDocuments(ctx, bson.M{"ownerClientId": client.ID})
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		scheduledCount, err := s.publishingCollection.CountDocuments(ctx, bson.M{"ownerClientId": client.ID, "status": "scheduled"})
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		postedCount, err := s.publishingCollection.CountDocuments(ctx, bson.M{"ownerClientId": client.ID, "status": "posted"})
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}

		results = append(results, ClientWithStats{
			Client:          client,
			SubmissionCount: submissionCount,
			ScheduledCount:  scheduledCount,
			PostedCount:     postedCount,
		})
	}

	return results, nil
}
