package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "creator_studio/internal/api/content/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
)

// DeliverableService là cấu trúc chứa các phương thức liên quan đến deliverable
type DeliverableService struct {
	*basesvc.BaseServiceMongoImpl[models.Deliverable]
}

// NewDeliverableService tạo mới DeliverableService
func NewDeliverableService() (*DeliverableService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Deliverables)
	if !exist {
		return nil, fmt.Errorf("failed to get deliverables collection: %v", common.ErrNotFound)
	}

	return &DeliverableService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Deliverable](collection),
	}, nil
}

// FindBySubmission trả về các deliverable của một submission
func (s *DeliverableService) FindBySubmission(ctx context.Context, submissionID primitive.ObjectID) ([]models.Deliverable, error) {
	return s.Find(ctx, bson.M{"submissionId": submissionID}, nil)
}

// MarkReady đánh dấu deliverable sẵn sàng lên lịch sau khi đã đủ asset
func (s *DeliverableService) MarkReady(ctx context.Context, deliverableID primitive.ObjectID) (models.Deliverable, error) {
	deliverable, err := s.FindOneById(ctx, deliverableID)
	if err != nil {
		return deliverable, err
	}

	if deliverable.VideoAssetID.IsZero() {
		return deliverable, common.NewError(common.ErrCodeBusinessState,
			"Deliverable chưa có video asset", common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, deliverableID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": models.DeliverableStatusReady},
	})
}
