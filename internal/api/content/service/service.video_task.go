package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "creator_studio/internal/api/content/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
)

// VideoTaskService là cấu trúc chứa các phương thức liên quan đến video task
type VideoTaskService struct {
	*basesvc.BaseServiceMongoImpl[models.VideoTask]
}

// NewVideoTaskService tạo mới VideoTaskService
func NewVideoTaskService() (*VideoTaskService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VideoTasks)
	if !exist {
		return nil, fmt.Errorf("failed to get video_tasks collection: %v", common.ErrNotFound)
	}

	return &VideoTaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.VideoTask](collection),
	}, nil
}

// MarkProcessing chuyển task sang trạng thái đang render, lưu job id phía provider
func (s *VideoTaskService) MarkProcessing(ctx context.Context, taskID primitive.ObjectID, externalJobID string) (models.VideoTask, error) {
	return s.UpdateById(ctx, taskID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":        models.VideoTaskStatusProcessing,
			"externalJobId": externalJobID,
		},
	})
}

// MarkCompleted hoàn tất task với asset video đầu ra
func (s *VideoTaskService) MarkCompleted(ctx context.Context, taskID, outputAssetID primitive.ObjectID) (models.VideoTask, error) {
	return s.UpdateById(ctx, taskID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":        models.VideoTaskStatusCompleted,
			"outputAssetId": outputAssetID,
		},
		Unset: map[string]interface{}{"error": ""},
	})
}

// MarkFailed đánh dấu task thất bại kèm thông tin lỗi
func (s *VideoTaskService) MarkFailed(ctx context.Context, taskID primitive.ObjectID, reason string) (models.VideoTask, error) {
	return s.UpdateById(ctx, taskID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": models.VideoTaskStatusFailed,
			"error":  reason,
		},
	})
}
