package contentsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "creator_studio/internal/api/content/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
	"creator_studio/internal/utility"
)

// ErrTaskAlreadyProcessed báo hiệu task không còn ở trạng thái scheduled
// khi MarkPosted/MarkFailed chạy (một worker khác đã xử lý trước).
var ErrTaskAlreadyProcessed = common.NewError(common.ErrCodeBusinessState,
	"Publishing task đã được xử lý bởi tiến trình khác", common.StatusConflict, nil)

// PublishingTaskService là cấu trúc chứa các phương thức liên quan đến publishing task
type PublishingTaskService struct {
	*basesvc.BaseServiceMongoImpl[models.PublishingTask]
}

// NewPublishingTaskService tạo mới PublishingTaskService
func NewPublishingTaskService() (*PublishingTaskService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PublishingTasks)
	if !exist {
		return nil, fmt.Errorf("failed to get publishing_tasks collection: %v", common.ErrNotFound)
	}

	return &PublishingTaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.PublishingTask](collection),
	}, nil
}

// Schedule lên lịch đăng cho một task. Task đã posted không lên lịch lại được.
func (s *PublishingTaskService) Schedule(ctx context.Context, taskID primitive.ObjectID, scheduledAt int64) (models.PublishingTask, error) {
	var zero models.PublishingTask

	if scheduledAt <= 0 {
		return zero, common.NewError(common.ErrCodeValidationInput,
			"scheduledAt phải là UnixMilli dương", common.StatusBadRequest, nil)
	}

	task, err := s.FindOneById(ctx, taskID)
	if err != nil {
		return zero, err
	}
	if task.Status == models.PublishingStatusPosted {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"Task đã đăng, không thể lên lịch lại", common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, taskID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":      models.PublishingStatusScheduled,
			"scheduledAt": scheduledAt,
		},
		Unset: map[string]interface{}{"error": ""},
	})
}

// FindDue trả về các task scheduled đã đến hạn đăng, cũ nhất trước
func (s *PublishingTaskService) FindDue(ctx context.Context, now int64, limit int64) ([]models.PublishingTask, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "scheduledAt", Value: 1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.M{
		"status":      models.PublishingStatusScheduled,
		"scheduledAt": bson.M{"$lte": now},
	}, opts)
}

// MarkPosted chuyển task từ scheduled sang posted với điều kiện trạng thái.
// Filter kèm status=scheduled nên hai tiến trình cùng xử lý một task thì chỉ
// một bên thành công; bên thua nhận ErrTaskAlreadyProcessed.
func (s *PublishingTaskService) MarkPosted(ctx context.Context, taskID primitive.ObjectID, platformPostID string) (models.PublishingTask, error) {
	updated, err := s.UpdateOne(ctx,
		bson.M{"_id": taskID, "status": models.PublishingStatusScheduled},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"status":         models.PublishingStatusPosted,
				"platformPostId": platformPostID,
				"postedAt":       utility.CurrentTimeInMilli(),
			},
		}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return updated, ErrTaskAlreadyProcessed
		}
		return updated, err
	}
	return updated, nil
}

// MarkFailed chuyển task từ scheduled sang failed, cùng điều kiện trạng thái như MarkPosted
func (s *PublishingTaskService) MarkFailed(ctx context.Context, taskID primitive.ObjectID, reason string) (models.PublishingTask, error) {
	updated, err := s.UpdateOne(ctx,
		bson.M{"_id": taskID, "status": models.PublishingStatusScheduled},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"status": models.PublishingStatusFailed,
				"error":  reason,
			},
		}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return updated, ErrTaskAlreadyProcessed
		}
		return updated, err
	}
	return updated, nil
}

// DeleteTask xóa một publishing task. Task đã posted không xóa được.
func (s *PublishingTaskService) DeleteTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.FindOneById(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Status == models.PublishingStatusPosted {
		return common.NewError(common.ErrCodeBusinessState,
			"Task đã đăng, không thể xóa", common.StatusBadRequest, nil)
	}
	return s.DeleteById(ctx, taskID)
}
