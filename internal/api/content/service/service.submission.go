// Package contentsvc chứa các service của pipeline nội dung.
package contentsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "creator_studio/internal/api/content/models"
	basesvc "creator_studio/internal/api/base/service"
	notifysvc "creator_studio/internal/api/notification/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
	"creator_studio/internal/logger"
)

// SubmissionService là cấu trúc chứa các phương thức liên quan đến submission
type SubmissionService struct {
	*basesvc.BaseServiceMongoImpl[models.Submission]
	notificationService *notifysvc.NotificationService
}

// NewSubmissionService tạo mới SubmissionService
func NewSubmissionService() (*SubmissionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Submissions)
	if !exist {
		return nil, fmt.Errorf("failed to get submissions collection: %v", common.ErrNotFound)
	}
	notificationService, err := notifysvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	return &SubmissionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Submission](collection),
		notificationService:  notificationService,
	}, nil
}

// UpdateStatus đổi trạng thái submission và tạo notification STATUS_CHANGE.
// Status phải thuộc danh sách hợp lệ; thứ tự chuyển không bị ràng buộc.
// Đổi sang trạng thái hiện tại là no-op: không update, không notification.
func (s *SubmissionService) UpdateStatus(ctx context.Context, submissionID primitive.ObjectID, newStatus string) (models.Submission, error) {
	var zero models.Submission

	newStatus = strings.TrimSpace(newStatus)
	if !models.IsValidSubmissionStatus(newStatus) {
		return zero, common.NewError(common.ErrCodeValidationInput,
			"Trạng thái không hợp lệ: "+newStatus, common.StatusBadRequest, nil)
	}

	submission, err := s.FindOneById(ctx, submissionID)
	if err != nil {
		return zero, err
	}

	if submission.Status == newStatus {
		return submission, nil
	}

	oldStatus := submission.Status
	updated, err := s.UpdateById(ctx, submissionID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": newStatus},
	})
	if err != nil {
		return zero, err
	}

	// Notification đi cùng lần đổi trạng thái thành công; lỗi notification
	// chỉ log, không làm hỏng thao tác chính.
	if _, err := s.notificationService.NotifyStatusChange(ctx,
		updated.OwnerClientID, updated.ID, updated.Title, oldStatus, newStatus); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("submissionId", submissionID.Hex()).
			Error("Không tạo được notification STATUS_CHANGE")
	}

	return updated, nil
}
