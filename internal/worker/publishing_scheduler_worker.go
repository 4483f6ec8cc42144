// Package worker chứa các background worker chạy định kỳ của server.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	contentmodels "creator_studio/internal/api/content/models"
	contentsvc "creator_studio/internal/api/content/service"
	notifymodels "creator_studio/internal/api/notification/models"
	notifysvc "creator_studio/internal/api/notification/service"
	"creator_studio/internal/logger"
)

// Các interface hẹp để worker test được với fake.

type publishingTaskStore interface {
	FindDue(ctx context.Context, now int64, limit int64) ([]contentmodels.PublishingTask, error)
	MarkPosted(ctx context.Context, taskID primitive.ObjectID, platformPostID string) (contentmodels.PublishingTask, error)
	MarkFailed(ctx context.Context, taskID primitive.ObjectID, reason string) (contentmodels.PublishingTask, error)
}

type submissionStatusUpdater interface {
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (contentmodels.Submission, error)
}

type publishNotifier interface {
	Notify(ctx context.Context, clientID primitive.ObjectID, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]notifymodels.Notification, error)
	NotifyAdmins(ctx context.Context, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]notifymodels.Notification, error)
}

// PublishingSchedulerWorker quét các publishing task scheduled đã đến hạn và đăng.
// Chạy định kỳ (mặc định 30 giây), mỗi lần xử lý tối đa batchSize task.
// MarkPosted có điều kiện trạng thái nên nhiều instance chạy song song
// không đăng trùng một task.
type PublishingSchedulerWorker struct {
	tasks       publishingTaskStore
	submissions submissionStatusUpdater
	notify      publishNotifier
	interval    time.Duration // Khoảng thời gian giữa các lần quét
	batchSize   int64         // Số task tối đa mỗi lần quét
	now         func() int64  // Nguồn thời gian (UnixMilli), thay được trong test
	newPostID   func() string // Sinh ID bài đăng phía nền tảng
}

// NewPublishingSchedulerWorker tạo mới PublishingSchedulerWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần quét (mặc định: 30 giây)
//   - batchSize: Số task tối đa mỗi lần (mặc định: 50)
func NewPublishingSchedulerWorker(interval time.Duration, batchSize int64) (*PublishingSchedulerWorker, error) {
	publishingService, err := contentsvc.NewPublishingTaskService()
	if err != nil {
		return nil, err
	}
	submissionService, err := contentsvc.NewSubmissionService()
	if err != nil {
		return nil, err
	}
	notificationService, err := notifysvc.NewNotificationService()
	if err != nil {
		return nil, err
	}

	if interval < time.Second {
		interval = 30 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}

	return &PublishingSchedulerWorker{
		tasks:       publishingService,
		submissions: submissionService,
		notify:      notificationService,
		interval:    interval,
		batchSize:   batchSize,
		now:         func() int64 { return time.Now().UnixMilli() },
		newPostID:   func() string { return uuid.New().String() },
	}, nil
}

// Start chạy worker trong vòng lặp cho tới khi context bị hủy
func (w *PublishingSchedulerWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("📅 [PUBLISH_SCHEDULER] Starting Publishing Scheduler Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📅 [PUBLISH_SCHEDULER] Publishing Scheduler Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithField("panic", r).Error("📅 [PUBLISH_SCHEDULER] Panic trong lần quét, bỏ qua")
					}
				}()
				w.Sweep(ctx)
			}()
		}
	}
}

// Sweep xử lý một lượt quét: tìm các task đến hạn và đăng từng task.
// Lỗi của một task không ảnh hưởng các task còn lại.
func (w *PublishingSchedulerWorker) Sweep(ctx context.Context) {
	log := logger.GetAppLogger()

	due, err := w.tasks.FindDue(ctx, w.now(), w.batchSize)
	if err != nil {
		log.WithError(err).Error("📅 [PUBLISH_SCHEDULER] Không đọc được danh sách task đến hạn")
		return
	}
	if len(due) == 0 {
		return
	}

	log.WithField("count", len(due)).Info("📅 [PUBLISH_SCHEDULER] Xử lý các task đến hạn")

	for _, task := range due {
		w.publishOne(ctx, task)
	}
}

// publishOne đăng một task: chuyển posted với điều kiện trạng thái,
// cập nhật submission sang published và tạo notification.
func (w *PublishingSchedulerWorker) publishOne(ctx context.Context, task contentmodels.PublishingTask) {
	log := logger.GetAppLogger()

	posted, err := w.tasks.MarkPosted(ctx, task.ID, w.newPostID())
	if err != nil {
		if errors.Is(err, contentsvc.ErrTaskAlreadyProcessed) {
			// Instance khác đã xử lý task này giữa lúc quét và lúc đăng
			log.WithField("taskId", task.ID.Hex()).Debug("📅 [PUBLISH_SCHEDULER] Task đã được xử lý, bỏ qua")
			return
		}
		log.WithError(err).WithField("taskId", task.ID.Hex()).Error("📅 [PUBLISH_SCHEDULER] Không đăng được task")
		if _, ferr := w.tasks.MarkFailed(ctx, task.ID, err.Error()); ferr != nil && !errors.Is(ferr, contentsvc.ErrTaskAlreadyProcessed) {
			log.WithError(ferr).WithField("taskId", task.ID.Hex()).Error("📅 [PUBLISH_SCHEDULER] Không đánh dấu được task failed")
		}

		// Đăng thất bại là sự kiện vận hành: báo cho luồng admin
		if _, nerr := w.notify.NotifyAdmins(ctx,
			notifymodels.NotificationTypeSystem,
			"Đăng nội dung thất bại trên "+task.Platform,
			err.Error(),
			"publishing_task", task.ID); nerr != nil {
			log.WithError(nerr).WithField("taskId", task.ID.Hex()).
				Error("📅 [PUBLISH_SCHEDULER] Không tạo được notification lỗi đăng bài")
		}
		return
	}

	if _, err := w.submissions.UpdateStatus(ctx, posted.SubmissionID, contentmodels.SubmissionStatusPublished); err != nil {
		log.WithError(err).WithField("submissionId", posted.SubmissionID.Hex()).
			Error("📅 [PUBLISH_SCHEDULER] Không cập nhật được trạng thái submission")
	}

	if _, err := w.notify.Notify(ctx, posted.OwnerClientID,
		notifymodels.NotificationTypePublished,
		"Đã đăng nội dung lên "+posted.Platform,
		"Bài đăng: "+posted.PlatformPostID,
		"publishing_task", posted.ID); err != nil {
		log.WithError(err).WithField("taskId", posted.ID.Hex()).
			Error("📅 [PUBLISH_SCHEDULER] Không tạo được notification đăng bài")
	}

	log.WithFields(map[string]interface{}{
		"taskId":         posted.ID.Hex(),
		"platform":       posted.Platform,
		"platformPostId": posted.PlatformPostID,
	}).Info("📅 [PUBLISH_SCHEDULER] Đã đăng task")
}
