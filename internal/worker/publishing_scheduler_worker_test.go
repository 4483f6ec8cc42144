package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	contentmodels "creator_studio/internal/api/content/models"
	contentsvc "creator_studio/internal/api/content/service"
	notifymodels "creator_studio/internal/api/notification/models"
)

// Các fake store cho worker

type fakeTaskStore struct {
	due        []contentmodels.PublishingTask
	findErr    error
	postErr    map[primitive.ObjectID]error // Lỗi MarkPosted theo task
	posted     []primitive.ObjectID
	failed     map[primitive.ObjectID]string
	lastPostID string
}

func (f *fakeTaskStore) FindDue(ctx context.Context, now int64, limit int64) ([]contentmodels.PublishingTask, error) {
	return f.due, f.findErr
}

func (f *fakeTaskStore) MarkPosted(ctx context.Context, taskID primitive.ObjectID, platformPostID string) (contentmodels.PublishingTask, error) {
	if err := f.postErr[taskID]; err != nil {
		return contentmodels.PublishingTask{}, err
	}
	f.posted = append(f.posted, taskID)
	f.lastPostID = platformPostID

	for _, task := range f.due {
		if task.ID == taskID {
			task.Status = contentmodels.PublishingStatusPosted
			task.PlatformPostID = platformPostID
			return task, nil
		}
	}
	return contentmodels.PublishingTask{}, errors.New("task không tồn tại")
}

func (f *fakeTaskStore) MarkFailed(ctx context.Context, taskID primitive.ObjectID, reason string) (contentmodels.PublishingTask, error) {
	if f.failed == nil {
		f.failed = map[primitive.ObjectID]string{}
	}
	f.failed[taskID] = reason
	return contentmodels.PublishingTask{ID: taskID, Status: contentmodels.PublishingStatusFailed}, nil
}

type fakeSubmissionUpdater struct {
	updates map[primitive.ObjectID]string
}

func (f *fakeSubmissionUpdater) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (contentmodels.Submission, error) {
	if f.updates == nil {
		f.updates = map[primitive.ObjectID]string{}
	}
	f.updates[id] = status
	return contentmodels.Submission{ID: id, Status: status}, nil
}

type fakeNotifier struct {
	notified      []string // Các type notification đã fan-out cho user của client
	adminNotified []string // Các type notification đã gửi luồng admin
}

func (f *fakeNotifier) Notify(ctx context.Context, clientID primitive.ObjectID, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]notifymodels.Notification, error) {
	f.notified = append(f.notified, notifType)
	return []notifymodels.Notification{{Type: notifType}}, nil
}

func (f *fakeNotifier) NotifyAdmins(ctx context.Context, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]notifymodels.Notification, error) {
	f.adminNotified = append(f.adminNotified, notifType)
	return []notifymodels.Notification{{Type: notifType}}, nil
}

func newTestWorker(tasks *fakeTaskStore, submissions *fakeSubmissionUpdater, notify *fakeNotifier) *PublishingSchedulerWorker {
	return &PublishingSchedulerWorker{
		tasks:       tasks,
		submissions: submissions,
		notify:      notify,
		interval:    30 * time.Second,
		batchSize:   50,
		now:         func() int64 { return 1_700_000_000_000 },
		newPostID:   func() string { return "post-abc123" },
	}
}

func TestSweep_DangTaskDenHan(t *testing.T) {
	taskID := primitive.NewObjectID()
	submissionID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()

	tasks := &fakeTaskStore{
		due: []contentmodels.PublishingTask{{
			ID:            taskID,
			SubmissionID:  submissionID,
			OwnerClientID: clientID,
			Platform:      "youtube",
			Status:        contentmodels.PublishingStatusScheduled,
			ScheduledAt:   1_699_999_000_000,
		}},
	}
	submissions := &fakeSubmissionUpdater{}
	notify := &fakeNotifier{}

	w := newTestWorker(tasks, submissions, notify)
	w.Sweep(context.Background())

	require.Len(t, tasks.posted, 1)
	assert.Equal(t, taskID, tasks.posted[0])
	assert.Equal(t, "post-abc123", tasks.lastPostID)

	// Submission chuyển sang published
	assert.Equal(t, contentmodels.SubmissionStatusPublished, submissions.updates[submissionID])

	// Đúng một lần fan-out PUBLISHED cho user của client, không đụng luồng admin
	require.Len(t, notify.notified, 1)
	assert.Equal(t, notifymodels.NotificationTypePublished, notify.notified[0])
	assert.Empty(t, notify.adminNotified)
}

func TestSweep_TaskDaXuLy_BoQua(t *testing.T) {
	taskID := primitive.NewObjectID()

	tasks := &fakeTaskStore{
		due: []contentmodels.PublishingTask{{ID: taskID, Status: contentmodels.PublishingStatusScheduled}},
		postErr: map[primitive.ObjectID]error{
			// Instance khác đã đăng task giữa lúc quét và lúc đăng
			taskID: contentsvc.ErrTaskAlreadyProcessed,
		},
	}
	submissions := &fakeSubmissionUpdater{}
	notify := &fakeNotifier{}

	w := newTestWorker(tasks, submissions, notify)
	w.Sweep(context.Background())

	assert.Empty(t, tasks.posted)
	assert.Empty(t, tasks.failed, "task đã xử lý không được đánh dấu failed")
	assert.Empty(t, submissions.updates)
	assert.Empty(t, notify.notified)
	assert.Empty(t, notify.adminNotified, "thua claim không phải sự kiện vận hành")
}

func TestSweep_MarkPostedLoi_DanhDauFailed(t *testing.T) {
	taskID := primitive.NewObjectID()

	tasks := &fakeTaskStore{
		due: []contentmodels.PublishingTask{{ID: taskID, Status: contentmodels.PublishingStatusScheduled}},
		postErr: map[primitive.ObjectID]error{
			taskID: errors.New("mongo: network error"),
		},
	}
	submissions := &fakeSubmissionUpdater{}
	notify := &fakeNotifier{}

	w := newTestWorker(tasks, submissions, notify)
	w.Sweep(context.Background())

	assert.Empty(t, tasks.posted)
	require.Contains(t, tasks.failed, taskID)
	assert.Contains(t, tasks.failed[taskID], "network error")
	assert.Empty(t, notify.notified)

	// Đăng thất bại báo về luồng admin
	require.Len(t, notify.adminNotified, 1)
	assert.Equal(t, notifymodels.NotificationTypeSystem, notify.adminNotified[0])
}

func TestSweep_MotTaskLoiKhongAnhHuongTaskKhac(t *testing.T) {
	badID := primitive.NewObjectID()
	goodID := primitive.NewObjectID()
	submissionID := primitive.NewObjectID()

	tasks := &fakeTaskStore{
		due: []contentmodels.PublishingTask{
			{ID: badID, Status: contentmodels.PublishingStatusScheduled},
			{ID: goodID, SubmissionID: submissionID, Status: contentmodels.PublishingStatusScheduled},
		},
		postErr: map[primitive.ObjectID]error{
			badID: errors.New("mongo: network error"),
		},
	}
	submissions := &fakeSubmissionUpdater{}
	notify := &fakeNotifier{}

	w := newTestWorker(tasks, submissions, notify)
	w.Sweep(context.Background())

	require.Len(t, tasks.posted, 1)
	assert.Equal(t, goodID, tasks.posted[0])
	assert.Contains(t, tasks.failed, badID)
	assert.Equal(t, contentmodels.SubmissionStatusPublished, submissions.updates[submissionID])
}

func TestSweep_KhongCoTaskDenHan(t *testing.T) {
	tasks := &fakeTaskStore{}
	submissions := &fakeSubmissionUpdater{}
	notify := &fakeNotifier{}

	w := newTestWorker(tasks, submissions, notify)
	w.Sweep(context.Background())

	assert.Empty(t, tasks.posted)
	assert.Empty(t, submissions.updates)
	assert.Empty(t, notify.notified)
}
