// Package notifysvc chứa các service cho domain notification.
package notifysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "creator_studio/internal/api/auth/models"
	basesvc "creator_studio/internal/api/base/service"
	models "creator_studio/internal/api/notification/models"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
	"creator_studio/internal/utility"
)

// ListLimit là số notification tối đa trả về cho màn hình danh sách
const ListLimit = 20

// recipientFinder tra cứu người nhận notification từ collection users
type recipientFinder interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]authmodels.User, error)
}

// NotificationService là cấu trúc chứa các phương thức liên quan đến notification.
// Notification thuộc về user: sự kiện của một khách hàng được fan-out tới mọi
// user của khách hàng đó, admin có luồng thông báo riêng.
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
	users recipientFinder
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	usersCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](collection),
		users:                basesvc.NewBaseServiceMongo[authmodels.User](usersCollection),
	}, nil
}

// NotifyUser tạo một notification cho một người dùng cụ thể
func (s *NotificationService) NotifyUser(ctx context.Context, userID primitive.ObjectID, notifType, title, body, link, priority string, entityType string, entityID primitive.ObjectID) (models.Notification, error) {
	return s.InsertOne(ctx, models.Notification{
		UserID:     userID,
		Type:       notifType,
		Title:      title,
		Body:       body,
		Link:       link,
		Priority:   priority,
		EntityType: entityType,
		EntityID:   entityID,
	})
}

// Notify tạo notification cho mọi user đang hoạt động của một khách hàng.
// Khách hàng chưa có user nào thì không tạo gì và không lỗi.
func (s *NotificationService) Notify(ctx context.Context, clientID primitive.ObjectID, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]models.Notification, error) {
	recipients, err := s.users.Find(ctx, bson.M{"clientId": clientID, "isBlock": false}, nil)
	if err != nil {
		return nil, err
	}

	link := entityLink(entityType, entityID)
	created := make([]models.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		notification, err := s.NotifyUser(ctx, recipient.ID, notifType, title, body, link, models.PriorityNormal, entityType, entityID)
		if err != nil {
			return created, err
		}
		created = append(created, notification)
	}
	return created, nil
}

// NotifyAdmins tạo notification cho mọi admin đang hoạt động, độ ưu tiên cao.
// Dùng cho các sự kiện vận hành (đăng bài thất bại, lỗi hệ thống).
func (s *NotificationService) NotifyAdmins(ctx context.Context, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]models.Notification, error) {
	admins, err := s.users.Find(ctx, bson.M{"role": authmodels.RoleAdmin, "isBlock": false}, nil)
	if err != nil {
		return nil, err
	}

	link := entityLink(entityType, entityID)
	created := make([]models.Notification, 0, len(admins))
	for _, admin := range admins {
		notification, err := s.NotifyUser(ctx, admin.ID, notifType, title, body, link, models.PriorityHigh, entityType, entityID)
		if err != nil {
			return created, err
		}
		created = append(created, notification)
	}
	return created, nil
}

// NotifyStatusChange tạo notification STATUS_CHANGE khi submission đổi trạng thái.
// Gọi đồng bộ từ SubmissionService.UpdateStatus để mỗi lần đổi trạng thái
// thành công sinh đúng một notification cho mỗi user của khách hàng.
func (s *NotificationService) NotifyStatusChange(ctx context.Context, clientID, submissionID primitive.ObjectID, title, fromStatus, toStatus string) ([]models.Notification, error) {
	return s.Notify(ctx, clientID,
		models.NotificationTypeStatusChange,
		fmt.Sprintf("'%s' chuyển từ %s sang %s", title, fromStatus, toStatus),
		fmt.Sprintf("Submission '%s' đã chuyển trạng thái %s -> %s", title, fromStatus, toStatus),
		"submission", submissionID)
}

// ListNewest trả về tối đa ListLimit notification mới nhất của một người dùng
func (s *NotificationService) ListNewest(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(ListLimit)
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

// CountUnread đếm số notification chưa đọc của một người dùng
func (s *NotificationService) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"userId": userID, "isRead": false})
}

// MarkRead đánh dấu một notification là đã đọc. Idempotent: gọi lại trên
// notification đã đọc vẫn thành công và không đổi readAt.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID primitive.ObjectID) (models.Notification, error) {
	notification, err := s.FindOne(ctx, bson.M{"_id": notificationID, "userId": userID}, nil)
	if err != nil {
		return notification, err
	}

	if notification.IsRead {
		return notification, nil
	}

	return s.UpdateById(ctx, notificationID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isRead": true,
			"readAt": utility.CurrentTimeInMilli(),
		},
	})
}

// MarkAllRead đánh dấu tất cả notification chưa đọc của người dùng là đã đọc.
// Trả về số notification được cập nhật.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.UpdateMany(ctx,
		bson.M{"userId": userID, "isRead": false},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"isRead": true,
				"readAt": utility.CurrentTimeInMilli(),
			},
		}, nil)
}

// entityLink dựng đường dẫn tới màn hình của đối tượng liên quan
func entityLink(entityType string, entityID primitive.ObjectID) string {
	if entityType == "" || entityID.IsZero() {
		return ""
	}
	return fmt.Sprintf("/%s/%s", entityType, entityID.Hex())
}
