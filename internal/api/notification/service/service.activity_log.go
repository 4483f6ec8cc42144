package notifysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"creator_studio/internal/api/events"
	models "creator_studio/internal/api/notification/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
	"creator_studio/internal/logger"
	"creator_studio/internal/utility"
)

// ActivityLogService là cấu trúc chứa các phương thức liên quan đến activity log
type ActivityLogService struct {
	*basesvc.BaseServiceMongoImpl[models.ActivityLog]
}

// NewActivityLogService tạo mới ActivityLogService
func NewActivityLogService() (*ActivityLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get activity_logs collection: %v", common.ErrNotFound)
	}

	return &ActivityLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ActivityLog](collection),
	}, nil
}

// ListNewest trả về các activity log mới nhất của một khách hàng
func (s *ActivityLogService) ListNewest(ctx context.Context, clientID primitive.ObjectID, limit int64) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.M{"ownerClientId": clientID}, opts)
}

// RegisterDataChangeHandler đăng ký handler ghi activity log từ event bus.
// Gọi một lần khi khởi động server, sau khi registry collection đã sẵn sàng.
// Log được ghi trực tiếp vào collection (không qua base service) để không
// phát lại event và tạo vòng lặp.
func RegisterDataChangeHandler() error {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityLogs)
	if !exist {
		return fmt.Errorf("failed to get activity_logs collection: %v", common.ErrNotFound)
	}

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		// Không ghi log cho chính collection activity_logs
		if e.CollectionName == global.MongoDB_ColNames.ActivityLogs {
			return
		}

		entry := models.ActivityLog{
			Collection:    e.CollectionName,
			Operation:     e.Operation,
			OwnerClientID: events.GetOwnerClientIDFromDocument(e.Document),
			Summary:       buildSummary(e),
			CreatedAt:     utility.CurrentTimeInMilli(),
		}

		if docID := extractDocumentID(e.Document); !docID.IsZero() {
			entry.DocumentID = docID
		}

		if _, err := collection.InsertOne(context.Background(), entry); err != nil {
			logger.GetErrorLogger().WithError(err).WithField("collection", e.CollectionName).
				Error("Không ghi được activity log")
		}
	})

	return nil
}

// buildSummary tạo mô tả ngắn cho activity log từ event
func buildSummary(e events.DataChangeEvent) string {
	name := events.GetStringField(e.Document, "Title")
	if name == "" {
		name = events.GetStringField(e.Document, "Name")
	}
	if name == "" {
		return fmt.Sprintf("%s %s", e.Operation, e.CollectionName)
	}
	return fmt.Sprintf("%s %s: %s", e.Operation, e.CollectionName, name)
}

// extractDocumentID lấy _id từ document của event qua ToMap
func extractDocumentID(doc interface{}) primitive.ObjectID {
	if doc == nil {
		return primitive.NilObjectID
	}
	dataMap, err := utility.ToMap(doc)
	if err != nil {
		return primitive.NilObjectID
	}
	if id, ok := dataMap["_id"].(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}
