package notifysvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	authmodels "creator_studio/internal/api/auth/models"
	basesvc "creator_studio/internal/api/base/service"
	models "creator_studio/internal/api/notification/models"
)

func newTestNotificationService(mt *mtest.T) *NotificationService {
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](mt.Coll),
		users:                basesvc.NewBaseServiceMongo[authmodels.User](mt.DB.Collection("users")),
	}
}

func userDoc(id primitive.ObjectID, role string, clientID primitive.ObjectID) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Người dùng"},
		{Key: "role", Value: role},
	}
	if !clientID.IsZero() {
		doc = append(doc, bson.E{Key: "clientId", Value: clientID})
	}
	return doc
}

func notificationDoc(userID primitive.ObjectID, notifType, priority string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "userId", Value: userID},
		{Key: "type", Value: notifType},
		{Key: "priority", Value: priority},
	}
}

// insertedNotificationFields gom (userId, priority, link) từ payload các lệnh
// insert đã gửi tới driver, theo thứ tự gửi.
func insertedNotificationFields(mt *mtest.T) (userIDs []primitive.ObjectID, priorities, links []string) {
	for _, ev := range mt.GetAllStartedEvents() {
		if ev.CommandName != "insert" {
			continue
		}
		values, err := ev.Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		for _, v := range values {
			doc := v.Document()
			userIDs = append(userIDs, doc.Lookup("userId").ObjectID())
			priorities = append(priorities, doc.Lookup("priority").StringValue())
			if link, lerr := doc.LookupErr("link"); lerr == nil {
				links = append(links, link.StringValue())
			} else {
				links = append(links, "")
			}
		}
	}
	return userIDs, priorities, links
}

// Notification thuộc về user: một sự kiện của khách hàng phải fan-out thành
// một bản ghi riêng cho từng user của khách hàng đó.
func TestNotify_FanOutChoMoiUserCuaKhachHang(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("hai user nhan rieng", func(mt *mtest.T) {
		clientID := primitive.NewObjectID()
		user1 := primitive.NewObjectID()
		user2 := primitive.NewObjectID()
		submissionID := primitive.NewObjectID()

		usersNS := mt.DB.Name() + ".users"
		notifNS := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
				userDoc(user1, authmodels.RoleClient, clientID),
				userDoc(user2, authmodels.RoleClient, clientID)),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, notifNS, mtest.FirstBatch,
				notificationDoc(user1, models.NotificationTypePublished, models.PriorityNormal)),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, notifNS, mtest.FirstBatch,
				notificationDoc(user2, models.NotificationTypePublished, models.PriorityNormal)),
		)

		svc := newTestNotificationService(mt)
		created, err := svc.Notify(context.Background(), clientID,
			models.NotificationTypePublished, "Đã đăng nội dung", "Bài đăng mới", "submission", submissionID)
		require.NoError(mt, err)
		require.Len(mt, created, 2)

		assert.Equal(mt, user1, created[0].UserID)
		assert.Equal(mt, user2, created[1].UserID)

		// Payload insert phải địa chỉ hóa đúng từng người nhận kèm link
		userIDs, priorities, links := insertedNotificationFields(mt)
		require.Len(mt, userIDs, 2)
		assert.Equal(mt, []primitive.ObjectID{user1, user2}, userIDs)
		assert.Equal(mt, []string{models.PriorityNormal, models.PriorityNormal}, priorities)
		assert.Equal(mt, "/submission/"+submissionID.Hex(), links[0])
	})

	mt.Run("khach hang chua co user", func(mt *mtest.T) {
		usersNS := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		svc := newTestNotificationService(mt)
		created, err := svc.Notify(context.Background(), primitive.NewObjectID(),
			models.NotificationTypeFvsIdea, "Ý tưởng mới", "", "fvs_idea", primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Empty(mt, created)
	})
}

// Luồng admin tách biệt: NotifyAdmins chỉ gửi cho admin, độ ưu tiên cao.
func TestNotifyAdmins_LuongRiengDoUuTienCao(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("mot admin", func(mt *mtest.T) {
		adminID := primitive.NewObjectID()
		taskID := primitive.NewObjectID()

		usersNS := mt.DB.Name() + ".users"
		notifNS := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
				userDoc(adminID, authmodels.RoleAdmin, primitive.NilObjectID)),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, notifNS, mtest.FirstBatch,
				notificationDoc(adminID, models.NotificationTypeSystem, models.PriorityHigh)),
		)

		svc := newTestNotificationService(mt)
		created, err := svc.NotifyAdmins(context.Background(),
			models.NotificationTypeSystem, "Đăng nội dung thất bại", "timeout", "publishing_task", taskID)
		require.NoError(mt, err)
		require.Len(mt, created, 1)
		assert.Equal(mt, adminID, created[0].UserID)

		userIDs, priorities, _ := insertedNotificationFields(mt)
		require.Len(mt, userIDs, 1)
		assert.Equal(mt, adminID, userIDs[0])
		assert.Equal(mt, models.PriorityHigh, priorities[0])
	})
}
