package basesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"creator_studio/internal/common"
)

// claimTask mô phỏng một document có trạng thái được claim bằng filter điều kiện
type claimTask struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Status string             `bson:"status"`
}

// UpdateOne với filter điều kiện trạng thái phải trả về document SAU update
// cho bên thắng claim: sau khi status đổi thì filter gốc không còn match,
// nên refetch bằng filter gốc sẽ trả về ErrNotFound sai.
func TestUpdateOne_FilterDieuKienTrangThai_TraVeDocumentSauUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("claim thanh cong", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "status", Value: "posted"},
		}}))

		svc := NewBaseServiceMongo[claimTask](mt.Coll)
		updated, err := svc.UpdateOne(context.Background(),
			bson.M{"_id": id, "status": "scheduled"},
			&UpdateData{Set: map[string]interface{}{"status": "posted"}},
			nil)
		require.NoError(mt, err)

		assert.Equal(mt, id, updated.ID)
		assert.Equal(mt, "posted", updated.Status)
	})

	mt.Run("khong match tra ve ErrNotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		svc := NewBaseServiceMongo[claimTask](mt.Coll)
		_, err := svc.UpdateOne(context.Background(),
			bson.M{"_id": primitive.NewObjectID(), "status": "scheduled"},
			&UpdateData{Set: map[string]interface{}{"status": "posted"}},
			nil)
		require.ErrorIs(mt, err, common.ErrNotFound)
	})
}
