package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "creator_studio/internal/api/content/models"
	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
)

// AssetService là cấu trúc chứa các phương thức liên quan đến asset
type AssetService struct {
	*basesvc.BaseServiceMongoImpl[models.Asset]
}

// NewAssetService tạo mới AssetService
func NewAssetService() (*AssetService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Assets)
	if !exist {
		return nil, fmt.Errorf("failed to get assets collection: %v", common.ErrNotFound)
	}

	return &AssetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Asset](collection),
	}, nil
}

// FindBySubmission trả về các asset của một submission, lọc theo type nếu có
func (s *AssetService) FindBySubmission(ctx context.Context, submissionID primitive.ObjectID, assetType string) ([]models.Asset, error) {
	filter := bson.M{"submissionId": submissionID}
	if assetType != "" {
		filter["type"] = assetType
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// SetPrimaryThumbnail chọn một thumbnail làm thumbnail chính của submission.
// Các thumbnail khác của cùng submission bị bỏ cờ chính trước, đảm bảo
// mỗi submission có tối đa một thumbnail chính.
func (s *AssetService) SetPrimaryThumbnail(ctx context.Context, assetID primitive.ObjectID) (models.Asset, error) {
	var zero models.Asset

	asset, err := s.FindOneById(ctx, assetID)
	if err != nil {
		return zero, err
	}

	if asset.Type != models.AssetTypeThumbnail {
		return zero, common.NewError(common.ErrCodeBusinessOperation,
			"Chỉ asset loại thumbnail mới đặt được làm thumbnail chính", common.StatusBadRequest, nil)
	}

	// Bỏ cờ chính trên các thumbnail anh em trước khi đặt cờ mới
	_, err = s.UpdateMany(ctx,
		bson.M{
			"submissionId":       asset.SubmissionID,
			"type":               models.AssetTypeThumbnail,
			"isPrimaryThumbnail": true,
		},
		&basesvc.UpdateData{
			Set: map[string]interface{}{"isPrimaryThumbnail": false},
		}, nil)
	if err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, assetID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isPrimaryThumbnail": true},
	})
}

// FindPrimaryThumbnail trả về thumbnail chính của submission (ErrNotFound nếu chưa chọn)
func (s *AssetService) FindPrimaryThumbnail(ctx context.Context, submissionID primitive.ObjectID) (models.Asset, error) {
	return s.FindOne(ctx, bson.M{
		"submissionId":       submissionID,
		"type":               models.AssetTypeThumbnail,
		"isPrimaryThumbnail": true,
	}, nil)
}
