package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "creator_studio/internal/api/base/handler"
	contentdto "creator_studio/internal/api/content/dto"
	models "creator_studio/internal/api/content/models"
	contentsvc "creator_studio/internal/api/content/service"
	"creator_studio/internal/common"
)

// AssetHandler xử lý các request về asset
type AssetHandler struct {
	*basehdl.BaseHandler[models.Asset, contentdto.AssetCreateInput, contentdto.AssetUpdateInput]
	assetService *contentsvc.AssetService
}

// NewAssetHandler tạo mới AssetHandler
func NewAssetHandler() (*AssetHandler, error) {
	assetService, err := contentsvc.NewAssetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create asset service: %w", err)
	}

	return &AssetHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Asset, contentdto.AssetCreateInput, contentdto.AssetUpdateInput](assetService),
		assetService: assetService,
	}, nil
}

// HandleSetPrimaryThumbnail xử lý POST /asset/set-primary-thumbnail/:id
func (h *AssetHandler) HandleSetPrimaryThumbnail(c fiber.Ctx) error {
	assetID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	existing, err := h.assetService.FindOneById(c.Context(), assetID)
	if err != nil {
		return basehdl.SendError(c, err)
	}
	if err := h.ValidateClientAccess(c, existing); err != nil {
		return basehdl.SendError(c, err)
	}

	updated, err := h.assetService.SetPrimaryThumbnail(c.Context(), assetID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, updated, nil)
}

// HandleListBySubmission xử lý GET /asset/by-submission/:id?type=
func (h *AssetHandler) HandleListBySubmission(c fiber.Ctx) error {
	submissionID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	assets, err := h.assetService.FindBySubmission(c.Context(), submissionID, c.Query("type"))
	if err != nil {
		return basehdl.SendError(c, err)
	}

	// Lọc theo phạm vi client: bỏ các asset không thuộc client của request
	visible := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if err := h.ValidateClientAccess(c, asset); err == nil {
			visible = append(visible, asset)
		}
	}

	return basehdl.HandleResponse(c, visible, nil)
}
