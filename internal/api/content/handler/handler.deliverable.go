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

// DeliverableHandler xử lý các request về deliverable
type DeliverableHandler struct {
	*basehdl.BaseHandler[models.Deliverable, contentdto.DeliverableCreateInput, contentdto.DeliverableUpdateInput]
	deliverableService *contentsvc.DeliverableService
}

// NewDeliverableHandler tạo mới DeliverableHandler
func NewDeliverableHandler() (*DeliverableHandler, error) {
	deliverableService, err := contentsvc.NewDeliverableService()
	if err != nil {
		return nil, fmt.Errorf("failed to create deliverable service: %w", err)
	}

	return &DeliverableHandler{
		BaseHandler:        basehdl.NewBaseHandler[models.Deliverable, contentdto.DeliverableCreateInput, contentdto.DeliverableUpdateInput](deliverableService),
		deliverableService: deliverableService,
	}, nil
}

// HandleMarkReady xử lý POST /deliverable/mark-ready/:id
func (h *DeliverableHandler) HandleMarkReady(c fiber.Ctx) error {
	deliverableID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	existing, err := h.deliverableService.FindOneById(c.Context(), deliverableID)
	if err != nil {
		return basehdl.SendError(c, err)
	}
	if err := h.ValidateClientAccess(c, existing); err != nil {
		return basehdl.SendError(c, err)
	}

	updated, err := h.deliverableService.MarkReady(c.Context(), deliverableID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, updated, nil)
}
