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

// PublishingTaskHandler xử lý các request về publishing task
type PublishingTaskHandler struct {
	*basehdl.BaseHandler[models.PublishingTask, contentdto.PublishingTaskCreateInput, contentdto.PublishingTaskUpdateInput]
	publishingService *contentsvc.PublishingTaskService
}

// NewPublishingTaskHandler tạo mới PublishingTaskHandler
func NewPublishingTaskHandler() (*PublishingTaskHandler, error) {
	publishingService, err := contentsvc.NewPublishingTaskService()
	if err != nil {
		return nil, fmt.Errorf("failed to create publishing task service: %w", err)
	}

	return &PublishingTaskHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.PublishingTask, contentdto.PublishingTaskCreateInput, contentdto.PublishingTaskUpdateInput](publishingService),
		publishingService: publishingService,
	}, nil
}

// HandleSchedule xử lý POST /publishing-task/schedule/:id
func (h *PublishingTaskHandler) HandleSchedule(c fiber.Ctx) error {
	taskID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	existing, err := h.publishingService.FindOneById(c.Context(), taskID)
	if err != nil {
		return basehdl.SendError(c, err)
	}
	if err := h.ValidateClientAccess(c, existing); err != nil {
		return basehdl.SendError(c, err)
	}

	var input contentdto.PublishingScheduleInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	updated, err := h.publishingService.Schedule(c.Context(), taskID, input.ScheduledAt)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, updated, nil)
}

// HandleDelete xử lý DELETE /publishing-task/delete/:id (task đã posted không xóa được)
func (h *PublishingTaskHandler) HandleDelete(c fiber.Ctx) error {
	taskID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	existing, err := h.publishingService.FindOneById(c.Context(), taskID)
	if err != nil {
		return basehdl.SendError(c, err)
	}
	if err := h.ValidateClientAccess(c, existing); err != nil {
		return basehdl.SendError(c, err)
	}

	if err := h.publishingService.DeleteTask(c.Context(), taskID); err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, fiber.Map{"deleted": true, "id": taskID.Hex()}, nil)
}
