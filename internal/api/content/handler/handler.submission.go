// Package contenthdl chứa các handler của pipeline nội dung.
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

// SubmissionHandler xử lý các request về submission
type SubmissionHandler struct {
	*basehdl.BaseHandler[models.Submission, contentdto.SubmissionCreateInput, contentdto.SubmissionUpdateInput]
	submissionService *contentsvc.SubmissionService
}

// NewSubmissionHandler tạo mới SubmissionHandler
func NewSubmissionHandler() (*SubmissionHandler, error) {
	submissionService, err := contentsvc.NewSubmissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create submission service: %w", err)
	}

	return &SubmissionHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Submission, contentdto.SubmissionCreateInput, contentdto.SubmissionUpdateInput](submissionService),
		submissionService: submissionService,
	}, nil
}

// HandleUpdateStatus xử lý POST /submission/update-status/:id
func (h *SubmissionHandler) HandleUpdateStatus(c fiber.Ctx) error {
	submissionID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	// Kiểm tra phạm vi client trước khi đổi trạng thái
	existing, err := h.submissionService.FindOneById(c.Context(), submissionID)
	if err != nil {
		return basehdl.SendError(c, err)
	}
	if err := h.ValidateClientAccess(c, existing); err != nil {
		return basehdl.SendError(c, err)
	}

	var input contentdto.SubmissionStatusInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	updated, err := h.submissionService.UpdateStatus(c.Context(), submissionID, input.Status)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, updated, nil)
}
