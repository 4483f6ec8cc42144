// Package fvshdl chứa các handler cho domain fvs.
package fvshdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "creator_studio/internal/api/base/handler"
	fvsdto "creator_studio/internal/api/fvs/dto"
	fvsmodels "creator_studio/internal/api/fvs/models"
	fvssvc "creator_studio/internal/api/fvs/service"
	"creator_studio/internal/common"
)

// FVSHandler xử lý các request về đề xuất ý tưởng và sản xuất tự động
type FVSHandler struct {
	orchestrator *fvssvc.OrchestratorService
}

// NewFVSHandler tạo mới FVSHandler
func NewFVSHandler() (*FVSHandler, error) {
	orchestrator, err := fvssvc.NewOrchestratorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator service: %w", err)
	}

	return &FVSHandler{orchestrator: orchestrator}, nil
}

// parseBody parse và validate request body (body rỗng cho phép với ProposeInput)
func parseBody(c fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.Bind().Body(out)
}

// HandlePropose xử lý POST /fvs/propose
func (h *FVSHandler) HandlePropose(c fiber.Ctx) error {
	clientID, err := basehdl.RequireEffectiveClientID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	var input fvsdto.ProposeInput
	if err := parseBody(c, &input); err != nil {
		return basehdl.SendError(c, common.ErrInvalidFormat)
	}

	ideas, err := h.orchestrator.ProposeIdeas(c.Context(), clientID, input.Count)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, ideas, nil)
}

// HandleListIdeas xử lý GET /fvs/ideas?status=
func (h *FVSHandler) HandleListIdeas(c fiber.Ctx) error {
	clientID, err := basehdl.RequireEffectiveClientID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	ideas, err := h.orchestrator.ListIdeas(c.Context(), clientID, c.Query("status"))
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, ideas, nil)
}

// HandleAccept xử lý POST /fvs/idea/accept/:id
func (h *FVSHandler) HandleAccept(c fiber.Ctx) error {
	return h.handleIdeaStatus(c, h.orchestrator.AcceptIdea)
}

// HandleReject xử lý POST /fvs/idea/reject/:id
func (h *FVSHandler) HandleReject(c fiber.Ctx) error {
	return h.handleIdeaStatus(c, h.orchestrator.RejectIdea)
}

// HandleProduce xử lý POST /fvs/produce/:id: sản xuất một tập từ ý tưởng
func (h *FVSHandler) HandleProduce(c fiber.Ctx) error {
	clientID, err := basehdl.RequireEffectiveClientID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	ideaID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	if err := h.requireIdeaInScope(c, ideaID, clientID); err != nil {
		return basehdl.SendError(c, err)
	}

	submission, err := h.orchestrator.ProduceEpisode(c.Context(), ideaID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, submission, nil)
}

// handleIdeaStatus xử lý chung cho accept/reject
func (h *FVSHandler) handleIdeaStatus(c fiber.Ctx, op func(ctx context.Context, id primitive.ObjectID) (fvsmodels.FVSIdea, error)) error {
	clientID, err := basehdl.RequireEffectiveClientID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	ideaID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	if err := h.requireIdeaInScope(c, ideaID, clientID); err != nil {
		return basehdl.SendError(c, err)
	}

	idea, err := op(c.Context(), ideaID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, idea, nil)
}

// requireIdeaInScope kiểm tra ý tưởng tồn tại và thuộc phạm vi client của request
func (h *FVSHandler) requireIdeaInScope(c fiber.Ctx, ideaID, clientID primitive.ObjectID) error {
	idea, err := h.orchestrator.GetIdea(c.Context(), ideaID)
	if err != nil {
		return err
	}
	if idea.OwnerClientID != clientID {
		return common.ErrTenantMismatch
	}
	return nil
}
