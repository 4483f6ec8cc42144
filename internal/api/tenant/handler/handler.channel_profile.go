package tenanthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "creator_studio/internal/api/base/handler"
	tenantdto "creator_studio/internal/api/tenant/dto"
	models "creator_studio/internal/api/tenant/models"
	tenantsvc "creator_studio/internal/api/tenant/service"
)

// ChannelProfileHandler xử lý các request về hồ sơ kênh
type ChannelProfileHandler struct {
	*basehdl.BaseHandler[models.ChannelProfile, tenantdto.ChannelProfileCreateInput, tenantdto.ChannelProfileUpdateInput]
	profileService *tenantsvc.ChannelProfileService
}

// NewChannelProfileHandler tạo mới ChannelProfileHandler
func NewChannelProfileHandler() (*ChannelProfileHandler, error) {
	profileService, err := tenantsvc.NewChannelProfileService()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel profile service: %w", err)
	}

	return &ChannelProfileHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.ChannelProfile, tenantdto.ChannelProfileCreateInput, tenantdto.ChannelProfileUpdateInput](profileService),
		profileService: profileService,
	}, nil
}

// HandleGetMine xử lý GET /channel-profile/me: hồ sơ kênh của client trong phạm vi request
func (h *ChannelProfileHandler) HandleGetMine(c fiber.Ctx) error {
	clientID, err := basehdl.RequireEffectiveClientID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	profile, err := h.profileService.FindByClient(c.Context(), clientID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, profile, nil)
}

// HandleUpsertMine xử lý PUT /channel-profile/me: tạo hoặc cập nhật hồ sơ kênh
func (h *ChannelProfileHandler) HandleUpsertMine(c fiber.Ctx) error {
	clientID, err := basehdl.RequireEffectiveClientID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	var input tenantdto.ChannelProfileCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	profile, err := h.TransformCreateInputToModel(input)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	updated, err := h.profileService.UpsertForClient(c.Context(), clientID, profile)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, updated, nil)
}
