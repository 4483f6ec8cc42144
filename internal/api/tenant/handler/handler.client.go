// Package tenanthdl chứa các handler cho domain tenant.
package tenanthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "creator_studio/internal/api/base/handler"
	tenantdto "creator_studio/internal/api/tenant/dto"
	models "creator_studio/internal/api/tenant/models"
	tenantsvc "creator_studio/internal/api/tenant/service"
)

// ClientHandler xử lý các request quản trị khách hàng (admin)
type ClientHandler struct {
	*basehdl.BaseHandler[models.Client, tenantdto.ClientCreateInput, tenantdto.ClientUpdateInput]
	clientService *tenantsvc.ClientService
}

// NewClientHandler tạo mới ClientHandler
func NewClientHandler() (*ClientHandler, error) {
	clientService, err := tenantsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %w", err)
	}

	return &ClientHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Client, tenantdto.ClientCreateInput, tenantdto.ClientUpdateInput](clientService),
		clientService: clientService,
	}, nil
}

// HandleListWithStats xử lý GET /admin/clients: danh sách khách hàng kèm số liệu tổng hợp
func (h *ClientHandler) HandleListWithStats(c fiber.Ctx) error {
	results, err := h.clientService.ListWithStats(c.Context())
	if err != nil {
		return basehdl.SendError(c, err)
	}
	return basehdl.HandleResponse(c, results, nil)
}
