package tenanthdl

import (
	"fmt"

	basehdl "creator_studio/internal/api/base/handler"
	tenantdto "creator_studio/internal/api/tenant/dto"
	models "creator_studio/internal/api/tenant/models"
	tenantsvc "creator_studio/internal/api/tenant/service"
)

// PlatformConnectionHandler xử lý các request về kết nối nền tảng
type PlatformConnectionHandler struct {
	*basehdl.BaseHandler[models.PlatformConnection, tenantdto.PlatformConnectionCreateInput, tenantdto.PlatformConnectionUpdateInput]
	connectionService *tenantsvc.PlatformConnectionService
}

// NewPlatformConnectionHandler tạo mới PlatformConnectionHandler
func NewPlatformConnectionHandler() (*PlatformConnectionHandler, error) {
	connectionService, err := tenantsvc.NewPlatformConnectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create platform connection service: %w", err)
	}

	return &PlatformConnectionHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.PlatformConnection, tenantdto.PlatformConnectionCreateInput, tenantdto.PlatformConnectionUpdateInput](connectionService),
		connectionService: connectionService,
	}, nil
}
