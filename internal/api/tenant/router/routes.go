// Package router đăng ký các route thuộc domain tenant.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "creator_studio/internal/api/auth/models"
	apirouter "creator_studio/internal/api/router"
	tenanthdl "creator_studio/internal/api/tenant/handler"
)

// Register đăng ký các route tenant (client, channel profile, platform connection).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	clientHandler, err := tenanthdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("failed to create client handler: %w", err)
	}
	// Quản trị khách hàng: chỉ admin
	r.RegisterCRUDRoutes(v1, "/client", clientHandler, apirouter.ReadWriteConfig, authmodels.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", fiber.MethodGet, "/clients", apirouter.AdminChain(), clientHandler.HandleListWithStats)

	profileHandler, err := tenanthdl.NewChannelProfileHandler()
	if err != nil {
		return fmt.Errorf("failed to create channel profile handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/channel-profile", profileHandler, apirouter.ReadOnlyConfig, "")
	authChain := apirouter.AuthChain("")
	apirouter.RegisterRouteWithMiddleware(v1, "/channel-profile", fiber.MethodGet, "/me", authChain, profileHandler.HandleGetMine)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel-profile", fiber.MethodPut, "/me", authChain, profileHandler.HandleUpsertMine)

	connectionHandler, err := tenanthdl.NewPlatformConnectionHandler()
	if err != nil {
		return fmt.Errorf("failed to create platform connection handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/platform-connection", connectionHandler, apirouter.ReadWriteConfig, "")

	return nil
}
