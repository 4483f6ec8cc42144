// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "creator_studio/internal/api/auth/handler"
	authmodels "creator_studio/internal/api/auth/models"
	apirouter "creator_studio/internal/api/router"
	"creator_studio/internal/api/middleware"
)

// Register đăng ký các route auth (đăng ký, đăng nhập, hồ sơ, quản trị user).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Public routes
	v1.Post("/auth/register", userHandler.HandleRegister)
	v1.Post("/auth/login", userHandler.HandleLogin)

	// Routes cho user đã đăng nhập
	authOnly := []fiber.Handler{middleware.AuthMiddleware("")}
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", fiber.MethodPost, "/logout", authOnly, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", fiber.MethodGet, "/profile", authOnly, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", fiber.MethodPut, "/profile", authOnly, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", fiber.MethodPost, "/change-password", authOnly, userHandler.HandleChangePassword)

	// Routes quản trị user (admin)
	adminOnly := []fiber.Handler{middleware.AuthMiddleware(authmodels.RoleAdmin)}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/user", fiber.MethodPost, "/block", adminOnly, userHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/user", fiber.MethodPost, "/unblock", adminOnly, userHandler.HandleUnblockUser)

	// Tra cứu user (admin, chỉ đọc)
	r.RegisterCRUDRoutes(v1, "/user", userHandler, apirouter.ReadOnlyConfig, authmodels.RoleAdmin)

	return nil
}
