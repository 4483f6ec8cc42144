// Package router đăng ký các route thuộc domain notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	notifyhdl "creator_studio/internal/api/notification/handler"
	apirouter "creator_studio/internal/api/router"
)

// Register đăng ký các route notification và activity log.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := notifyhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %w", err)
	}

	chain := apirouter.AuthChain("")
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", fiber.MethodGet, "/list", chain, handler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", fiber.MethodPost, "/mark-read/:id", chain, handler.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", fiber.MethodPost, "/mark-all-read", chain, handler.HandleMarkAllRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/activity-log", fiber.MethodGet, "/list", chain, handler.HandleActivityLog)

	return nil
}
