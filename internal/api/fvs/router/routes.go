// Package router đăng ký các route thuộc domain fvs.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	fvshdl "creator_studio/internal/api/fvs/handler"
	apirouter "creator_studio/internal/api/router"
)

// Register đăng ký các route fvs (đề xuất, duyệt, sản xuất).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := fvshdl.NewFVSHandler()
	if err != nil {
		return fmt.Errorf("failed to create fvs handler: %w", err)
	}

	chain := apirouter.AuthChain("")
	apirouter.RegisterRouteWithMiddleware(v1, "/fvs", fiber.MethodPost, "/propose", chain, handler.HandlePropose)
	apirouter.RegisterRouteWithMiddleware(v1, "/fvs", fiber.MethodGet, "/ideas", chain, handler.HandleListIdeas)
	apirouter.RegisterRouteWithMiddleware(v1, "/fvs", fiber.MethodPost, "/idea/accept/:id", chain, handler.HandleAccept)
	apirouter.RegisterRouteWithMiddleware(v1, "/fvs", fiber.MethodPost, "/idea/reject/:id", chain, handler.HandleReject)
	apirouter.RegisterRouteWithMiddleware(v1, "/fvs", fiber.MethodPost, "/produce/:id", chain, handler.HandleProduce)

	return nil
}
