// Package router đăng ký các route của pipeline nội dung.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "creator_studio/internal/api/content/handler"
	apirouter "creator_studio/internal/api/router"
)

// Register đăng ký các route content (submission, asset, deliverable, task).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	submissionHandler, err := contenthdl.NewSubmissionHandler()
	if err != nil {
		return fmt.Errorf("failed to create submission handler: %w", err)
	}
	chain := apirouter.AuthChain("")
	r.RegisterCRUDRoutes(v1, "/submission", submissionHandler, apirouter.ReadWriteConfig, "")
	apirouter.RegisterRouteWithMiddleware(v1, "/submission", fiber.MethodPost, "/update-status/:id", chain, submissionHandler.HandleUpdateStatus)

	assetHandler, err := contenthdl.NewAssetHandler()
	if err != nil {
		return fmt.Errorf("failed to create asset handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/asset", assetHandler, apirouter.ReadWriteConfig, "")
	apirouter.RegisterRouteWithMiddleware(v1, "/asset", fiber.MethodPost, "/set-primary-thumbnail/:id", chain, assetHandler.HandleSetPrimaryThumbnail)
	apirouter.RegisterRouteWithMiddleware(v1, "/asset", fiber.MethodGet, "/by-submission/:id", chain, assetHandler.HandleListBySubmission)

	deliverableHandler, err := contenthdl.NewDeliverableHandler()
	if err != nil {
		return fmt.Errorf("failed to create deliverable handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/deliverable", deliverableHandler, apirouter.ReadWriteConfig, "")
	apirouter.RegisterRouteWithMiddleware(v1, "/deliverable", fiber.MethodPost, "/mark-ready/:id", chain, deliverableHandler.HandleMarkReady)

	videoTaskHandler, err := contenthdl.NewVideoTaskHandler()
	if err != nil {
		return fmt.Errorf("failed to create video task handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/video-task", videoTaskHandler, apirouter.ReadWriteConfig, "")

	publishingHandler, err := contenthdl.NewPublishingTaskHandler()
	if err != nil {
		return fmt.Errorf("failed to create publishing task handler: %w", err)
	}
	// Xóa đi qua route riêng có kiểm tra trạng thái, không dùng delete chuẩn
	r.RegisterCRUDRoutes(v1, "/publishing-task", publishingHandler, apirouter.NoDeleteConfig, "")
	apirouter.RegisterRouteWithMiddleware(v1, "/publishing-task", fiber.MethodPost, "/schedule/:id", chain, publishingHandler.HandleSchedule)
	apirouter.RegisterRouteWithMiddleware(v1, "/publishing-task", fiber.MethodDelete, "/delete/:id", chain, publishingHandler.HandleDelete)

	return nil
}
