// Package notifyhdl chứa các handler cho domain notification.
package notifyhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "creator_studio/internal/api/base/handler"
	notifysvc "creator_studio/internal/api/notification/service"
	"creator_studio/internal/common"
)

// NotificationHandler xử lý các request về notification và activity log
type NotificationHandler struct {
	notificationService *notifysvc.NotificationService
	activityLogService  *notifysvc.ActivityLogService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notifysvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}
	activityLogService, err := notifysvc.NewActivityLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log service: %w", err)
	}

	return &NotificationHandler{
		notificationService: notificationService,
		activityLogService:  activityLogService,
	}, nil
}

// currentUserID lấy ObjectID của user đã xác thực từ context request.
// Notification thuộc về user nên mọi endpoint đều scope theo user hiện tại,
// không theo effective client (admin có luồng thông báo riêng).
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID, err := primitive.ObjectIDFromHex(basehdl.GetUserID(c))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuthToken,
			"Không xác định được người dùng của request", common.StatusUnauthorized, nil)
	}
	return userID, nil
}

// HandleList xử lý GET /notification/list: tối đa 20 notification mới nhất
func (h *NotificationHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	notifications, err := h.notificationService.ListNewest(c.Context(), userID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	unread, err := h.notificationService.CountUnread(c.Context(), userID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, fiber.Map{
		"items":       notifications,
		"unreadCount": unread,
	}, nil)
}

// HandleMarkRead xử lý POST /notification/mark-read/:id (idempotent)
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return basehdl.SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	notification, err := h.notificationService.MarkRead(c.Context(), userID, notificationID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, notification, nil)
}

// HandleMarkAllRead xử lý POST /notification/mark-all-read
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	updated, err := h.notificationService.MarkAllRead(c.Context(), userID)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, fiber.Map{"updated": updated}, nil)
}

// HandleActivityLog xử lý GET /activity-log/list?limit=
func (h *NotificationHandler) HandleActivityLog(c fiber.Ctx) error {
	clientID, err := basehdl.RequireEffectiveClientID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	logs, err := h.activityLogService.ListNewest(c.Context(), clientID, limit)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, logs, nil)
}
