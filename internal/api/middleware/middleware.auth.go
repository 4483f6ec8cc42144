// Package middleware chứa các middleware dùng chung: xác thực, phạm vi khách hàng, response.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	authmodels "creator_studio/internal/api/auth/models"
	authsvc "creator_studio/internal/api/auth/service"
	"creator_studio/internal/common"
	"creator_studio/internal/logger"
)

// AuthMiddleware xác thực request bằng Bearer token và kiểm tra vai trò.
// requiredRole: "" cho phép mọi user đã đăng nhập, "admin" chỉ cho phép admin.
// Sau khi xác thực, middleware lưu vào Locals: user_id, user_role, user.
func AuthMiddleware(requiredRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		userService, err := authsvc.NewUserService()
		if err != nil {
			logger.GetErrorLogger().WithError(err).Error("AuthMiddleware: không khởi tạo được UserService")
			HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil))
			return nil
		}

		user, err := userService.FindByToken(c.Context(), token)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa", common.StatusForbidden, nil))
			return nil
		}

		if requiredRole == authmodels.RoleAdmin && user.Role != authmodels.RoleAdmin {
			HandleErrorResponse(c, common.ErrAdminOnly)
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user_role", user.Role)
		c.Locals("user", user)

		return c.Next()
	}
}

// extractBearerToken lấy token từ header Authorization dạng "Bearer <token>"
func extractBearerToken(c fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
