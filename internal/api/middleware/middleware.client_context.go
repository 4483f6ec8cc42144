package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "creator_studio/internal/api/auth/models"
	tenantsvc "creator_studio/internal/api/tenant/service"
	"creator_studio/internal/common"
	"creator_studio/internal/logger"
)

// ResolveEffectiveClientID xác định phạm vi khách hàng (effective client id) của request:
//   - Vai trò client: luôn dùng client của chính mình; tham số impersonateClientId bị bỏ qua.
//   - Vai trò admin có impersonateClientId: dùng client đó (caller phải kiểm tra client tồn tại).
//   - Vai trò admin không có tham số: phạm vi toàn hệ thống (scoped = false).
//
// Hàm thuần, không truy cập DB, để test độc lập.
func ResolveEffectiveClientID(role string, ownClientID primitive.ObjectID, impersonateParam string) (primitive.ObjectID, bool, error) {
	if role != authmodels.RoleAdmin {
		if ownClientID.IsZero() {
			// User client chưa được gắn với khách hàng nào
			return primitive.NilObjectID, false, common.ErrTenantRequired
		}
		return ownClientID, true, nil
	}

	if impersonateParam == "" {
		return primitive.NilObjectID, false, nil
	}

	impersonated, err := primitive.ObjectIDFromHex(impersonateParam)
	if err != nil {
		return primitive.NilObjectID, false, common.NewError(common.ErrCodeValidationFormat,
			"impersonateClientId không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
	}
	return impersonated, true, nil
}

// ClientContextMiddleware xác định phạm vi khách hàng của request và lưu vào Locals.
// Chạy sau AuthMiddleware. Admin impersonate qua query param impersonateClientId;
// client đó phải tồn tại, nếu không trả về NotFound.
// Locals "effective_client_id" là hex string, rỗng khi admin ở phạm vi toàn hệ thống.
func ClientContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		clientID, scoped, err := ResolveEffectiveClientID(user.Role, user.ClientID, c.Query("impersonateClientId"))
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Admin impersonate: client phải tồn tại
		if scoped && user.Role == authmodels.RoleAdmin {
			clientService, err := tenantsvc.NewClientService()
			if err != nil {
				logger.GetErrorLogger().WithError(err).Error("ClientContextMiddleware: không khởi tạo được ClientService")
				HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil))
				return nil
			}
			if _, err := clientService.FindOneById(c.Context(), clientID); err != nil {
				HandleErrorResponse(c, common.NewError(common.ErrCodeDatabaseQuery,
					"Không tìm thấy khách hàng cần impersonate", common.StatusNotFound, nil))
				return nil
			}
		}

		if scoped {
			c.Locals("effective_client_id", clientID.Hex())
		} else {
			c.Locals("effective_client_id", "")
		}

		return c.Next()
	}
}
