package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"creator_studio/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để tên tiếng Việt trong thông báo hiển thị đúng.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse xử lý và trả về error response cho client.
// Tách riêng khỏi basehdl để tránh import cycle.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"data":    customErr.Details,
			"status":  customErr.StatusCode,
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"data":    nil,
		"status":  common.StatusInternalServerError,
	})
}
