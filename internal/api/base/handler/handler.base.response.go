package basehdl

import (
	"github.com/gofiber/fiber/v3"

	"creator_studio/internal/common"
	"creator_studio/internal/logger"
)

// JSONResponse là cấu trúc response thống nhất của API
type JSONResponse struct {
	Code    string      `json:"code"`    // Mã lỗi chi tiết (rỗng nếu thành công)
	Message string      `json:"message"` // Thông báo
	Data    interface{} `json:"data"`    // Dữ liệu trả về
	Status  int         `json:"status"`  // HTTP status code
}

// SendResponse gửi response thành công với envelope thống nhất
func SendResponse(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(JSONResponse{
		Code:    "",
		Message: message,
		Data:    data,
		Status:  statusCode,
	})
}

// SendError gửi response lỗi với envelope thống nhất.
// *common.Error giữ nguyên mã lỗi và status code; lỗi khác trả về 500.
func SendError(c fiber.Ctx, err error) error {
	if customErr, ok := err.(*common.Error); ok {
		return c.Status(customErr.StatusCode).JSON(JSONResponse{
			Code:    customErr.Code.Code,
			Message: customErr.Message,
			Data:    customErr.Details,
			Status:  customErr.StatusCode,
		})
	}

	logger.GetErrorLogger().WithError(err).Error("Lỗi không xác định trong handler")
	return c.Status(common.StatusInternalServerError).JSON(JSONResponse{
		Code:    common.ErrCodeInternalServer.Code,
		Message: common.MsgInternalError,
		Data:    nil,
		Status:  common.StatusInternalServerError,
	})
}

// HandleResponse gửi response dựa trên kết quả và lỗi từ service
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return SendError(c, err)
	}
	return SendResponse(c, common.StatusOK, common.MsgSuccess, data)
}

// SafeHandler bọc handler với recover để panic không làm sập server
func SafeHandler(handler func(fiber.Ctx) error) func(fiber.Ctx) error {
	return func(c fiber.Ctx) error {
		var result error
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.GetErrorLogger().WithField("panic", r).Error("Panic trong handler")
					result = SendError(c, common.NewError(
						common.ErrCodeInternalServer,
						common.MsgInternalError,
						common.StatusInternalServerError,
						nil,
					))
				}
			}()
			result = handler(c)
		}()
		return result
	}
}
