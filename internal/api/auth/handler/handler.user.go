// Package authhdl chứa các handler cho domain auth.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "creator_studio/internal/api/auth/dto"
	models "creator_studio/internal/api/auth/models"
	authsvc "creator_studio/internal/api/auth/service"
	basehdl "creator_studio/internal/api/base/handler"
	"creator_studio/internal/common"
)

// UserHandler xử lý các request liên quan đến người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UserUpdateInput](userService),
		userService: userService,
	}, nil
}

// HandleRegister xử lý POST /auth/register
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.UserRegisterInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	user, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.SendResponse(c, common.StatusCreated, common.MsgCreated, user)
}

// HandleLogin xử lý POST /auth/login, trả về user và token
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	user, token, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, fiber.Map{"user": user, "token": token}, nil)
}

// HandleLogout xử lý POST /auth/logout
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(basehdl.GetUserID(c))
	if err != nil {
		return basehdl.SendError(c, common.ErrTokenInvalid)
	}

	if err := h.userService.Logout(c.Context(), userID); err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, fiber.Map{"loggedOut": true}, nil)
}

// HandleGetProfile xử lý GET /auth/profile
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return basehdl.SendError(c, common.ErrTokenMissing)
	}
	return basehdl.HandleResponse(c, user, nil)
}

// HandleUpdateProfile xử lý PUT /auth/profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(basehdl.GetUserID(c))
	if err != nil {
		return basehdl.SendError(c, common.ErrTokenInvalid)
	}

	var input authdto.UserUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	model, err := h.TransformUpdateInputToModel(input)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	updated, err := h.userService.UpdateById(c.Context(), userID, model)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, updated, nil)
}

// HandleChangePassword xử lý POST /auth/change-password
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(basehdl.GetUserID(c))
	if err != nil {
		return basehdl.SendError(c, common.ErrTokenInvalid)
	}

	var input authdto.UserChangePasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	if err := h.userService.ChangePassword(c.Context(), userID, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, fiber.Map{"changed": true}, nil)
}

// HandleBlockUser xử lý POST /admin/user/block (admin)
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.UserBlockInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	user, err := h.userService.SetBlock(c.Context(), input.Email, true, input.Note)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, user, nil)
}

// HandleUnblockUser xử lý POST /admin/user/unblock (admin)
func (h *UserHandler) HandleUnblockUser(c fiber.Ctx) error {
	var input authdto.UserBlockInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.SendError(c, err)
	}

	user, err := h.userService.SetBlock(c.Context(), input.Email, false, "")
	if err != nil {
		return basehdl.SendError(c, err)
	}

	return basehdl.HandleResponse(c, user, nil)
}
