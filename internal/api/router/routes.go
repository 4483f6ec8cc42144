// Package router cung cấp cơ chế đăng ký route tập trung cho API.
// Mỗi domain có package router riêng với hàm Register; SetupRoutes gom tất cả lại dưới /api/v1.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "creator_studio/internal/api/auth/models"
	"creator_studio/internal/api/middleware"
	"creator_studio/internal/logger"
)

// CRUDHandler là interface mà các domain handler phải thỏa mãn để đăng ký route CRUD chuẩn
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	CountDocuments(c fiber.Ctx) error
}

// CRUDConfig cấu hình các route CRUD được bật cho một resource
type CRUDConfig struct {
	EnableInsert     bool
	EnableFind       bool
	EnableFindOne    bool
	EnableFindById   bool
	EnablePagination bool
	EnableUpdate     bool
	EnableDelete     bool
	EnableCount      bool
}

// Các preset cấu hình CRUD thường dùng
var (
	// ReadOnlyConfig chỉ bật các route đọc
	ReadOnlyConfig = CRUDConfig{
		EnableFind:       true,
		EnableFindOne:    true,
		EnableFindById:   true,
		EnablePagination: true,
		EnableCount:      true,
	}

	// ReadWriteConfig bật đầy đủ CRUD
	ReadWriteConfig = CRUDConfig{
		EnableInsert:     true,
		EnableFind:       true,
		EnableFindOne:    true,
		EnableFindById:   true,
		EnablePagination: true,
		EnableUpdate:     true,
		EnableDelete:     true,
		EnableCount:      true,
	}

	// NoDeleteConfig bật CRUD nhưng không cho xóa qua route chuẩn
	// (dùng cho resource có điều kiện xóa riêng, ví dụ publishing task)
	NoDeleteConfig = CRUDConfig{
		EnableInsert:     true,
		EnableFind:       true,
		EnableFindOne:    true,
		EnableFindById:   true,
		EnablePagination: true,
		EnableUpdate:     true,
		EnableCount:      true,
	}
)

// Router quản lý việc đăng ký route với middleware chuẩn
type Router struct{}

// NewRouter tạo mới Router
func NewRouter() *Router {
	return &Router{}
}

// RegisterRouteWithMiddleware đăng ký một route với danh sách middleware.
// Fiber v3 không nhận middleware trực tiếp trong app.Get(path, mw, handler)
// như v2, nên phải tạo Group theo prefix rồi Use middleware lên group đó.
func RegisterRouteWithMiddleware(router fiber.Router, prefix, method, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	group := router.Group(prefix)
	for _, mw := range middlewares {
		group.Use(path, mw)
	}

	switch method {
	case fiber.MethodGet:
		group.Get(path, handler)
	case fiber.MethodPost:
		group.Post(path, handler)
	case fiber.MethodPut:
		group.Put(path, handler)
	case fiber.MethodPatch:
		group.Patch(path, handler)
	case fiber.MethodDelete:
		group.Delete(path, handler)
	default:
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"method": method,
			"prefix": prefix,
			"path":   path,
		}).Warn("Bỏ qua route với HTTP method không hỗ trợ")
	}
}

// RegisterCRUDRoutes đăng ký bộ route CRUD chuẩn cho một resource.
// requiredRole: "" cho mọi user đã đăng nhập, authmodels.RoleAdmin cho admin.
// Mọi route CRUD đều chạy qua AuthMiddleware và ClientContextMiddleware
// để dữ liệu luôn được lọc theo phạm vi khách hàng.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, handler CRUDHandler, cfg CRUDConfig, requiredRole string) {
	chain := AuthChain(requiredRole)

	if cfg.EnableInsert {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPost, "/insert-one", chain, handler.InsertOne)
	}
	if cfg.EnableFind {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find", chain, handler.Find)
	}
	if cfg.EnableFindOne {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find-one", chain, handler.FindOne)
	}
	if cfg.EnableFindById {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find-by-id/:id", chain, handler.FindOneById)
	}
	if cfg.EnablePagination {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find-with-pagination", chain, handler.FindWithPagination)
	}
	if cfg.EnableUpdate {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPut, "/update-by-id/:id", chain, handler.UpdateById)
	}
	if cfg.EnableDelete {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodDelete, "/delete-by-id/:id", chain, handler.DeleteById)
	}
	if cfg.EnableCount {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/count", chain, handler.CountDocuments)
	}
}

// AuthChain trả về chuỗi middleware chuẩn (xác thực + phạm vi khách hàng)
// cho các route nghiệp vụ ngoài bộ CRUD.
func AuthChain(requiredRole string) []fiber.Handler {
	return []fiber.Handler{
		middleware.AuthMiddleware(requiredRole),
		middleware.ClientContextMiddleware(),
	}
}

// AdminChain là chuỗi middleware cho các route chỉ dành cho admin
func AdminChain() []fiber.Handler {
	return AuthChain(authmodels.RoleAdmin)
}

// RegisterFunc là hàm đăng ký route của một domain
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes tạo group /api/v1 và gọi lần lượt các hàm đăng ký domain
func SetupRoutes(app *fiber.App, registrations ...RegisterFunc) error {
	v1 := app.Group("/api/v1")
	r := NewRouter()

	for _, register := range registrations {
		if err := register(v1, r); err != nil {
			return fmt.Errorf("failed to register routes: %w", err)
		}
	}

	return nil
}
