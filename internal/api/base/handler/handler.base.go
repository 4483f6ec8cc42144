// Package basehdl cung cấp handler CRUD generic cho các domain handler.
// Mỗi domain handler embed BaseHandler và chỉ cần khai báo service + filter options.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "creator_studio/internal/api/base/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
	"creator_studio/internal/utility"
)

// FilterOptions cấu hình xử lý filter từ query string
type FilterOptions struct {
	DeniedFields     []string // Các field không được phép filter (ví dụ: password)
	AllowedOperators []string // Các operator MongoDB được phép ($eq, $in, ...)
	MaxFields        int      // Số field tối đa trong một filter
}

// DefaultFilterOptions trả về cấu hình filter mặc định
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		DeniedFields:     []string{"password", "salt", "token", "tokens"},
		AllowedOperators: []string{"$eq", "$ne", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$regex", "$exists"},
		MaxFields:        10,
	}
}

// BaseHandler generic handler cung cấp các thao tác CRUD cơ bản.
// Type Parameters:
//   - T: Model
//   - CreateInput: DTO cho insert
//   - UpdateInput: DTO cho update
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service       basesvc.BaseServiceMongo[T] // Service xử lý dữ liệu
	filterOptions FilterOptions               // Cấu hình filter
}

// NewBaseHandler tạo mới BaseHandler với filter options mặc định
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		Service:       service,
		filterOptions: DefaultFilterOptions(),
	}
}

// SetFilterOptions ghi đè cấu hình filter cho handler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetFilterOptions(opts FilterOptions) {
	h.filterOptions = opts
}

// ParseRequestBody parse request body thành struct, dùng json.Decoder với UseNumber
// để giữ nguyên độ chính xác của số lớn (timestamp UnixMilli).
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "Request body rỗng", common.StatusBadRequest, nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Không thể parse request body: "+err.Error(), common.StatusBadRequest, nil)
	}

	// Validate theo struct tag nếu có validator
	if global.Validate != nil {
		if err := global.Validate.Struct(out); err != nil {
			return common.NewError(common.ErrCodeValidationInput, "Dữ liệu không hợp lệ: "+err.Error(), common.StatusBadRequest, nil)
		}
	}

	return nil
}

// ProcessFilter chuẩn hóa filter từ query string thành filter MongoDB an toàn:
//   - chặn các field bị cấm
//   - chỉ cho phép các operator trong danh sách
//   - giới hạn số field
//   - tự chuyển các field *Id dạng hex string thành ObjectID
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(filterJSON string) (map[string]interface{}, error) {
	filter := make(map[string]interface{})
	if strings.TrimSpace(filterJSON) == "" {
		return filter, nil
	}

	parsed, err := utility.JSONToMap(filterJSON)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Filter không phải JSON hợp lệ", common.StatusBadRequest, nil)
	}

	if h.filterOptions.MaxFields > 0 && len(parsed) > h.filterOptions.MaxFields {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Filter có quá nhiều field (tối đa %d)", h.filterOptions.MaxFields),
			common.StatusBadRequest, nil)
	}

	for key, value := range parsed {
		if h.isDeniedField(key) {
			return nil, common.NewError(common.ErrCodeValidationInput,
				"Không được phép filter theo field: "+key, common.StatusBadRequest, nil)
		}

		filter[key] = h.normalizeFilterValue(key, value)
	}

	return filter, nil
}

// isDeniedField kiểm tra field có trong danh sách cấm không
func (h *BaseHandler[T, CreateInput, UpdateInput]) isDeniedField(field string) bool {
	for _, denied := range h.filterOptions.DeniedFields {
		if strings.EqualFold(field, denied) {
			return true
		}
	}
	return false
}

// isAllowedOperator kiểm tra operator có được phép không
func (h *BaseHandler[T, CreateInput, UpdateInput]) isAllowedOperator(op string) bool {
	for _, allowed := range h.filterOptions.AllowedOperators {
		if op == allowed {
			return true
		}
	}
	return false
}

// normalizeFilterValue chuẩn hóa value của một field filter.
// Các field kết thúc bằng Id/_id được convert từ hex string sang ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(key string, value interface{}) interface{} {
	isIDField := key == "_id" || strings.HasSuffix(key, "Id")

	switch v := value.(type) {
	case string:
		if isIDField {
			if oid, err := primitive.ObjectIDFromHex(v); err == nil {
				return oid
			}
		}
		return v
	case map[string]interface{}:
		// Value dạng operator: {"$in": [...]}
		normalized := make(map[string]interface{}, len(v))
		for op, opValue := range v {
			if strings.HasPrefix(op, "$") && !h.isAllowedOperator(op) {
				continue
			}
			if isIDField {
				if s, ok := opValue.(string); ok {
					if oid, err := primitive.ObjectIDFromHex(s); err == nil {
						normalized[op] = oid
						continue
					}
				}
				if arr, ok := opValue.([]interface{}); ok {
					converted := make([]interface{}, 0, len(arr))
					for _, item := range arr {
						if s, ok := item.(string); ok {
							if oid, err := primitive.ObjectIDFromHex(s); err == nil {
								converted = append(converted, oid)
								continue
							}
						}
						converted = append(converted, item)
					}
					normalized[op] = converted
					continue
				}
			}
			normalized[op] = opValue
		}
		return normalized
	default:
		return value
	}
}

// TransformCreateInputToModel chuyển DTO thành model theo tên field.
// Field string của DTO được convert sang ObjectID nếu field cùng tên của model là ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input CreateInput) (T, error) {
	var model T
	if err := transformByFieldName(&model, input); err != nil {
		return model, err
	}
	return model, nil
}

// TransformUpdateInputToModel chuyển DTO update thành model
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input UpdateInput) (T, error) {
	var model T
	if err := transformByFieldName(&model, input); err != nil {
		return model, err
	}
	return model, nil
}

// transformByFieldName copy field từ DTO sang model theo tên field (reflection).
// Hỗ trợ convert string -> primitive.ObjectID và bỏ qua field zero của DTO.
func transformByFieldName(model interface{}, input interface{}) error {
	mv := reflect.ValueOf(model).Elem()
	iv := reflect.ValueOf(input)
	if iv.Kind() == reflect.Ptr {
		if iv.IsNil() {
			return nil
		}
		iv = iv.Elem()
	}
	if iv.Kind() != reflect.Struct || mv.Kind() != reflect.Struct {
		return common.ErrInvalidFormat
	}

	objectIDType := reflect.TypeOf(primitive.ObjectID{})
	it := iv.Type()
	for i := 0; i < it.NumField(); i++ {
		name := it.Field(i).Name
		src := iv.Field(i)
		if !src.CanInterface() || src.IsZero() {
			continue
		}

		dst := mv.FieldByName(name)
		if !dst.IsValid() || !dst.CanSet() {
			continue
		}

		// string -> ObjectID
		if src.Kind() == reflect.String && dst.Type() == objectIDType {
			oid, err := primitive.ObjectIDFromHex(src.String())
			if err != nil {
				return common.NewError(common.ErrCodeValidationFormat,
					fmt.Sprintf("Field %s không phải ObjectID hợp lệ", name), common.StatusBadRequest, nil)
			}
			dst.Set(reflect.ValueOf(oid))
			continue
		}

		if src.Type().AssignableTo(dst.Type()) {
			dst.Set(src)
		}
	}
	return nil
}

// ==========================================================
// HELPERS PHẠM VI KHÁCH HÀNG (effective client id)
// ==========================================================

// GetEffectiveClientID lấy effective client id từ context request.
// Trả về (id, true) nếu request có phạm vi client; (NilObjectID, false) nếu admin/global scope.
func GetEffectiveClientID(c fiber.Ctx) (primitive.ObjectID, bool) {
	raw, ok := c.Locals("effective_client_id").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// RequireEffectiveClientID lấy effective client id, lỗi ErrTenantRequired nếu request ở global scope
func RequireEffectiveClientID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, ok := GetEffectiveClientID(c)
	if !ok {
		return primitive.NilObjectID, common.ErrTenantRequired
	}
	return id, nil
}

// GetUserID lấy user id (hex) của user đã xác thực từ context request
func GetUserID(c fiber.Ctx) string {
	raw, _ := c.Locals("user_id").(string)
	return raw
}

// modelHasOwnerClientID kiểm tra model có field OwnerClientID không
func modelHasOwnerClientID(model interface{}) bool {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	_, ok := t.FieldByName("OwnerClientID")
	return ok
}

// ApplyClientFilter thêm điều kiện ownerClientId vào filter nếu request có phạm vi client
// và model có field OwnerClientID. Admin ở global scope thấy dữ liệu mọi client.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ApplyClientFilter(c fiber.Ctx, filter map[string]interface{}) map[string]interface{} {
	var zero T
	if !modelHasOwnerClientID(zero) {
		return filter
	}

	clientID, scoped := GetEffectiveClientID(c)
	if !scoped {
		return filter
	}

	if filter == nil {
		filter = make(map[string]interface{})
	}
	filter["ownerClientId"] = clientID
	return filter
}

// SetOwnerClientID gán OwnerClientID cho model trước khi insert.
// Lỗi ErrTenantRequired nếu model cần client scope mà request ở global scope.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetOwnerClientID(c fiber.Ctx, model *T) error {
	if !modelHasOwnerClientID(model) {
		return nil
	}

	clientID, scoped := GetEffectiveClientID(c)
	if !scoped {
		return common.ErrTenantRequired
	}

	v := reflect.ValueOf(model).Elem().FieldByName("OwnerClientID")
	if v.IsValid() && v.CanSet() {
		v.Set(reflect.ValueOf(clientID))
	}
	return nil
}

// ValidateClientAccess kiểm tra document có thuộc phạm vi client của request không.
// Admin ở global scope truy cập được mọi document.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateClientAccess(c fiber.Ctx, model T) error {
	if !modelHasOwnerClientID(model) {
		return nil
	}

	clientID, scoped := GetEffectiveClientID(c)
	if !scoped {
		return nil
	}

	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	f := v.FieldByName("OwnerClientID")
	owner, ok := f.Interface().(primitive.ObjectID)
	if !ok {
		return nil
	}

	if owner != clientID {
		return common.ErrTenantMismatch
	}
	return nil
}
