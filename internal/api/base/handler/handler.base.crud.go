package basehdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"creator_studio/internal/common"
)

// InsertOne xử lý POST /insert-one: parse DTO, gán phạm vi client rồi insert
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	var input CreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return SendError(c, err)
	}

	model, err := h.TransformCreateInputToModel(input)
	if err != nil {
		return SendError(c, err)
	}

	if err := h.SetOwnerClientID(c, &model); err != nil {
		return SendError(c, err)
	}

	created, err := h.Service.InsertOne(c.Context(), model)
	if err != nil {
		return SendError(c, err)
	}

	return SendResponse(c, common.StatusCreated, common.MsgCreated, created)
}

// Find xử lý GET /find: tìm nhiều document theo filter (query param "filter" dạng JSON)
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c.Query("filter"))
	if err != nil {
		return SendError(c, err)
	}
	filter = h.ApplyClientFilter(c, filter)

	opts := options.Find()
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			opts.SetLimit(limit)
		}
	}
	opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	results, err := h.Service.Find(c.Context(), bson.M(filter), opts)
	if err != nil {
		return SendError(c, err)
	}

	return HandleResponse(c, results, nil)
}

// FindOne xử lý GET /find-one: tìm một document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c.Query("filter"))
	if err != nil {
		return SendError(c, err)
	}
	filter = h.ApplyClientFilter(c, filter)

	result, err := h.Service.FindOne(c.Context(), bson.M(filter), nil)
	if err != nil {
		return SendError(c, err)
	}

	return HandleResponse(c, result, nil)
}

// FindOneById xử lý GET /find-by-id/:id, có kiểm tra phạm vi client
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	result, err := h.Service.FindOneById(c.Context(), id)
	if err != nil {
		return SendError(c, err)
	}

	if err := h.ValidateClientAccess(c, result); err != nil {
		return SendError(c, err)
	}

	return HandleResponse(c, result, nil)
}

// FindWithPagination xử lý GET /find-with-pagination?page=&limit=&filter=
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c.Query("filter"))
	if err != nil {
		return SendError(c, err)
	}
	filter = h.ApplyClientFilter(c, filter)

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	result, err := h.Service.FindWithPagination(c.Context(), bson.M(filter), page, limit, opts)
	if err != nil {
		return SendError(c, err)
	}

	return HandleResponse(c, result, nil)
}

// UpdateById xử lý PUT /update-by-id/:id: parse DTO update, kiểm tra phạm vi client rồi update
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	existing, err := h.Service.FindOneById(c.Context(), id)
	if err != nil {
		return SendError(c, err)
	}
	if err := h.ValidateClientAccess(c, existing); err != nil {
		return SendError(c, err)
	}

	var input UpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return SendError(c, err)
	}

	model, err := h.TransformUpdateInputToModel(input)
	if err != nil {
		return SendError(c, err)
	}

	updated, err := h.Service.UpdateById(c.Context(), id, model)
	if err != nil {
		return SendError(c, err)
	}

	return HandleResponse(c, updated, nil)
}

// DeleteById xử lý DELETE /delete-by-id/:id, có kiểm tra phạm vi client
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return SendError(c, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
	}

	existing, err := h.Service.FindOneById(c.Context(), id)
	if err != nil {
		return SendError(c, err)
	}
	if err := h.ValidateClientAccess(c, existing); err != nil {
		return SendError(c, err)
	}

	if err := h.Service.DeleteById(c.Context(), id); err != nil {
		return SendError(c, err)
	}

	return HandleResponse(c, fiber.Map{"deleted": true, "id": id.Hex()}, nil)
}

// CountDocuments xử lý GET /count?filter=
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c.Query("filter"))
	if err != nil {
		return SendError(c, err)
	}
	filter = h.ApplyClientFilter(c, filter)

	count, err := h.Service.CountDocuments(c.Context(), bson.M(filter))
	if err != nil {
		return SendError(c, err)
	}

	return HandleResponse(c, fiber.Map{"count": count}, nil)
}
