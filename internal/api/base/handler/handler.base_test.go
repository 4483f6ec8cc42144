package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	contentmodels "creator_studio/internal/api/content/models"
)

type testCreateInput struct {
	Title        string
	SourceIdeaID string
}

type testUpdateInput struct {
	Title string
}

func newTestHandler() *BaseHandler[contentmodels.Submission, testCreateInput, testUpdateInput] {
	return NewBaseHandler[contentmodels.Submission, testCreateInput, testUpdateInput](nil)
}

func TestProcessFilter_Rong(t *testing.T) {
	h := newTestHandler()

	filter, err := h.ProcessFilter("")
	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestProcessFilter_FieldBinhThuong(t *testing.T) {
	h := newTestHandler()

	filter, err := h.ProcessFilter(`{"status": "review", "format": "short"}`)
	require.NoError(t, err)

	assert.Equal(t, "review", filter["status"])
	assert.Equal(t, "short", filter["format"])
}

func TestProcessFilter_ChanFieldNhayCam(t *testing.T) {
	h := newTestHandler()

	_, err := h.ProcessFilter(`{"password": "x"}`)
	assert.Error(t, err)

	_, err = h.ProcessFilter(`{"Token": "x"}`)
	assert.Error(t, err, "field cấm phải bị chặn không phân biệt hoa thường")
}

func TestProcessFilter_JSONLoi(t *testing.T) {
	h := newTestHandler()

	_, err := h.ProcessFilter(`{status:`)
	assert.Error(t, err)
}

func TestProcessFilter_ConvertIdFieldSangObjectID(t *testing.T) {
	h := newTestHandler()
	oid := primitive.NewObjectID()

	filter, err := h.ProcessFilter(`{"_id": "` + oid.Hex() + `", "sourceIdeaId": "` + oid.Hex() + `"}`)
	require.NoError(t, err)

	assert.Equal(t, oid, filter["_id"])
	assert.Equal(t, oid, filter["sourceIdeaId"])
}

func TestProcessFilter_ConvertObjectIDTrongOperator(t *testing.T) {
	h := newTestHandler()
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	filter, err := h.ProcessFilter(`{"submissionId": {"$in": ["` + a.Hex() + `", "` + b.Hex() + `"]}}`)
	require.NoError(t, err)

	inner, ok := filter["submissionId"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{a, b}, inner["$in"])
}

func TestProcessFilter_LoaiBoOperatorKhongChoPhep(t *testing.T) {
	h := newTestHandler()

	filter, err := h.ProcessFilter(`{"status": {"$where": "1 == 1", "$eq": "review"}}`)
	require.NoError(t, err)

	inner, ok := filter["status"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, inner, "$where")
	assert.Equal(t, "review", inner["$eq"])
}

func TestProcessFilter_QuaNhieuField(t *testing.T) {
	h := newTestHandler()
	h.SetFilterOptions(FilterOptions{MaxFields: 1})

	_, err := h.ProcessFilter(`{"a": 1, "b": 2}`)
	assert.Error(t, err)
}

func TestTransformCreateInput_CopyTheoTenField(t *testing.T) {
	h := newTestHandler()
	ideaID := primitive.NewObjectID()

	model, err := h.TransformCreateInputToModel(testCreateInput{
		Title:        "Tập mới",
		SourceIdeaID: ideaID.Hex(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Tập mới", model.Title)
	// String trong DTO được convert sang ObjectID của model
	assert.Equal(t, ideaID, model.SourceIdeaID)
}

func TestTransformCreateInput_ObjectIDHexLoi(t *testing.T) {
	h := newTestHandler()

	_, err := h.TransformCreateInputToModel(testCreateInput{
		Title:        "Tập mới",
		SourceIdeaID: "khong-phai-hex",
	})
	assert.Error(t, err)
}

func TestTransformUpdateInput_BoQuaFieldZero(t *testing.T) {
	h := newTestHandler()

	model, err := h.TransformUpdateInputToModel(testUpdateInput{})
	require.NoError(t, err)

	assert.Empty(t, model.Title)
}
