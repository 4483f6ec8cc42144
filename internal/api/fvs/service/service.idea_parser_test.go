package fvssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdeas_MangJSONTrucTiep(t *testing.T) {
	raw := `[
		{"title": "5 sự thật về giấc ngủ", "hook": "Bạn ngủ sai cách cả đời?", "format": "short", "score": 0.9},
		{"title": "Vì sao trời xanh", "format": "long"}
	]`

	ideas, err := parseIdeas(raw)
	require.NoError(t, err)
	require.Len(t, ideas, 2)

	assert.Equal(t, "5 sự thật về giấc ngủ", ideas[0].Title)
	assert.Equal(t, "short", ideas[0].Format)
	assert.InDelta(t, 0.9, ideas[0].Score, 0.001)
	assert.Equal(t, "long", ideas[1].Format)
}

func TestParseIdeas_CodeFence(t *testing.T) {
	raw := "```json\n[{\"title\": \"Ý tưởng trong code fence\"}]\n```"

	ideas, err := parseIdeas(raw)
	require.NoError(t, err)
	require.Len(t, ideas, 1)

	assert.Equal(t, "Ý tưởng trong code fence", ideas[0].Title)
}

func TestParseIdeas_ObjectBocIdeas(t *testing.T) {
	raw := `{"ideas": [{"title": "Ý tưởng trong wrapper"}]}`

	ideas, err := parseIdeas(raw)
	require.NoError(t, err)
	require.Len(t, ideas, 1)

	assert.Equal(t, "Ý tưởng trong wrapper", ideas[0].Title)
}

func TestParseIdeas_TextThuaQuanhJSON(t *testing.T) {
	raw := `Dưới đây là các ý tưởng bạn yêu cầu:
[{"title": "Ý tưởng giữa text"}]
Chúc bạn thành công!`

	ideas, err := parseIdeas(raw)
	require.NoError(t, err)
	require.Len(t, ideas, 1)

	assert.Equal(t, "Ý tưởng giữa text", ideas[0].Title)
}

func TestParseIdeas_FormatLaThuongHoaVeShort(t *testing.T) {
	raw := `[{"title": "Format lạ", "format": "vertical-clip"}]`

	ideas, err := parseIdeas(raw)
	require.NoError(t, err)
	require.Len(t, ideas, 1)

	assert.Equal(t, "short", ideas[0].Format)
}

func TestParseIdeas_BoQuaYTuongThieuTitle(t *testing.T) {
	raw := `[{"title": "  "}, {"title": "Còn lại một"}]`

	ideas, err := parseIdeas(raw)
	require.NoError(t, err)
	require.Len(t, ideas, 1)

	assert.Equal(t, "Còn lại một", ideas[0].Title)
}

func TestParseIdeas_KhongPhaiJSON_TraVeLoi(t *testing.T) {
	_, err := parseIdeas("xin lỗi, tôi không thể giúp việc này")
	assert.Error(t, err)
}

func TestParseIdeas_MangRong_TraVeLoi(t *testing.T) {
	_, err := parseIdeas("[]")
	assert.Error(t, err)
}
