// Package fvssvc chứa các service cho domain fvs.
package fvssvc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parsedIdea là cấu trúc JSON mong đợi từ LLM cho một ý tưởng
type parsedIdea struct {
	Title   string  `json:"title"`
	Hook    string  `json:"hook"`
	Outline string  `json:"outline"`
	Format  string  `json:"format"`
	Score   float64 `json:"score"`
}

// parseIdeas parse output của LLM thành danh sách ý tưởng, chịu được các
// biến thể thường gặp: code fence, object bọc {"ideas": [...]}, text thừa
// quanh JSON. Trả về lỗi khi không tìm được JSON dùng được.
func parseIdeas(raw string) ([]parsedIdea, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))

	// Thử parse trực tiếp thành mảng
	var ideas []parsedIdea
	if err := json.Unmarshal([]byte(cleaned), &ideas); err == nil {
		return filterValidIdeas(ideas)
	}

	// Thử dạng object bọc {"ideas": [...]}
	var wrapped struct {
		Ideas []parsedIdea `json:"ideas"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && len(wrapped.Ideas) > 0 {
		return filterValidIdeas(wrapped.Ideas)
	}

	// Cắt đoạn giữa dấu [ đầu tiên và ] cuối cùng
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &ideas); err == nil {
			return filterValidIdeas(ideas)
		}
	}

	return nil, fmt.Errorf("không parse được danh sách ý tưởng từ output LLM")
}

// stripCodeFence bỏ markdown code fence (```json ... ```) nếu có
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// filterValidIdeas giữ lại các ý tưởng có title, chuẩn hóa format
func filterValidIdeas(ideas []parsedIdea) ([]parsedIdea, error) {
	valid := make([]parsedIdea, 0, len(ideas))
	for _, idea := range ideas {
		idea.Title = strings.TrimSpace(idea.Title)
		if idea.Title == "" {
			continue
		}
		if idea.Format != "short" && idea.Format != "long" {
			idea.Format = "short"
		}
		valid = append(valid, idea)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("output LLM không chứa ý tưởng hợp lệ nào")
	}
	return valid, nil
}
