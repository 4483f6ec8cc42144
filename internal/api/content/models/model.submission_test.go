package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSubmissionStatus(t *testing.T) {
	for _, status := range SubmissionStatuses {
		assert.True(t, IsValidSubmissionStatus(status), "status %q phải hợp lệ", status)
	}

	assert.False(t, IsValidSubmissionStatus(""))
	assert.False(t, IsValidSubmissionStatus("draft"))
	assert.False(t, IsValidSubmissionStatus("NEW"), "status phân biệt hoa thường")
}
