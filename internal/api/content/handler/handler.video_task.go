package contenthdl

import (
	"fmt"

	basehdl "creator_studio/internal/api/base/handler"
	contentdto "creator_studio/internal/api/content/dto"
	models "creator_studio/internal/api/content/models"
	contentsvc "creator_studio/internal/api/content/service"
)

// VideoTaskHandler xử lý các request về video task
type VideoTaskHandler struct {
	*basehdl.BaseHandler[models.VideoTask, contentdto.VideoTaskCreateInput, contentdto.VideoTaskUpdateInput]
	videoTaskService *contentsvc.VideoTaskService
}

// NewVideoTaskHandler tạo mới VideoTaskHandler
func NewVideoTaskHandler() (*VideoTaskHandler, error) {
	videoTaskService, err := contentsvc.NewVideoTaskService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video task service: %w", err)
	}

	return &VideoTaskHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.VideoTask, contentdto.VideoTaskCreateInput, contentdto.VideoTaskUpdateInput](videoTaskService),
		videoTaskService: videoTaskService,
	}, nil
}
