package fvssvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "creator_studio/internal/api/base/service"
	contentmodels "creator_studio/internal/api/content/models"
	contentsvc "creator_studio/internal/api/content/service"
	models "creator_studio/internal/api/fvs/models"
	notifymodels "creator_studio/internal/api/notification/models"
	notifysvc "creator_studio/internal/api/notification/service"
	tenantmodels "creator_studio/internal/api/tenant/models"
	tenantsvc "creator_studio/internal/api/tenant/service"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
	"creator_studio/internal/logger"
	"creator_studio/internal/provider"
)

// Các interface hẹp sang các domain khác, để orchestrator test được với fake.

type ideaStore interface {
	InsertOne(ctx context.Context, data models.FVSIdea) (models.FVSIdea, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (models.FVSIdea, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.FVSIdea, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.FVSIdea, error)
}

type profileReader interface {
	FindByClient(ctx context.Context, clientID primitive.ObjectID) (tenantmodels.ChannelProfile, error)
}

type analyticsSource interface {
	Snapshot(ctx context.Context, clientID primitive.ObjectID) (AnalyticsSnapshot, error)
}

type submissionStore interface {
	InsertOne(ctx context.Context, data contentmodels.Submission) (contentmodels.Submission, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (contentmodels.Submission, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (contentmodels.Submission, error)
}

type assetStore interface {
	InsertOne(ctx context.Context, data contentmodels.Asset) (contentmodels.Asset, error)
	SetPrimaryThumbnail(ctx context.Context, id primitive.ObjectID) (contentmodels.Asset, error)
}

type deliverableStore interface {
	InsertOne(ctx context.Context, data contentmodels.Deliverable) (contentmodels.Deliverable, error)
}

type videoTaskStore interface {
	InsertOne(ctx context.Context, data contentmodels.VideoTask) (contentmodels.VideoTask, error)
	MarkCompleted(ctx context.Context, taskID, outputAssetID primitive.ObjectID) (contentmodels.VideoTask, error)
}

type notifier interface {
	Notify(ctx context.Context, clientID primitive.ObjectID, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]notifymodels.Notification, error)
}

// OrchestratorService điều phối vòng đời FVS: đề xuất ý tưởng từ hồ sơ kênh
// và số liệu, rồi sản xuất một tập hoàn chỉnh (script, audio, video, thumbnail)
// qua provider gateway.
type OrchestratorService struct {
	ideas        ideaStore
	profiles     profileReader
	analytics    analyticsSource
	submissions  submissionStore
	assets       assetStore
	deliverables deliverableStore
	videoTasks   videoTaskStore
	notify       notifier
	gateway      provider.Gateway
}

// NewOrchestratorService tạo orchestrator nối với các service thật và gateway toàn cục
func NewOrchestratorService() (*OrchestratorService, error) {
	ideaCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FvsIdeas)
	if !exist {
		return nil, fmt.Errorf("failed to get fvs_ideas collection: %v", common.ErrNotFound)
	}

	profileService, err := tenantsvc.NewChannelProfileService()
	if err != nil {
		return nil, err
	}
	analyticsService, err := NewAnalyticsService()
	if err != nil {
		return nil, err
	}
	submissionService, err := contentsvc.NewSubmissionService()
	if err != nil {
		return nil, err
	}
	assetService, err := contentsvc.NewAssetService()
	if err != nil {
		return nil, err
	}
	deliverableService, err := contentsvc.NewDeliverableService()
	if err != nil {
		return nil, err
	}
	videoTaskService, err := contentsvc.NewVideoTaskService()
	if err != nil {
		return nil, err
	}
	notificationService, err := notifysvc.NewNotificationService()
	if err != nil {
		return nil, err
	}

	return &OrchestratorService{
		ideas:        basesvc.NewBaseServiceMongo[models.FVSIdea](ideaCollection),
		profiles:     profileService,
		analytics:    analyticsService,
		submissions:  submissionService,
		assets:       assetService,
		deliverables: deliverableService,
		videoTasks:   videoTaskService,
		notify:       notificationService,
		gateway:      global.ProviderGateway,
	}, nil
}

// ProposeIdeas đề xuất ý tưởng mới cho một khách hàng dựa trên hồ sơ kênh
// và số liệu nội dung. LLM lỗi hoặc trả về không parse được thì dùng bộ ý
// tưởng deterministic từ chủ đề kênh.
func (s *OrchestratorService) ProposeIdeas(ctx context.Context, clientID primitive.ObjectID, count int) ([]models.FVSIdea, error) {
	if count <= 0 {
		count = 3
	}
	if count > 10 {
		count = 10
	}

	profile, err := s.profiles.FindByClient(ctx, clientID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeBusinessState,
			"Khách hàng chưa có hồ sơ kênh, không đề xuất được ý tưởng", common.StatusBadRequest, nil)
	}

	snapshot, err := s.analytics.Snapshot(ctx, clientID)
	if err != nil {
		return nil, err
	}

	parsed, source := s.generateIdeas(ctx, profile, snapshot, count)

	inserted := make([]models.FVSIdea, 0, len(parsed))
	for _, p := range parsed {
		idea, err := s.ideas.InsertOne(ctx, models.FVSIdea{
			Title:         p.Title,
			Hook:          p.Hook,
			Outline:       p.Outline,
			Format:        p.Format,
			Score:         p.Score,
			Source:        source,
			OwnerClientID: clientID,
		})
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, idea)

		if _, err := s.notify.Notify(ctx, clientID,
			notifymodels.NotificationTypeFvsIdea,
			fmt.Sprintf("Ý tưởng mới: %s", idea.Title),
			"Ý tưởng đang chờ duyệt.",
			"fvs_idea", idea.ID); err != nil {
			logger.GetErrorLogger().WithError(err).Error("Không tạo được notification FVS_IDEA")
		}
	}

	return inserted, nil
}

// generateIdeas gọi LLM rồi parse; mọi đường lỗi đều rơi về bộ ý tưởng fallback
func (s *OrchestratorService) generateIdeas(ctx context.Context, profile tenantmodels.ChannelProfile, snapshot AnalyticsSnapshot, count int) ([]parsedIdea, string) {
	result, err := s.gateway.GenerateText(ctx, provider.TextRequest{
		System: "Bạn là biên tập viên nội dung. Trả lời CHỈ bằng JSON array, mỗi phần tử có các key: title, hook, outline, format (short|long), score (0-1).",
		Prompt: buildProposePrompt(profile, snapshot, count),
	})
	if err == nil && !result.IsMocked {
		if parsed, perr := parseIdeas(result.Text); perr == nil {
			if len(parsed) > count {
				parsed = parsed[:count]
			}
			return parsed, models.IdeaSourceLLM
		}
		logger.GetAppLogger().WithField("clientId", profile.OwnerClientID.Hex()).
			Warn("Output LLM không parse được, dùng ý tưởng fallback")
	}

	return fallbackIdeas(profile, count), models.IdeaSourceFallback
}

// buildProposePrompt dựng prompt đề xuất từ hồ sơ kênh và snapshot số liệu
func buildProposePrompt(profile tenantmodels.ChannelProfile, snapshot AnalyticsSnapshot, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Đề xuất %d ý tưởng video mới cho kênh '%s'.\n", count, profile.ChannelName)
	fmt.Fprintf(&b, "Chủ đề: %s. Khán giả: %s. Giọng điệu: %s. Ngôn ngữ: %s.\n",
		profile.Topic, profile.Audience, profile.Tone, profile.Language)
	if profile.BrandDescription != "" {
		fmt.Fprintf(&b, "Thương hiệu: %s\n", profile.BrandDescription)
	}
	if len(profile.ContentPillars) > 0 {
		fmt.Fprintf(&b, "Bám theo các trụ cột nội dung: %s.\n", strings.Join(profile.ContentPillars, ", "))
	}
	fmt.Fprintf(&b, "Kênh đã có %d tập, %d tập đã đăng.\n", snapshot.TotalSubmissions, snapshot.PublishedCount)
	if len(snapshot.RecentTitles) > 0 {
		fmt.Fprintf(&b, "Tránh trùng với các tập gần đây: %s.\n", strings.Join(snapshot.RecentTitles, "; "))
	}
	if len(snapshot.TopTags) > 0 {
		fmt.Fprintf(&b, "Các tag đang hoạt động tốt: %s.\n", strings.Join(snapshot.TopTags, ", "))
	}
	return b.String()
}

// fallbackIdeas sinh bộ ý tưởng deterministic từ chủ đề kênh
func fallbackIdeas(profile tenantmodels.ChannelProfile, count int) []parsedIdea {
	topic := profile.Topic
	if topic == "" {
		topic = profile.ChannelName
	}

	templates := []parsedIdea{
		{Title: fmt.Sprintf("5 sự thật thú vị về %s", topic), Hook: fmt.Sprintf("Bạn có biết điều này về %s?", topic), Format: "short"},
		{Title: fmt.Sprintf("Những hiểu lầm phổ biến về %s", topic), Hook: "Rất nhiều người vẫn tin điều này...", Format: "short"},
		{Title: fmt.Sprintf("Hướng dẫn nhập môn %s cho người mới", topic), Hook: "Bắt đầu từ con số 0.", Format: "long"},
		{Title: fmt.Sprintf("%s: câu chuyện ít người biết", topic), Hook: "Một góc nhìn hoàn toàn khác.", Format: "short"},
		{Title: fmt.Sprintf("Top 3 câu hỏi thường gặp về %s", topic), Hook: "Câu số 2 sẽ làm bạn bất ngờ.", Format: "short"},
		{Title: fmt.Sprintf("Một ngày tìm hiểu %s", topic), Hook: "Thử thách trong 24 giờ.", Format: "long"},
		{Title: fmt.Sprintf("Sai lầm lớn nhất khi tiếp cận %s", topic), Hook: "Đừng mắc phải điều này.", Format: "short"},
		{Title: fmt.Sprintf("%s qua các con số", topic), Hook: "Dữ liệu không biết nói dối.", Format: "short"},
		{Title: fmt.Sprintf("Tương lai của %s", topic), Hook: "5 năm nữa sẽ ra sao?", Format: "long"},
		{Title: fmt.Sprintf("Giải thích %s trong 60 giây", topic), Hook: "Ngắn gọn và đủ ý.", Format: "short"},
	}

	if count > len(templates) {
		count = len(templates)
	}
	return templates[:count]
}

// GetIdea trả về một ý tưởng theo ID
func (s *OrchestratorService) GetIdea(ctx context.Context, ideaID primitive.ObjectID) (models.FVSIdea, error) {
	return s.ideas.FindOneById(ctx, ideaID)
}

// ListIdeas trả về các ý tưởng của một khách hàng, lọc theo status nếu có
func (s *OrchestratorService) ListIdeas(ctx context.Context, clientID primitive.ObjectID, status string) ([]models.FVSIdea, error) {
	filter := bson.M{"ownerClientId": clientID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.ideas.Find(ctx, filter, opts)
}

// AcceptIdea duyệt một ý tưởng đang đề xuất
func (s *OrchestratorService) AcceptIdea(ctx context.Context, ideaID primitive.ObjectID) (models.FVSIdea, error) {
	return s.setIdeaStatus(ctx, ideaID, models.IdeaStatusAccepted)
}

// RejectIdea từ chối một ý tưởng đang đề xuất
func (s *OrchestratorService) RejectIdea(ctx context.Context, ideaID primitive.ObjectID) (models.FVSIdea, error) {
	return s.setIdeaStatus(ctx, ideaID, models.IdeaStatusRejected)
}

// setIdeaStatus đổi trạng thái ý tưởng; ý tưởng đã produced là bất biến
func (s *OrchestratorService) setIdeaStatus(ctx context.Context, ideaID primitive.ObjectID, status string) (models.FVSIdea, error) {
	idea, err := s.ideas.FindOneById(ctx, ideaID)
	if err != nil {
		return idea, err
	}
	if idea.Status == models.IdeaStatusProduced {
		return idea, common.NewError(common.ErrCodeBusinessState,
			"Ý tưởng đã được sản xuất, không đổi trạng thái được nữa", common.StatusBadRequest, nil)
	}

	return s.ideas.UpdateById(ctx, ideaID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
}

// ProduceEpisode sản xuất một tập hoàn chỉnh từ một ý tưởng: tạo submission,
// sinh script, audio, video và bộ thumbnail qua gateway, đóng gói deliverable
// rồi đưa submission vào trạng thái review. Provider lỗi không làm hỏng
// pipeline: asset tương ứng mang cờ isMocked và cảnh báo.
func (s *OrchestratorService) ProduceEpisode(ctx context.Context, ideaID primitive.ObjectID) (contentmodels.Submission, error) {
	var zero contentmodels.Submission

	idea, err := s.ideas.FindOneById(ctx, ideaID)
	if err != nil {
		return zero, err
	}
	if idea.Status == models.IdeaStatusProduced {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"Ý tưởng đã được sản xuất trước đó", common.StatusConflict, nil)
	}
	if idea.Status == models.IdeaStatusRejected {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"Ý tưởng đã bị từ chối, không sản xuất được", common.StatusBadRequest, nil)
	}

	profile, err := s.profiles.FindByClient(ctx, idea.OwnerClientID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"Khách hàng chưa có hồ sơ kênh, không sản xuất được", common.StatusBadRequest, nil)
	}

	submission, err := s.submissions.InsertOne(ctx, contentmodels.Submission{
		Title:         idea.Title,
		Description:   idea.Hook,
		Format:        idea.Format,
		SourceIdeaID:  idea.ID,
		OwnerClientID: idea.OwnerClientID,
	})
	if err != nil {
		return zero, err
	}

	if _, err := s.submissions.UpdateStatus(ctx, submission.ID, contentmodels.SubmissionStatusInProduction); err != nil {
		return zero, err
	}

	// Script
	scriptResult, err := s.gateway.GenerateText(ctx, provider.TextRequest{
		System: "Bạn là người viết kịch bản video. Viết kịch bản hoàn chỉnh, tự nhiên khi đọc thành tiếng.",
		Prompt: buildScriptPrompt(idea, profile),
	})
	if err != nil {
		return zero, err
	}
	submission, err = s.submissions.UpdateById(ctx, submission.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"script": scriptResult.Text},
	})
	if err != nil {
		return zero, err
	}
	if _, err := s.insertAsset(ctx, submission, contentmodels.AssetTypeScript, scriptResult); err != nil {
		return zero, err
	}

	// Audio
	voiceResult, err := s.gateway.GenerateVoice(ctx, provider.VoiceRequest{Text: scriptResult.Text})
	if err != nil {
		return zero, err
	}
	voiceResult, err = s.persistMedia(ctx, voiceResult, objectName(submission, "audio.mp3"))
	if err != nil {
		return zero, err
	}
	audioAsset, err := s.insertAsset(ctx, submission, contentmodels.AssetTypeAudio, voiceResult)
	if err != nil {
		return zero, err
	}

	// Video qua video task
	videoTask, err := s.videoTasks.InsertOne(ctx, contentmodels.VideoTask{
		SubmissionID:  submission.ID,
		OwnerClientID: submission.OwnerClientID,
	})
	if err != nil {
		return zero, err
	}
	videoResult, err := s.gateway.GenerateVideo(ctx, provider.VideoRequest{
		Script:   scriptResult.Text,
		AudioURL: audioAsset.URL,
		Format:   submission.Format,
	})
	if err != nil {
		return zero, err
	}
	videoResult, err = s.persistMedia(ctx, videoResult, objectName(submission, "video.mp4"))
	if err != nil {
		return zero, err
	}
	videoAsset, err := s.insertAsset(ctx, submission, contentmodels.AssetTypeVideo, videoResult)
	if err != nil {
		return zero, err
	}
	if _, err := s.videoTasks.MarkCompleted(ctx, videoTask.ID, videoAsset.ID); err != nil {
		return zero, err
	}

	// Thumbnails
	thumbnailCount := profile.ThumbnailsPerShort
	if thumbnailCount <= 0 {
		thumbnailCount = 3
	}
	var primaryThumbnail contentmodels.Asset
	for i := 0; i < thumbnailCount; i++ {
		imageResult, err := s.gateway.GenerateImage(ctx, provider.ImageRequest{
			Prompt: buildThumbnailPrompt(idea, profile, i+1, thumbnailCount),
			Width:  1280,
			Height: 720,
		})
		if err != nil {
			return zero, err
		}
		imageResult, err = s.persistMedia(ctx, imageResult, objectName(submission, fmt.Sprintf("thumbnail_%d.png", i+1)))
		if err != nil {
			return zero, err
		}
		thumbnail, err := s.insertAsset(ctx, submission, contentmodels.AssetTypeThumbnail, imageResult)
		if err != nil {
			return zero, err
		}
		if i == 0 {
			primaryThumbnail = thumbnail
		}
	}
	if !primaryThumbnail.ID.IsZero() {
		if _, err := s.assets.SetPrimaryThumbnail(ctx, primaryThumbnail.ID); err != nil {
			return zero, err
		}
	}

	// Deliverable mặc định cho youtube
	if _, err := s.deliverables.InsertOne(ctx, contentmodels.Deliverable{
		SubmissionID:     submission.ID,
		Platform:         tenantmodels.PlatformYoutube,
		Title:            submission.Title,
		Description:      submission.Description,
		VideoAssetID:     videoAsset.ID,
		ThumbnailAssetID: primaryThumbnail.ID,
		OwnerClientID:    submission.OwnerClientID,
	}); err != nil {
		return zero, err
	}

	submission, err = s.submissions.UpdateStatus(ctx, submission.ID, contentmodels.SubmissionStatusReview)
	if err != nil {
		return zero, err
	}

	if _, err := s.ideas.UpdateById(ctx, idea.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.IdeaStatusProduced,
			"submissionId": submission.ID,
		},
	}); err != nil {
		return zero, err
	}

	if _, err := s.notify.Notify(ctx, submission.OwnerClientID,
		notifymodels.NotificationTypeProduceDone,
		fmt.Sprintf("Đã sản xuất xong '%s'", submission.Title),
		"Tập mới đã sẵn sàng để duyệt.",
		"submission", submission.ID); err != nil {
		logger.GetErrorLogger().WithError(err).Error("Không tạo được notification PRODUCE_DONE")
	}

	return submission, nil
}

// buildScriptPrompt dựng prompt viết kịch bản từ ý tưởng và hồ sơ kênh
func buildScriptPrompt(idea models.FVSIdea, profile tenantmodels.ChannelProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Viết kịch bản video '%s' cho kênh '%s'.\n", idea.Title, profile.ChannelName)
	if idea.Hook != "" {
		fmt.Fprintf(&b, "Mở đầu bằng hook: %s\n", idea.Hook)
	}
	if idea.Outline != "" {
		fmt.Fprintf(&b, "Theo dàn ý: %s\n", idea.Outline)
	}
	fmt.Fprintf(&b, "Định dạng: %s. Giọng điệu: %s. Ngôn ngữ: %s.\n", idea.Format, profile.Tone, profile.Language)
	return b.String()
}

// buildThumbnailPrompt dựng prompt sinh thumbnail: chủ đề ý tưởng cộng với
// mô tả thương hiệu và phong cách thumbnail của kênh (nếu có).
func buildThumbnailPrompt(idea models.FVSIdea, profile tenantmodels.ChannelProfile, index, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thumbnail %d/%d cho video '%s', chủ đề %s.", index, total, idea.Title, profile.Topic)
	if profile.BrandDescription != "" {
		fmt.Fprintf(&b, " Thương hiệu: %s.", profile.BrandDescription)
	}
	if profile.ThumbnailStyle != "" {
		fmt.Fprintf(&b, " Phong cách: %s.", profile.ThumbnailStyle)
	}
	return b.String()
}

// insertAsset tạo asset từ kết quả gateway, giữ nguyên cờ mock và cảnh báo
func (s *OrchestratorService) insertAsset(ctx context.Context, submission contentmodels.Submission, assetType string, result *provider.Result) (contentmodels.Asset, error) {
	return s.assets.InsertOne(ctx, contentmodels.Asset{
		SubmissionID:  submission.ID,
		Type:          assetType,
		URL:           result.URL,
		MimeType:      result.MimeType,
		Provider:      result.ActualProvider,
		IsMocked:      result.IsMocked,
		Warnings:      result.Warnings,
		OwnerClientID: submission.OwnerClientID,
	})
}

// persistMedia đẩy dữ liệu nhị phân lên storage để asset có URL bền;
// kết quả đã có URL (hoặc mock data URL) thì giữ nguyên.
func (s *OrchestratorService) persistMedia(ctx context.Context, result *provider.Result, name string) (*provider.Result, error) {
	if len(result.Data) == 0 || result.IsMocked {
		return result, nil
	}

	uploaded, err := s.gateway.UploadToStorage(ctx, provider.UploadRequest{
		ObjectName:  name,
		Data:        result.Data,
		ContentType: result.MimeType,
	})
	if err != nil {
		return nil, err
	}

	// Giữ provider gốc của media, cộng dồn cảnh báo từ bước upload
	uploaded.ActualProvider = result.ActualProvider
	uploaded.Warnings = append(result.Warnings, uploaded.Warnings...)
	if uploaded.IsMocked {
		// Upload fallback về data URL: media vẫn là thật, chỉ URL degraded
		uploaded.IsMocked = result.IsMocked
	}
	return uploaded, nil
}

// objectName sinh tên object trên storage cho media của một submission
func objectName(submission contentmodels.Submission, filename string) string {
	return fmt.Sprintf("clients/%s/submissions/%s/%s",
		submission.OwnerClientID.Hex(), submission.ID.Hex(), filename)
}
