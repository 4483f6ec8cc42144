package fvssvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "creator_studio/internal/api/base/service"
	contentmodels "creator_studio/internal/api/content/models"
	models "creator_studio/internal/api/fvs/models"
	notifymodels "creator_studio/internal/api/notification/models"
	tenantmodels "creator_studio/internal/api/tenant/models"
	"creator_studio/internal/common"
	"creator_studio/internal/provider"
)

// Các fake store in-memory cho orchestrator

type fakeIdeaStore struct {
	ideas map[primitive.ObjectID]models.FVSIdea
}

func newFakeIdeaStore() *fakeIdeaStore {
	return &fakeIdeaStore{ideas: map[primitive.ObjectID]models.FVSIdea{}}
}

func (f *fakeIdeaStore) InsertOne(ctx context.Context, data models.FVSIdea) (models.FVSIdea, error) {
	data.ID = primitive.NewObjectID()
	if data.Status == "" {
		data.Status = models.IdeaStatusProposed
	}
	f.ideas[data.ID] = data
	return data, nil
}

func (f *fakeIdeaStore) FindOneById(ctx context.Context, id primitive.ObjectID) (models.FVSIdea, error) {
	idea, ok := f.ideas[id]
	if !ok {
		return models.FVSIdea{}, common.ErrNotFound
	}
	return idea, nil
}

func (f *fakeIdeaStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.FVSIdea, error) {
	var out []models.FVSIdea
	for _, idea := range f.ideas {
		out = append(out, idea)
	}
	return out, nil
}

func (f *fakeIdeaStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.FVSIdea, error) {
	idea, ok := f.ideas[id]
	if !ok {
		return models.FVSIdea{}, common.ErrNotFound
	}
	if update, ok := data.(*basesvc.UpdateData); ok {
		if status, ok := update.Set["status"].(string); ok {
			idea.Status = status
		}
		if submissionID, ok := update.Set["submissionId"].(primitive.ObjectID); ok {
			idea.SubmissionID = submissionID
		}
	}
	f.ideas[id] = idea
	return idea, nil
}

type fakeProfileReader struct {
	profile tenantmodels.ChannelProfile
	err     error
}

func (f *fakeProfileReader) FindByClient(ctx context.Context, clientID primitive.ObjectID) (tenantmodels.ChannelProfile, error) {
	if f.err != nil {
		return tenantmodels.ChannelProfile{}, f.err
	}
	return f.profile, nil
}

type fakeAnalytics struct {
	snapshot AnalyticsSnapshot
}

func (f *fakeAnalytics) Snapshot(ctx context.Context, clientID primitive.ObjectID) (AnalyticsSnapshot, error) {
	return f.snapshot, nil
}

type fakeSubmissionStore struct {
	submissions map[primitive.ObjectID]contentmodels.Submission
	statusLog   []string // Chuỗi trạng thái đã đi qua
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{submissions: map[primitive.ObjectID]contentmodels.Submission{}}
}

func (f *fakeSubmissionStore) InsertOne(ctx context.Context, data contentmodels.Submission) (contentmodels.Submission, error) {
	data.ID = primitive.NewObjectID()
	if data.Status == "" {
		data.Status = contentmodels.SubmissionStatusNew
	}
	f.submissions[data.ID] = data
	return data, nil
}

func (f *fakeSubmissionStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (contentmodels.Submission, error) {
	submission := f.submissions[id]
	if update, ok := data.(*basesvc.UpdateData); ok {
		if script, ok := update.Set["script"].(string); ok {
			submission.Script = script
		}
	}
	f.submissions[id] = submission
	return submission, nil
}

func (f *fakeSubmissionStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (contentmodels.Submission, error) {
	submission := f.submissions[id]
	submission.Status = status
	f.submissions[id] = submission
	f.statusLog = append(f.statusLog, status)
	return submission, nil
}

type fakeAssetStore struct {
	assets    []contentmodels.Asset
	primaryID primitive.ObjectID
}

func (f *fakeAssetStore) InsertOne(ctx context.Context, data contentmodels.Asset) (contentmodels.Asset, error) {
	data.ID = primitive.NewObjectID()
	f.assets = append(f.assets, data)
	return data, nil
}

func (f *fakeAssetStore) SetPrimaryThumbnail(ctx context.Context, id primitive.ObjectID) (contentmodels.Asset, error) {
	f.primaryID = id
	return contentmodels.Asset{ID: id, IsPrimaryThumbnail: true}, nil
}

func (f *fakeAssetStore) countByType(assetType string) int {
	n := 0
	for _, a := range f.assets {
		if a.Type == assetType {
			n++
		}
	}
	return n
}

type fakeDeliverableStore struct {
	deliverables []contentmodels.Deliverable
}

func (f *fakeDeliverableStore) InsertOne(ctx context.Context, data contentmodels.Deliverable) (contentmodels.Deliverable, error) {
	data.ID = primitive.NewObjectID()
	f.deliverables = append(f.deliverables, data)
	return data, nil
}

type fakeVideoTaskStore struct {
	tasks     []contentmodels.VideoTask
	completed []primitive.ObjectID
}

func (f *fakeVideoTaskStore) InsertOne(ctx context.Context, data contentmodels.VideoTask) (contentmodels.VideoTask, error) {
	data.ID = primitive.NewObjectID()
	f.tasks = append(f.tasks, data)
	return data, nil
}

func (f *fakeVideoTaskStore) MarkCompleted(ctx context.Context, taskID, outputAssetID primitive.ObjectID) (contentmodels.VideoTask, error) {
	f.completed = append(f.completed, taskID)
	return contentmodels.VideoTask{ID: taskID, OutputAssetID: outputAssetID, Status: contentmodels.VideoTaskStatusCompleted}, nil
}

type fakeOrchestratorNotifier struct {
	notified []string
}

func (f *fakeOrchestratorNotifier) Notify(ctx context.Context, clientID primitive.ObjectID, notifType, title, body string, entityType string, entityID primitive.ObjectID) ([]notifymodels.Notification, error) {
	f.notified = append(f.notified, notifType)
	return []notifymodels.Notification{{Type: notifType}}, nil
}

// fakeTextGateway bọc gateway mock nhưng trả về text thật từ LLM
type fakeTextGateway struct {
	provider.Gateway
	text string
}

func (g *fakeTextGateway) GenerateText(ctx context.Context, req provider.TextRequest) (*provider.Result, error) {
	return &provider.Result{Text: g.text, ActualProvider: provider.ProviderOpenAI}, nil
}

// fakeImageGateway bọc gateway mock và ghi lại các prompt sinh ảnh
type fakeImageGateway struct {
	provider.Gateway
	prompts []string
}

func (g *fakeImageGateway) GenerateImage(ctx context.Context, req provider.ImageRequest) (*provider.Result, error) {
	g.prompts = append(g.prompts, req.Prompt)
	return g.Gateway.GenerateImage(ctx, req)
}

type orchestratorFixture struct {
	svc          *OrchestratorService
	ideas        *fakeIdeaStore
	profiles     *fakeProfileReader
	submissions  *fakeSubmissionStore
	assets       *fakeAssetStore
	deliverables *fakeDeliverableStore
	videoTasks   *fakeVideoTaskStore
	notify       *fakeOrchestratorNotifier
}

func newOrchestratorFixture(gateway provider.Gateway) *orchestratorFixture {
	clientID := primitive.NewObjectID()
	f := &orchestratorFixture{
		ideas: newFakeIdeaStore(),
		profiles: &fakeProfileReader{profile: tenantmodels.ChannelProfile{
			ID:                 primitive.NewObjectID(),
			OwnerClientID:      clientID,
			ChannelName:        "Kênh Test",
			Topic:              "khoa học",
			Language:           "vi",
			ThumbnailsPerShort: 3,
		}},
		submissions:  newFakeSubmissionStore(),
		assets:       &fakeAssetStore{},
		deliverables: &fakeDeliverableStore{},
		videoTasks:   &fakeVideoTaskStore{},
		notify:       &fakeOrchestratorNotifier{},
	}
	f.svc = &OrchestratorService{
		ideas:        f.ideas,
		profiles:     f.profiles,
		analytics:    &fakeAnalytics{},
		submissions:  f.submissions,
		assets:       f.assets,
		deliverables: f.deliverables,
		videoTasks:   f.videoTasks,
		notify:       f.notify,
		gateway:      gateway,
	}
	return f
}

func (f *orchestratorFixture) clientID() primitive.ObjectID {
	return f.profiles.profile.OwnerClientID
}

func TestProposeIdeas_ChuaCoHoSoKenh(t *testing.T) {
	f := newOrchestratorFixture(provider.NewFallbackGateway(nil, nil, nil, nil, nil))
	f.profiles.err = common.ErrNotFound

	_, err := f.svc.ProposeIdeas(context.Background(), primitive.NewObjectID(), 3)
	require.Error(t, err)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}

func TestProposeIdeas_GatewayMock_DungYTuongFallback(t *testing.T) {
	f := newOrchestratorFixture(provider.NewFallbackGateway(nil, nil, nil, nil, nil))

	ideas, err := f.svc.ProposeIdeas(context.Background(), f.clientID(), 3)
	require.NoError(t, err)
	require.Len(t, ideas, 3)

	for _, idea := range ideas {
		assert.Equal(t, models.IdeaSourceFallback, idea.Source)
		assert.Equal(t, models.IdeaStatusProposed, idea.Status)
		assert.Equal(t, f.clientID(), idea.OwnerClientID)
		assert.NotEmpty(t, idea.Title)
		// Chủ đề kênh phải xuất hiện trong ý tưởng fallback
		assert.Contains(t, idea.Title, "khoa học")
	}

	// Mỗi ý tưởng tạo một notification FVS_IDEA
	assert.Equal(t, []string{
		notifymodels.NotificationTypeFvsIdea,
		notifymodels.NotificationTypeFvsIdea,
		notifymodels.NotificationTypeFvsIdea,
	}, f.notify.notified)
}

func TestProposeIdeas_LLMTraVeJSON_DungNguonLLM(t *testing.T) {
	gateway := &fakeTextGateway{
		Gateway: provider.NewFallbackGateway(nil, nil, nil, nil, nil),
		text:    `[{"title": "Ý tưởng từ LLM", "hook": "Hook hay", "format": "short", "score": 0.8}]`,
	}
	f := newOrchestratorFixture(gateway)

	ideas, err := f.svc.ProposeIdeas(context.Background(), f.clientID(), 3)
	require.NoError(t, err)
	require.Len(t, ideas, 1)

	assert.Equal(t, models.IdeaSourceLLM, ideas[0].Source)
	assert.Equal(t, "Ý tưởng từ LLM", ideas[0].Title)
	assert.InDelta(t, 0.8, ideas[0].Score, 0.001)
	assert.Equal(t, []string{notifymodels.NotificationTypeFvsIdea}, f.notify.notified)
}

func TestProposeIdeas_LLMTraVeRac_RoiVeFallback(t *testing.T) {
	gateway := &fakeTextGateway{
		Gateway: provider.NewFallbackGateway(nil, nil, nil, nil, nil),
		text:    "xin lỗi, tôi không trả lời bằng JSON được",
	}
	f := newOrchestratorFixture(gateway)

	ideas, err := f.svc.ProposeIdeas(context.Background(), f.clientID(), 2)
	require.NoError(t, err)
	require.Len(t, ideas, 2)

	assert.Equal(t, models.IdeaSourceFallback, ideas[0].Source)
}

func TestAcceptIdea_DangDeXuat(t *testing.T) {
	f := newOrchestratorFixture(provider.NewFallbackGateway(nil, nil, nil, nil, nil))
	idea, err := f.ideas.InsertOne(context.Background(), models.FVSIdea{Title: "Ý tưởng", OwnerClientID: f.clientID()})
	require.NoError(t, err)

	accepted, err := f.svc.AcceptIdea(context.Background(), idea.ID)
	require.NoError(t, err)

	assert.Equal(t, models.IdeaStatusAccepted, accepted.Status)
}

func TestRejectIdea_DaProduced_TraVeLoi(t *testing.T) {
	f := newOrchestratorFixture(provider.NewFallbackGateway(nil, nil, nil, nil, nil))
	idea, err := f.ideas.InsertOne(context.Background(), models.FVSIdea{
		Title:         "Ý tưởng đã sản xuất",
		Status:        models.IdeaStatusProduced,
		OwnerClientID: f.clientID(),
	})
	require.NoError(t, err)

	_, err = f.svc.RejectIdea(context.Background(), idea.ID)
	require.Error(t, err)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}

func TestProduceEpisode_PipelineHoanChinhVoiMock(t *testing.T) {
	f := newOrchestratorFixture(provider.NewFallbackGateway(nil, nil, nil, nil, nil))
	idea, err := f.ideas.InsertOne(context.Background(), models.FVSIdea{
		Title:         "Tập về giấc ngủ",
		Hook:          "Bạn ngủ sai cách?",
		Format:        contentmodels.FormatShort,
		OwnerClientID: f.clientID(),
	})
	require.NoError(t, err)

	submission, err := f.svc.ProduceEpisode(context.Background(), idea.ID)
	require.NoError(t, err)

	// Submission tạo từ ý tưởng, kết thúc ở trạng thái review
	assert.Equal(t, "Tập về giấc ngủ", submission.Title)
	assert.Equal(t, idea.ID, submission.SourceIdeaID)
	assert.Equal(t, contentmodels.SubmissionStatusReview, submission.Status)
	assert.Equal(t, []string{
		contentmodels.SubmissionStatusInProduction,
		contentmodels.SubmissionStatusReview,
	}, f.submissions.statusLog)

	// Đủ bộ asset: 1 script, 1 audio, 1 video, 3 thumbnail (tất cả mock)
	assert.Equal(t, 1, f.assets.countByType(contentmodels.AssetTypeScript))
	assert.Equal(t, 1, f.assets.countByType(contentmodels.AssetTypeAudio))
	assert.Equal(t, 1, f.assets.countByType(contentmodels.AssetTypeVideo))
	assert.Equal(t, 3, f.assets.countByType(contentmodels.AssetTypeThumbnail))
	for _, asset := range f.assets.assets {
		assert.True(t, asset.IsMocked, "provider không cấu hình thì asset phải mang cờ mock")
		assert.NotEmpty(t, asset.Warnings)
		assert.Equal(t, f.clientID(), asset.OwnerClientID)
	}

	// Thumbnail đầu tiên được chọn làm primary
	assert.False(t, f.assets.primaryID.IsZero())

	// Video task hoàn tất, deliverable youtube được tạo
	require.Len(t, f.videoTasks.tasks, 1)
	assert.Equal(t, []primitive.ObjectID{f.videoTasks.tasks[0].ID}, f.videoTasks.completed)
	require.Len(t, f.deliverables.deliverables, 1)
	assert.Equal(t, tenantmodels.PlatformYoutube, f.deliverables.deliverables[0].Platform)
	assert.False(t, f.deliverables.deliverables[0].VideoAssetID.IsZero())

	// Ý tưởng chuyển sang produced và gắn với submission
	produced, err := f.ideas.FindOneById(context.Background(), idea.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IdeaStatusProduced, produced.Status)
	assert.Equal(t, submission.ID, produced.SubmissionID)

	// Đúng một notification PRODUCE_DONE
	assert.Equal(t, []string{notifymodels.NotificationTypeProduceDone}, f.notify.notified)
}

func TestProduceEpisode_PromptThumbnailMangDauAnThuongHieu(t *testing.T) {
	gateway := &fakeImageGateway{Gateway: provider.NewFallbackGateway(nil, nil, nil, nil, nil)}
	f := newOrchestratorFixture(gateway)
	f.profiles.profile.BrandDescription = "Kênh khoa học thường thức cho người bận rộn"
	f.profiles.profile.ThumbnailStyle = "Màu tương phản mạnh, chữ lớn, mặt người phóng đại"

	idea, err := f.ideas.InsertOne(context.Background(), models.FVSIdea{
		Title:         "Vì sao trời xanh",
		Format:        contentmodels.FormatShort,
		OwnerClientID: f.clientID(),
	})
	require.NoError(t, err)

	_, err = f.svc.ProduceEpisode(context.Background(), idea.ID)
	require.NoError(t, err)

	// Mỗi thumbnail một prompt, ghép chủ đề ý tưởng với thương hiệu và phong cách
	require.Len(t, gateway.prompts, 3)
	for _, prompt := range gateway.prompts {
		assert.Contains(t, prompt, "Vì sao trời xanh")
		assert.Contains(t, prompt, "Kênh khoa học thường thức cho người bận rộn")
		assert.Contains(t, prompt, "Màu tương phản mạnh, chữ lớn, mặt người phóng đại")
	}
}

func TestProduceEpisode_YTuongDaProduced_TraVeConflict(t *testing.T) {
	f := newOrchestratorFixture(provider.NewFallbackGateway(nil, nil, nil, nil, nil))
	idea, err := f.ideas.InsertOne(context.Background(), models.FVSIdea{
		Title:         "Đã sản xuất",
		Status:        models.IdeaStatusProduced,
		OwnerClientID: f.clientID(),
	})
	require.NoError(t, err)

	_, err = f.svc.ProduceEpisode(context.Background(), idea.ID)
	require.Error(t, err)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusConflict, appErr.StatusCode)
	assert.Empty(t, f.submissions.submissions)
}

func TestProduceEpisode_YTuongBiTuChoi_TraVeLoi(t *testing.T) {
	f := newOrchestratorFixture(provider.NewFallbackGateway(nil, nil, nil, nil, nil))
	idea, err := f.ideas.InsertOne(context.Background(), models.FVSIdea{
		Title:         "Bị từ chối",
		Status:        models.IdeaStatusRejected,
		OwnerClientID: f.clientID(),
	})
	require.NoError(t, err)

	_, err = f.svc.ProduceEpisode(context.Background(), idea.ID)
	require.Error(t, err)
	assert.Empty(t, f.submissions.submissions)
}
