package worker

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	contentmodels "creator_studio/internal/api/content/models"
	fvsmodels "creator_studio/internal/api/fvs/models"
	fvssvc "creator_studio/internal/api/fvs/service"
	tenantmodels "creator_studio/internal/api/tenant/models"
	tenantsvc "creator_studio/internal/api/tenant/service"
	"creator_studio/internal/logger"
)

type profileLister interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]tenantmodels.ChannelProfile, error)
}

type ideaOrchestrator interface {
	ProposeIdeas(ctx context.Context, clientID primitive.ObjectID, count int) ([]fvsmodels.FVSIdea, error)
	ListIdeas(ctx context.Context, clientID primitive.ObjectID, status string) ([]fvsmodels.FVSIdea, error)
	ProduceEpisode(ctx context.Context, ideaID primitive.ObjectID) (contentmodels.Submission, error)
}

// FVSAutoWorker chạy vòng tự động hóa cho các kênh bật semi_auto hoặc full_auto:
//   - semi_auto: giữ cho kênh luôn có ý tưởng đề xuất chờ duyệt
//   - full_auto: thêm bước tự sản xuất ý tưởng đề xuất đầu tiên
//
// Chạy định kỳ (mặc định 60 phút). Kênh manual không bị đụng tới.
type FVSAutoWorker struct {
	profiles     profileLister
	orchestrator ideaOrchestrator
	interval     time.Duration
	proposeCount int // Số ý tưởng đề xuất khi kênh đã cạn
}

// NewFVSAutoWorker tạo mới FVSAutoWorker.
// Tham số interval: khoảng thời gian giữa các vòng (mặc định: 60 phút)
func NewFVSAutoWorker(interval time.Duration) (*FVSAutoWorker, error) {
	profileService, err := tenantsvc.NewChannelProfileService()
	if err != nil {
		return nil, err
	}
	orchestrator, err := fvssvc.NewOrchestratorService()
	if err != nil {
		return nil, err
	}

	if interval < time.Minute {
		interval = 60 * time.Minute
	}

	return &FVSAutoWorker{
		profiles:     profileService,
		orchestrator: orchestrator,
		interval:     interval,
		proposeCount: 3,
	}, nil
}

// Start chạy worker trong vòng lặp cho tới khi context bị hủy
func (w *FVSAutoWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithField("interval", w.interval.String()).Info("🤖 [FVS_AUTO] Starting FVS Auto Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🤖 [FVS_AUTO] FVS Auto Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithField("panic", r).Error("🤖 [FVS_AUTO] Panic trong vòng tự động, bỏ qua")
					}
				}()
				w.RunOnce(ctx)
			}()
		}
	}
}

// RunOnce xử lý một vòng tự động hóa trên tất cả các kênh bật automation.
// Lỗi của một kênh không ảnh hưởng các kênh còn lại.
func (w *FVSAutoWorker) RunOnce(ctx context.Context) {
	log := logger.GetAppLogger()

	profiles, err := w.profiles.Find(ctx, bson.M{
		"automationLevel": bson.M{"$in": []string{
			tenantmodels.AutomationSemiAuto,
			tenantmodels.AutomationFullAuto,
		}},
	}, nil)
	if err != nil {
		log.WithError(err).Error("🤖 [FVS_AUTO] Không đọc được danh sách kênh automation")
		return
	}

	for _, profile := range profiles {
		w.runForProfile(ctx, profile)
	}
}

// runForProfile chạy vòng tự động cho một kênh
func (w *FVSAutoWorker) runForProfile(ctx context.Context, profile tenantmodels.ChannelProfile) {
	log := logger.GetAppLogger().WithFields(map[string]interface{}{
		"clientId":        profile.OwnerClientID.Hex(),
		"automationLevel": profile.AutomationLevel,
	})

	proposed, err := w.orchestrator.ListIdeas(ctx, profile.OwnerClientID, fvsmodels.IdeaStatusProposed)
	if err != nil {
		log.WithError(err).Error("🤖 [FVS_AUTO] Không đọc được ý tưởng của kênh")
		return
	}

	// Kênh cạn ý tưởng: đề xuất bộ mới
	if len(proposed) == 0 {
		proposed, err = w.orchestrator.ProposeIdeas(ctx, profile.OwnerClientID, w.proposeCount)
		if err != nil {
			log.WithError(err).Error("🤖 [FVS_AUTO] Không đề xuất được ý tưởng")
			return
		}
		log.WithField("count", len(proposed)).Info("🤖 [FVS_AUTO] Đã đề xuất ý tưởng mới")
	}

	if profile.AutomationLevel != tenantmodels.AutomationFullAuto || len(proposed) == 0 {
		return
	}

	// full_auto: tự sản xuất ý tưởng đầu tiên trong danh sách đề xuất
	submission, err := w.orchestrator.ProduceEpisode(ctx, proposed[0].ID)
	if err != nil {
		log.WithError(err).WithField("ideaId", proposed[0].ID.Hex()).
			Error("🤖 [FVS_AUTO] Không sản xuất được tập từ ý tưởng")
		return
	}

	log.WithFields(map[string]interface{}{
		"ideaId":       proposed[0].ID.Hex(),
		"submissionId": submission.ID.Hex(),
	}).Info("🤖 [FVS_AUTO] Đã tự sản xuất một tập")
}
