package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	contentmodels "creator_studio/internal/api/content/models"
	fvsmodels "creator_studio/internal/api/fvs/models"
	tenantmodels "creator_studio/internal/api/tenant/models"
)

type fakeProfileLister struct {
	profiles []tenantmodels.ChannelProfile
}

func (f *fakeProfileLister) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]tenantmodels.ChannelProfile, error) {
	return f.profiles, nil
}

type fakeOrchestrator struct {
	proposedByClient map[primitive.ObjectID][]fvsmodels.FVSIdea
	proposeCalls     []primitive.ObjectID
	producedIdeas    []primitive.ObjectID
}

func newFakeOrchestrator() *fakeOrchestrator {
	return &fakeOrchestrator{proposedByClient: map[primitive.ObjectID][]fvsmodels.FVSIdea{}}
}

func (f *fakeOrchestrator) ProposeIdeas(ctx context.Context, clientID primitive.ObjectID, count int) ([]fvsmodels.FVSIdea, error) {
	f.proposeCalls = append(f.proposeCalls, clientID)
	ideas := make([]fvsmodels.FVSIdea, 0, count)
	for i := 0; i < count; i++ {
		ideas = append(ideas, fvsmodels.FVSIdea{
			ID:            primitive.NewObjectID(),
			Status:        fvsmodels.IdeaStatusProposed,
			OwnerClientID: clientID,
		})
	}
	f.proposedByClient[clientID] = ideas
	return ideas, nil
}

func (f *fakeOrchestrator) ListIdeas(ctx context.Context, clientID primitive.ObjectID, status string) ([]fvsmodels.FVSIdea, error) {
	return f.proposedByClient[clientID], nil
}

func (f *fakeOrchestrator) ProduceEpisode(ctx context.Context, ideaID primitive.ObjectID) (contentmodels.Submission, error) {
	f.producedIdeas = append(f.producedIdeas, ideaID)
	return contentmodels.Submission{ID: primitive.NewObjectID(), Status: contentmodels.SubmissionStatusReview}, nil
}

func newAutoWorker(profiles *fakeProfileLister, orchestrator *fakeOrchestrator) *FVSAutoWorker {
	return &FVSAutoWorker{
		profiles:     profiles,
		orchestrator: orchestrator,
		interval:     time.Hour,
		proposeCount: 3,
	}
}

func TestRunOnce_SemiAuto_DeXuatKhiCanYTuong(t *testing.T) {
	clientID := primitive.NewObjectID()
	profiles := &fakeProfileLister{profiles: []tenantmodels.ChannelProfile{{
		OwnerClientID:   clientID,
		AutomationLevel: tenantmodels.AutomationSemiAuto,
	}}}
	orchestrator := newFakeOrchestrator()

	w := newAutoWorker(profiles, orchestrator)
	w.RunOnce(context.Background())

	require.Len(t, orchestrator.proposeCalls, 1)
	assert.Equal(t, clientID, orchestrator.proposeCalls[0])
	// semi_auto chỉ đề xuất, không tự sản xuất
	assert.Empty(t, orchestrator.producedIdeas)
}

func TestRunOnce_SemiAuto_ConYTuong_KhongDeXuatThem(t *testing.T) {
	clientID := primitive.NewObjectID()
	profiles := &fakeProfileLister{profiles: []tenantmodels.ChannelProfile{{
		OwnerClientID:   clientID,
		AutomationLevel: tenantmodels.AutomationSemiAuto,
	}}}
	orchestrator := newFakeOrchestrator()
	orchestrator.proposedByClient[clientID] = []fvsmodels.FVSIdea{{
		ID:            primitive.NewObjectID(),
		Status:        fvsmodels.IdeaStatusProposed,
		OwnerClientID: clientID,
	}}

	w := newAutoWorker(profiles, orchestrator)
	w.RunOnce(context.Background())

	assert.Empty(t, orchestrator.proposeCalls)
	assert.Empty(t, orchestrator.producedIdeas)
}

func TestRunOnce_FullAuto_TuSanXuatYTuongDauTien(t *testing.T) {
	clientID := primitive.NewObjectID()
	profiles := &fakeProfileLister{profiles: []tenantmodels.ChannelProfile{{
		OwnerClientID:   clientID,
		AutomationLevel: tenantmodels.AutomationFullAuto,
	}}}
	orchestrator := newFakeOrchestrator()

	w := newAutoWorker(profiles, orchestrator)
	w.RunOnce(context.Background())

	// Kênh cạn ý tưởng: đề xuất rồi sản xuất ý tưởng đầu tiên
	require.Len(t, orchestrator.proposeCalls, 1)
	require.Len(t, orchestrator.producedIdeas, 1)
	assert.Equal(t, orchestrator.proposedByClient[clientID][0].ID, orchestrator.producedIdeas[0])
}

func TestRunOnce_KhongCoKenhAutomation(t *testing.T) {
	profiles := &fakeProfileLister{}
	orchestrator := newFakeOrchestrator()

	w := newAutoWorker(profiles, orchestrator)
	w.RunOnce(context.Background())

	assert.Empty(t, orchestrator.proposeCalls)
	assert.Empty(t, orchestrator.producedIdeas)
}
