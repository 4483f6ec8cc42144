package fvssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	contentmodels "creator_studio/internal/api/content/models"
	"creator_studio/internal/common"
	"creator_studio/internal/global"
)

// AnalyticsSnapshot là ảnh chụp số liệu nội dung của một kênh,
// dùng làm ngữ cảnh cho việc đề xuất ý tưởng.
type AnalyticsSnapshot struct {
	TotalSubmissions int64    `json:"totalSubmissions"`
	PublishedCount   int64    `json:"publishedCount"`
	InPipelineCount  int64    `json:"inPipelineCount"`
	RecentTitles     []string `json:"recentTitles"` // Tiêu đề các tập gần nhất (tránh đề xuất trùng)
	TopTags          []string `json:"topTags"`
}

// AnalyticsService tính snapshot từ dữ liệu submission đã lưu
type AnalyticsService struct {
	submissionCollection *mongo.Collection
}

// NewAnalyticsService tạo mới AnalyticsService
func NewAnalyticsService() (*AnalyticsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Submissions)
	if !exist {
		return nil, fmt.Errorf("failed to get submissions collection: %v", common.ErrNotFound)
	}
	return &AnalyticsService{submissionCollection: collection}, nil
}

// Snapshot tính số liệu nội dung hiện tại của một khách hàng
func (s *AnalyticsService) Snapshot(ctx context.Context, clientID primitive.ObjectID) (AnalyticsSnapshot, error) {
	var snapshot AnalyticsSnapshot

	total, err := s.submissionCollection.CountDocuments(ctx, bson.M{"ownerClientId": clientID})
	if err != nil {
		return snapshot, common.ConvertMongoError(err)
	}
	published, err := s.submissionCollection.CountDocuments(ctx, bson.M{
		"ownerClientId": clientID,
		"status":        contentmodels.SubmissionStatusPublished,
	})
	if err != nil {
		return snapshot, common.ConvertMongoError(err)
	}

	snapshot.TotalSubmissions = total
	snapshot.PublishedCount = published
	snapshot.InPipelineCount = total - published

	// 10 tiêu đề gần nhất
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(10).
		SetProjection(bson.M{"title": 1, "tags": 1})
	cursor, err := s.submissionCollection.Find(ctx, bson.M{"ownerClientId": clientID}, opts)
	if err != nil {
		return snapshot, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	tagCount := make(map[string]int)
	for cursor.Next(ctx) {
		var doc struct {
			Title string   `bson:"title"`
			Tags  []string `bson:"tags"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		if doc.Title != "" {
			snapshot.RecentTitles = append(snapshot.RecentTitles, doc.Title)
		}
		for _, tag := range doc.Tags {
			tagCount[tag]++
		}
	}

	for tag, count := range tagCount {
		if count >= 2 {
			snapshot.TopTags = append(snapshot.TopTags, tag)
		}
	}

	return snapshot, nil
}
