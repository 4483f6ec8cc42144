// Package database - Index cho các collection chính (unique, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"creator_studio/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes tạo các index cần thiết cho các collection của hệ thống.
// Gọi một lần khi khởi động, sau khi đã đăng ký collections.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// users: email unique sparse
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: token — lookup xác thực mỗi request
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetName("user_token").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// channel_profiles: một profile cho mỗi client
	profiles := db.Collection(global.MongoDB_ColNames.ChannelProfiles)
	if _, err := profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerClientId", Value: 1}},
		Options: options.Index().SetName("channel_profile_client_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// platform_connections: (ownerClientId, platform) unique
	connections := db.Collection(global.MongoDB_ColNames.PlatformConnections)
	if _, err := connections.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerClientId", Value: 1},
			{Key: "platform", Value: 1},
		},
		Options: options.Index().SetName("platform_connection_client_platform_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// submissions: (ownerClientId, status) — kanban list theo cột
	submissions := db.Collection(global.MongoDB_ColNames.Submissions)
	if _, err := submissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerClientId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("submission_client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// assets: (submissionId, type) — lấy asset theo submission
	assets := db.Collection(global.MongoDB_ColNames.Assets)
	if _, err := assets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "submissionId", Value: 1},
			{Key: "type", Value: 1},
		},
		Options: options.Index().SetName("asset_submission_type").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// publishing_tasks: (status, scheduledAt) — sweep của scheduler
	publishing := db.Collection(global.MongoDB_ColNames.PublishingTasks)
	if _, err := publishing.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "scheduledAt", Value: 1},
		},
		Options: options.Index().SetName("publishing_task_status_scheduled"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// fvs_ideas: (ownerClientId, status)
	ideas := db.Collection(global.MongoDB_ColNames.FvsIdeas)
	if _, err := ideas.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerClientId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("fvs_idea_client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: (userId, createdAt desc) — list newest-first theo người nhận
	notifications := db.Collection(global.MongoDB_ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("notification_user_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// activity_logs: (ownerClientId, createdAt desc)
	activity := db.Collection(global.MongoDB_ColNames.ActivityLogs)
	if _, err := activity.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerClientId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("activity_log_client_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// isIndexExistsError kiểm tra lỗi index đã tồn tại (IndexOptionsConflict / IndexKeySpecsConflict)
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
