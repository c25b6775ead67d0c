// Package database - Index cho các collection danh bạ và bài viết
// (snapshot do hệ thống ingestion bên ngoài ghi, ở đây chỉ đọc).
package database

import (
	"context"
	"strings"

	"social_compliance/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDirectoryIndexes tạo index cho clients, users, posts và engagement collections.
// Gọi một lần trong init chain, sau khi đã register collections.
func CreateDirectoryIndexes(ctx context.Context, db *mongo.Database) error {
	// clients: clientId unique — tra cứu scope theo id
	clients := db.Collection(global.MongoDB_ColNames.Clients)
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "clientId", Value: 1}},
		Options: options.Index().SetName("client_id_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// clients: (parentDirectorate, clientType) — liệt kê đơn vị con của directorate
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "parentDirectorate", Value: 1},
			{Key: "clientType", Value: 1},
		},
		Options: options.Index().SetName("client_parent_type"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: userId unique
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("user_id_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: (clientId, isActive) — liệt kê nhân sự theo đơn vị
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "isActive", Value: 1},
		},
		Options: options.Index().SetName("user_client_active"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// insta_posts / tiktok_posts: (clientId, publishedAt) — lọc bài theo scope + chu kỳ
	for _, name := range []string{global.MongoDB_ColNames.InstaPosts, global.MongoDB_ColNames.TiktokPosts} {
		coll := db.Collection(name)
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "clientId", Value: 1},
				{Key: "publishedAt", Value: 1},
			},
			Options: options.Index().SetName("post_client_published"),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "postId", Value: 1}},
			Options: options.Index().SetName("post_id_unique").SetUnique(true),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// insta_likes / tiktok_comments: postId — tra engagement set của một bài
	for _, name := range []string{global.MongoDB_ColNames.InstaLikes, global.MongoDB_ColNames.TiktokComments} {
		coll := db.Collection(name)
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "postId", Value: 1}},
			Options: options.Index().SetName("engagement_post_id"),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	return nil
}

// isIndexExistsError kiểm tra lỗi index đã tồn tại (không coi là lỗi khi bootstrap lại)
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "IndexOptionsConflict")
}
