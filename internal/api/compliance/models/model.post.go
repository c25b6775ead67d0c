package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Platform là nền tảng mạng xã hội được kiểm tra tương tác.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTiktok    Platform = "tiktok"
)

// Post là một bài đăng chính thức trong kỳ báo cáo
// (lưu trong insta_posts hoặc tiktok_posts tùy platform).
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // MongoDB _id
	PostID      string             `json:"postId" bson:"postId"`              // Định danh bài đăng trên nền tảng (unique theo platform)
	ClientID    string             `json:"clientId" bson:"clientId"`          // Đơn vị sở hữu tài khoản đăng bài
	Caption     string             `json:"caption,omitempty" bson:"caption,omitempty"`
	PublishedAt int64              `json:"publishedAt" bson:"publishedAt"` // Unix milliseconds, thời điểm đăng
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`     // Unix seconds
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`     // Unix seconds
}

// PostEngagement là danh sách handle đã tương tác với một bài đăng
// (like Instagram trong insta_likes, comment TikTok trong tiktok_comments).
// Engine chỉ cần biết "ai đã tương tác", không cần nội dung comment.
type PostEngagement struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID    string             `json:"postId" bson:"postId"`       // Bài đăng tương ứng
	Usernames []string           `json:"usernames" bson:"usernames"` // Handle thô đã tương tác (chưa chuẩn hóa)
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"` // Unix seconds, lần crawl gần nhất
}
