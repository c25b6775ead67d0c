// Package models - User (nhân sự) thuộc domain Compliance.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User là một nhân sự trong danh bạ (lưu trong users).
// Danh bạ do directory service bên ngoài tạo/cập nhật; engine chỉ đọc snapshot.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`  // MongoDB _id
	UserID      string             `json:"userId" bson:"userId"`               // Định danh nhân sự (unique toàn hệ thống)
	Name        string             `json:"name" bson:"name"`                   // Tên hiển thị
	Rank        string             `json:"rank" bson:"rank"`                   // Nhãn cấp bậc (sắp xếp theo bảng thứ tự cấp bậc)
	Division    string             `json:"division" bson:"division"`           // Bộ phận trong đơn vị
	ClientID    string             `json:"clientId" bson:"clientId"`           // Đơn vị trực thuộc
	IsActive    bool               `json:"isActive" bson:"isActive"`           // Còn công tác
	Instagram   string             `json:"instagram,omitempty" bson:"instagram,omitempty"` // Handle Instagram (optional)
	Tiktok      string             `json:"tiktok,omitempty" bson:"tiktok,omitempty"`       // Handle TikTok (optional)
	IsException bool               `json:"isException" bson:"isException"`     // Miễn trừ kiểm tra tương tác (chính sách, không phải thiếu dữ liệu)
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`         // Unix seconds
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`         // Unix seconds
}

// HandleFor trả về handle thô của user theo platform (chưa chuẩn hóa).
func (u *User) HandleFor(platform Platform) string {
	switch platform {
	case PlatformInstagram:
		return u.Instagram
	case PlatformTiktok:
		return u.Tiktok
	default:
		return ""
	}
}
