package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RankTable là bảng thứ tự cấp bậc dùng chung cho mọi báo cáo
// (lưu trong rank_tables, một document duy nhất active tại một thời điểm).
// Chính sách: cấp bậc không có trong bảng sắp SAU tất cả cấp bậc đã biết.
type RankTable struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`           // Tên bảng, vd "default"
	Ranks     []string           `json:"ranks" bson:"ranks"`         // Cấp bậc theo thứ tự ưu tiên giảm dần
	IsActive  bool               `json:"isActive" bson:"isActive"`   // Bảng đang áp dụng
	CreatedAt int64              `json:"createdAt" bson:"createdAt"` // Unix seconds
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"` // Unix seconds
}
