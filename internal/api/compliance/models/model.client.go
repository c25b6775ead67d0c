// Package models chứa các model thuộc domain Compliance.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Loại đơn vị trong cây tổ chức
const (
	ClientTypeDirectorate = "directorate" // Directorate: scope cấp cao nhất, chứa nhiều org-unit
	ClientTypeOrgUnit     = "org-unit"    // Org-unit (satker): đơn vị trực thuộc với roster nhân sự riêng
)

// Client là một đơn vị tổ chức (lưu trong clients).
// Invariant: một org-unit thuộc đúng một directorate trong một báo cáo;
// directorate không bao giờ là con của chính nó.
type Client struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // MongoDB _id
	ClientID          string             `json:"clientId" bson:"clientId"`          // Định danh đơn vị (slug, unique)
	Name              string             `json:"name" bson:"name"`                  // Tên hiển thị
	ClientType        string             `json:"clientType" bson:"clientType"`      // directorate | org-unit
	ParentDirectorate string             `json:"parentDirectorate,omitempty" bson:"parentDirectorate,omitempty"` // ClientID của directorate cha (rỗng với directorate)
	IsActive          bool               `json:"isActive" bson:"isActive"`          // Đơn vị còn hoạt động
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`        // Unix seconds
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`        // Unix seconds
}
