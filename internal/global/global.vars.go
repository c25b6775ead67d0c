package global

import (
	"social_compliance/config"
	"social_compliance/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB.
// Toàn bộ dữ liệu nguồn là snapshot do các hệ thống bên ngoài ghi
// (danh bạ nhân sự, ingestion bài viết/engagement); service này chỉ đọc.
type MongoDB_CollectionName struct {
	Clients        string // Tên collection cho đơn vị (directorate / org-unit)
	Users          string // Tên collection cho nhân sự
	InstaPosts     string // Tên collection cho bài viết Instagram cần tương tác
	TiktokPosts    string // Tên collection cho video TikTok cần tương tác
	InstaLikes     string // Tên collection cho danh sách tài khoản đã like theo bài
	TiktokComments string // Tên collection cho danh sách tài khoản đã comment theo video
	RankTables     string // Tên collection cho bảng thứ tự cấp bậc
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
