// Package directorysvc đọc snapshot danh bạ và dữ liệu ingestion từ MongoDB,
// cung cấp các capability mà engine compliance tiêu thụ (DirectorySource).
// Toàn bộ collection là read-only với service này; hệ thống bên ngoài ghi.
// File: service.directory.go - giữ tên cấu trúc cũ (service.<domain>.go).
package directorysvc

import (
	"context"
	"fmt"

	compliancemodels "social_compliance/internal/api/compliance/models"
	"social_compliance/internal/common"
	"social_compliance/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DirectoryService là implementation MongoDB của compliancesvc.DirectorySource.
type DirectoryService struct {
	clientColl        *mongo.Collection
	userColl          *mongo.Collection
	instaPostColl     *mongo.Collection
	tiktokPostColl    *mongo.Collection
	instaLikeColl     *mongo.Collection
	tiktokCommentColl *mongo.Collection
	rankTableColl     *mongo.Collection
}

// NewDirectoryService tạo mới DirectoryService từ registry collections.
func NewDirectoryService() (*DirectoryService, error) {
	names := []string{
		global.MongoDB_ColNames.Clients,
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.InstaPosts,
		global.MongoDB_ColNames.TiktokPosts,
		global.MongoDB_ColNames.InstaLikes,
		global.MongoDB_ColNames.TiktokComments,
		global.MongoDB_ColNames.RankTables,
	}
	colls := make([]*mongo.Collection, len(names))
	for i, name := range names {
		coll, ok := global.RegistryCollections.Get(name)
		if !ok {
			return nil, fmt.Errorf("không tìm thấy collection %s: %w", name, common.ErrNotFound)
		}
		colls[i] = coll
	}
	return &DirectoryService{
		clientColl:        colls[0],
		userColl:          colls[1],
		instaPostColl:     colls[2],
		tiktokPostColl:    colls[3],
		instaLikeColl:     colls[4],
		tiktokCommentColl: colls[5],
		rankTableColl:     colls[6],
	}, nil
}

// GetClient lấy một đơn vị theo clientId.
func (s *DirectoryService) GetClient(ctx context.Context, clientID string) (*compliancemodels.Client, error) {
	var client compliancemodels.Client
	err := s.clientColl.FindOne(ctx, bson.M{"clientId": clientID}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &client, nil
}

// ListOrgUnits liệt kê org-unit đang hoạt động thuộc một directorate,
// sắp theo clientId để kết quả ổn định giữa các lần gọi.
func (s *DirectoryService) ListOrgUnits(ctx context.Context, directorateID string) ([]compliancemodels.Client, error) {
	filter := bson.M{
		"parentDirectorate": directorateID,
		"clientType":        compliancemodels.ClientTypeOrgUnit,
		"isActive":          true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "clientId", Value: 1}})
	cursor, err := s.clientColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var list []compliancemodels.Client
	if err := cursor.All(ctx, &list); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if list == nil {
		list = []compliancemodels.Client{}
	}
	return list, nil
}

// ListPersons liệt kê nhân sự đang công tác của một đơn vị.
func (s *DirectoryService) ListPersons(ctx context.Context, clientID string) ([]compliancemodels.User, error) {
	filter := bson.M{"clientId": clientID, "isActive": true}
	opts := options.Find().SetSort(bson.D{{Key: "userId", Value: 1}})
	cursor, err := s.userColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var list []compliancemodels.User
	if err := cursor.All(ctx, &list); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if list == nil {
		list = []compliancemodels.User{}
	}
	return list, nil
}

// ListRequiredPosts liệt kê bài đăng trong cửa sổ báo cáo, sắp theo thời điểm đăng.
// Thứ tự trả về là thứ tự index mà engine dùng để align engagement sets.
func (s *DirectoryService) ListRequiredPosts(ctx context.Context, scopeID string, platform compliancemodels.Platform, window compliancemodels.PeriodWindow) ([]compliancemodels.Post, error) {
	coll, err := s.postCollFor(platform)
	if err != nil {
		return nil, err
	}
	filter := bson.M{
		"clientId":    scopeID,
		"publishedAt": bson.M{"$gte": window.Start, "$lte": window.End},
	}
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: 1}, {Key: "postId", Value: 1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var list []compliancemodels.Post
	if err := cursor.All(ctx, &list); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if list == nil {
		list = []compliancemodels.Post{}
	}
	return list, nil
}

// FetchEngagedHandles lấy danh sách handle thô đã tương tác với một bài đăng.
// Bài chưa được crawl (không có document engagement) trả về danh sách rỗng,
// không phải lỗi — engine phân biệt "chưa ai tương tác" với "fetch hỏng".
func (s *DirectoryService) FetchEngagedHandles(ctx context.Context, platform compliancemodels.Platform, postID string) ([]string, error) {
	coll, err := s.engagementCollFor(platform)
	if err != nil {
		return nil, err
	}
	var doc compliancemodels.PostEngagement
	err = coll.FindOne(ctx, bson.M{"postId": postID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []string{}, nil
		}
		return nil, common.ConvertMongoError(err)
	}
	return doc.Usernames, nil
}

// GetActiveRankTable lấy bảng cấp bậc đang áp dụng; nil nếu chưa cấu hình.
func (s *DirectoryService) GetActiveRankTable(ctx context.Context) (*compliancemodels.RankTable, error) {
	var table compliancemodels.RankTable
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	err := s.rankTableColl.FindOne(ctx, bson.M{"isActive": true}, opts).Decode(&table)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, common.ConvertMongoError(err)
	}
	return &table, nil
}

// postCollFor chọn collection bài đăng theo platform.
func (s *DirectoryService) postCollFor(platform compliancemodels.Platform) (*mongo.Collection, error) {
	switch platform {
	case compliancemodels.PlatformInstagram:
		return s.instaPostColl, nil
	case compliancemodels.PlatformTiktok:
		return s.tiktokPostColl, nil
	default:
		return nil, fmt.Errorf("platform %q không được hỗ trợ: %w", platform, common.ErrInvalidInput)
	}
}

// engagementCollFor chọn collection engagement theo platform
// (like cho Instagram, comment cho TikTok).
func (s *DirectoryService) engagementCollFor(platform compliancemodels.Platform) (*mongo.Collection, error) {
	switch platform {
	case compliancemodels.PlatformInstagram:
		return s.instaLikeColl, nil
	case compliancemodels.PlatformTiktok:
		return s.tiktokCommentColl, nil
	default:
		return nil, fmt.Errorf("platform %q không được hỗ trợ: %w", platform, common.ErrInvalidInput)
	}
}
