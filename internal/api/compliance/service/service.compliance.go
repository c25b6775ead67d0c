// Package compliancesvc chứa engine tổng hợp mức độ chấp hành tương tác mạng xã hội.
// Engine thuần: đọc snapshot qua DirectorySource, trả về Recap, không tự lưu kết quả.
// File: service.compliance.go - giữ tên cấu trúc cũ (service.<domain>.<phần>.go).
package compliancesvc

import (
	"context"
	"fmt"
	"time"

	compliancemodels "social_compliance/internal/api/compliance/models"
	"social_compliance/internal/common"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DirectorySource là các capability engine tiêu thụ từ tầng dữ liệu bên ngoài.
// Mongo implementation nằm ở internal/api/directory; test dùng fake in-memory.
type DirectorySource interface {
	// GetClient lấy một đơn vị theo clientId. Trả về common.ErrNotFound nếu không tồn tại.
	GetClient(ctx context.Context, clientID string) (*compliancemodels.Client, error)

	// ListOrgUnits liệt kê các org-unit đang hoạt động thuộc một directorate.
	ListOrgUnits(ctx context.Context, directorateID string) ([]compliancemodels.Client, error)

	// ListPersons liệt kê nhân sự đang công tác của một đơn vị.
	ListPersons(ctx context.Context, clientID string) ([]compliancemodels.User, error)

	// ListRequiredPosts liệt kê bài đăng yêu cầu tương tác trong cửa sổ [window.Start, window.End].
	ListRequiredPosts(ctx context.Context, scopeID string, platform compliancemodels.Platform, window compliancemodels.PeriodWindow) ([]compliancemodels.Post, error)

	// FetchEngagedHandles lấy danh sách handle thô đã tương tác với một bài đăng.
	FetchEngagedHandles(ctx context.Context, platform compliancemodels.Platform, postID string) ([]string, error)

	// GetActiveRankTable lấy bảng thứ tự cấp bậc đang áp dụng.
	// Trả về nil (không phải lỗi) nếu chưa cấu hình bảng nào.
	GetActiveRankTable(ctx context.Context) (*compliancemodels.RankTable, error)
}

// PlatformPolicy xác định các platform cần kiểm tra trong một lần tổng hợp.
// Rỗng = kiểm tra cả Instagram và TikTok.
type PlatformPolicy struct {
	Platforms []compliancemodels.Platform
}

// Resolve trả về danh sách platform hiệu lực theo thứ tự cố định (IG trước TT).
func (p PlatformPolicy) Resolve() []compliancemodels.Platform {
	if len(p.Platforms) == 0 {
		return []compliancemodels.Platform{compliancemodels.PlatformInstagram, compliancemodels.PlatformTiktok}
	}
	out := make([]compliancemodels.Platform, 0, 2)
	for _, want := range []compliancemodels.Platform{compliancemodels.PlatformInstagram, compliancemodels.PlatformTiktok} {
		for _, got := range p.Platforms {
			if got == want {
				out = append(out, want)
				break
			}
		}
	}
	return out
}

// ComplianceService là engine tổng hợp chấp hành tương tác.
type ComplianceService struct {
	dir          DirectorySource
	loc          *time.Location   // Timezone cố định để cắt chu kỳ báo cáo
	fanoutLimit  int              // Số fetch engagement đồng thời tối đa
	homeClientID string           // Đơn vị "nhà" — luôn ghim đầu bảng xếp hạng
	now          func() time.Time // Thời điểm tham chiếu để resolve chu kỳ; test pin lại được
}

// NewComplianceService tạo mới ComplianceService.
// timezone mặc định Asia/Jakarta (UTC+7), fanoutLimit mặc định 5 nếu <= 0.
func NewComplianceService(dir DirectorySource, timezone string, fanoutLimit int, homeClientID string) (*ComplianceService, error) {
	if dir == nil {
		return nil, fmt.Errorf("directory source rỗng: %w", common.ErrInvalidInput)
	}
	if timezone == "" {
		timezone = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", timezone, err)
	}
	if fanoutLimit <= 0 {
		fanoutLimit = 5
	}
	return &ComplianceService{
		dir:          dir,
		loc:          loc,
		fanoutLimit:  fanoutLimit,
		homeClientID: homeClientID,
		now:          time.Now,
	}, nil
}

// newCollator tạo collator tiếng Indonesia cho so sánh tên, không phân biệt hoa thường.
// Tạo mới mỗi lần tổng hợp vì collate.Collator không an toàn khi dùng đồng thời.
func newCollator() *collate.Collator {
	return collate.New(language.Indonesian, collate.IgnoreCase)
}
