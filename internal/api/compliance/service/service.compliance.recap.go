// Package compliancesvc - Recap Assembler, entry point duy nhất của engine
// (xem service.compliance.go cho package doc).
package compliancesvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	compliancemodels "social_compliance/internal/api/compliance/models"
	"social_compliance/internal/common"
	"social_compliance/internal/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ComputeComplianceRecap là operation duy nhất engine expose: resolve chu kỳ,
// load snapshot danh bạ + bài đăng, phân loại, gom nhóm, xếp hạng và lắp Recap.
//
// scope là clientId của một org-unit hoặc cả directorate. Với scope directorate,
// nhân sự trực thuộc directorate được tổng hợp như một đơn vị bình thường nhưng
// luôn ghim đầu mọi danh sách có thứ tự.
//
// Lỗi fetch engagement từng bài KHÔNG fatal (ghi vào FailedPosts); lỗi danh bạ,
// bài đăng hoặc chu kỳ không hợp lệ thì abort, không trả kết quả một phần.
func (s *ComplianceService) ComputeComplianceRecap(ctx context.Context, scope string, period PeriodRequest, policy PlatformPolicy) (*compliancemodels.Recap, error) {
	started := time.Now()
	recapID := uuid.NewString()
	ctx = context.WithValue(ctx, logger.RecapIDKey, recapID)

	window, err := s.ResolvePeriod(period, s.now())
	if err != nil {
		return nil, err
	}

	scopeClient, err := s.dir.GetClient(ctx, scope)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("đơn vị %s không tồn tại trong danh bạ: %w", scope, common.ErrUnitNotFound)
		}
		return nil, err
	}

	// Danh sách đơn vị cần tổng hợp. Directorate tính cả chính nó
	// (nhân sự trực thuộc) lẫn các org-unit con.
	units := []compliancemodels.Client{*scopeClient}
	if scopeClient.ClientType == compliancemodels.ClientTypeDirectorate {
		children, err := s.dir.ListOrgUnits(ctx, scopeClient.ClientID)
		if err != nil {
			return nil, err
		}
		units = append(units, children...)
	}

	// Bảng cấp bậc chỉ ảnh hưởng thứ tự hiển thị; lỗi load không chặn tổng hợp.
	rankTable, err := s.dir.GetActiveRankTable(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Không load được bảng cấp bậc, sắp xếp chỉ theo tên")
		rankTable = nil
	}
	order := newRankOrder(rankTable)
	coll := newCollator()

	// Roster load một lần cho mỗi đơn vị, dùng chung cho cả hai platform.
	rosters := make(map[string][]compliancemodels.User, len(units))
	for _, u := range units {
		persons, err := s.dir.ListPersons(ctx, u.ClientID)
		if err != nil {
			return nil, err
		}
		rosters[u.ClientID] = persons
	}

	recap := &compliancemodels.Recap{
		RecapID:     recapID,
		Scope:       scopeClient.ClientID,
		ScopeType:   scopeClient.ClientType,
		PeriodLabel: window.Label,
		Window:      window,
		Units:       make(map[compliancemodels.Platform][]compliancemodels.UnitRecap),
		Totals:      make(map[compliancemodels.Platform]compliancemodels.UnitTotals),
		FailedPosts: make(map[compliancemodels.Platform][]string),
	}

	for _, platform := range policy.Resolve() {
		posts, err := s.dir.ListRequiredPosts(ctx, scopeClient.ClientID, platform, window)
		if err != nil {
			return nil, err
		}
		sets, failedPosts := s.BuildEngagementSets(ctx, platform, posts)
		if len(failedPosts) > 0 {
			recap.FailedPosts[platform] = failedPosts
		}
		logger.WithContext(ctx).WithFields(logrus.Fields{
			"platform": platform,
			"posts":    len(posts),
			"failed":   len(failedPosts),
		}).Debug("Bắt đầu phân loại theo platform")

		unitRecaps := make([]compliancemodels.UnitRecap, 0, len(units))
		var totals compliancemodels.UnitTotals
		for _, u := range units {
			roster := rosters[u.ClientID]
			records := make([]compliancemodels.ComplianceRecord, 0, len(roster))
			for _, person := range roster {
				records = append(records, Classify(person, platform, sets))
			}
			ur := s.AggregateUnit(u, platform, records, order, coll)
			if scopeClient.ClientType == compliancemodels.ClientTypeDirectorate && u.ClientID == scopeClient.ClientID {
				ur.IsHome = true
			}
			totals.Add(ur.Totals)
			unitRecaps = append(unitRecaps, ur)
		}
		recap.Units[platform] = unitRecaps
		recap.Totals[platform] = totals
	}

	recap.Ranking = s.BuildRanking(
		recap.Units[compliancemodels.PlatformInstagram],
		recap.Units[compliancemodels.PlatformTiktok],
		coll,
	)

	// Units per platform sắp theo đúng thứ tự bảng xếp hạng để renderer
	// đọc tuần tự, không tự suy lại thứ hạng.
	position := make(map[string]int, len(recap.Ranking))
	for _, e := range recap.Ranking {
		position[e.ClientID] = e.Position
	}
	for platform, list := range recap.Units {
		sortUnitsByPosition(list, position)
		recap.Units[platform] = list
	}

	recap.GeneratedAt = time.Now().UnixMilli()
	logger.GetPerformanceLogger().WithFields(logrus.Fields{
		"operation":   "compute_compliance_recap",
		"recap_id":    recapID,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("Đo thời gian tổng hợp recap")
	logger.WithContext(ctx).WithFields(logrus.Fields{
		"scope":        recap.Scope,
		"scope_type":   recap.ScopeType,
		"period":       recap.PeriodLabel,
		"units":        len(units),
		"failed_posts": recap.HasFailures(),
		"duration_ms":  time.Since(started).Milliseconds(),
	}).Info("Tổng hợp chấp hành tương tác hoàn tất")

	return recap, nil
}

// sortUnitsByPosition sắp danh sách UnitRecap theo thứ hạng đã tính.
// Đơn vị không có trong bảng xếp hạng (không xảy ra trong thực tế) xếp cuối.
func sortUnitsByPosition(list []compliancemodels.UnitRecap, position map[string]int) {
	sort.SliceStable(list, func(i, j int) bool {
		pi, ok := position[list[i].ClientID]
		if !ok {
			pi = len(position) + 1
		}
		pj, ok := position[list[j].ClientID]
		if !ok {
			pj = len(position) + 1
		}
		return pi < pj
	})
}
