// Package compliancesvc - Ranking/Scoring Engine (xem service.compliance.go cho package doc).
package compliancesvc

import (
	"sort"

	compliancemodels "social_compliance/internal/api/compliance/models"

	"golang.org/x/text/collate"
)

// BuildRanking tính bảng xếp hạng đơn vị từ UnitRecap hai platform.
// Score = (igPercent + ttPercent) / 2; đơn vị 0 nhân sự có percent 0.
//
// Thứ tự: đơn vị "nhà" ghim đầu (ordering override, không phải kết quả xếp hạng);
// sau đó score giảm dần, hòa thì igPercent giảm dần, ttPercent giảm dần,
// tổng nhân sự giảm dần, tên theo collation tăng dần, cuối cùng clientId tăng dần.
// Collation không phân biệt hoa thường nên hai đơn vị trùng tên vẫn cần khóa cuối
// theo clientId (unique) để chuỗi tie-break là thứ tự toàn phần chặt chẽ:
// hai lần chạy trên cùng snapshot cho cùng kết quả, bất kể thứ tự đầu vào.
func (s *ComplianceService) BuildRanking(igUnits, ttUnits []compliancemodels.UnitRecap, coll *collate.Collator) []compliancemodels.RankingEntry {
	type side struct {
		percent float64
		total   int
	}
	ig := make(map[string]side, len(igUnits))
	tt := make(map[string]side, len(ttUnits))

	entries := make([]compliancemodels.RankingEntry, 0, len(igUnits))
	seen := make(map[string]int) // clientId -> index trong entries

	upsert := func(u compliancemodels.UnitRecap) int {
		if i, ok := seen[u.ClientID]; ok {
			return i
		}
		entries = append(entries, compliancemodels.RankingEntry{
			ClientID: u.ClientID,
			Name:     u.Name,
			IsHome:   u.IsHome,
		})
		seen[u.ClientID] = len(entries) - 1
		return len(entries) - 1
	}
	for _, u := range igUnits {
		upsert(u)
		ig[u.ClientID] = side{percent: u.Totals.Percent(), total: u.Totals.Total}
	}
	for _, u := range ttUnits {
		upsert(u)
		tt[u.ClientID] = side{percent: u.Totals.Percent(), total: u.Totals.Total}
	}

	for i := range entries {
		id := entries[i].ClientID
		entries[i].IGPercent = ig[id].percent
		entries[i].TTPercent = tt[id].percent
		entries[i].Score = (entries[i].IGPercent + entries[i].TTPercent) / 2
		entries[i].Total = ig[id].total
		if tt[id].total > entries[i].Total {
			entries[i].Total = tt[id].total
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsHome != b.IsHome {
			return a.IsHome
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.IGPercent != b.IGPercent {
			return a.IGPercent > b.IGPercent
		}
		if a.TTPercent != b.TTPercent {
			return a.TTPercent > b.TTPercent
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if c := coll.CompareString(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.ClientID < b.ClientID
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}
