// Package compliancesvc - Hierarchical Aggregator (xem service.compliance.go cho package doc).
package compliancesvc

import (
	"sort"
	"strings"

	compliancemodels "social_compliance/internal/api/compliance/models"

	"golang.org/x/text/collate"
)

// AggregateUnit gom các ComplianceRecord của MỘT đơn vị thành UnitRecap:
// nhóm theo bộ phận, trong bộ phận sắp theo cấp bậc rồi tên (collation Indonesia),
// và cộng totals. Key bộ phận được case-fold MỘT lần tại đây; tên hiển thị
// giữ nguyên bản gặp đầu tiên.
func (s *ComplianceService) AggregateUnit(client compliancemodels.Client, platform compliancemodels.Platform, records []compliancemodels.ComplianceRecord, order *rankOrder, coll *collate.Collator) compliancemodels.UnitRecap {
	recap := compliancemodels.UnitRecap{
		ClientID: client.ClientID,
		Name:     client.Name,
		Platform: platform,
		IsHome:   client.ClientID == s.homeClientID,
	}

	byDivision := make(map[string][]compliancemodels.ComplianceRecord)
	displayName := make(map[string]string)
	for _, r := range records {
		key := strings.ToLower(strings.TrimSpace(r.Division))
		if _, ok := displayName[key]; !ok {
			displayName[key] = strings.TrimSpace(r.Division)
		}
		byDivision[key] = append(byDivision[key], r)

		recap.Totals.Total++
		switch r.Status {
		case compliancemodels.StatusComplete:
			recap.Totals.Completed++
			if r.IsExcepted {
				recap.Totals.Excepted++
			}
		case compliancemodels.StatusPartial:
			recap.Totals.Partial++
		case compliancemodels.StatusNone:
			recap.Totals.None++
		case compliancemodels.StatusNoHandle:
			recap.Totals.NoHandle++
		}
	}

	keys := make([]string, 0, len(byDivision))
	for k := range byDivision {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return coll.CompareString(displayName[keys[i]], displayName[keys[j]]) < 0
	})

	recap.Divisions = make([]compliancemodels.DivisionGroup, 0, len(keys))
	for _, k := range keys {
		list := byDivision[k]
		sort.SliceStable(list, func(i, j int) bool {
			pi, pj := order.of(list[i].Rank), order.of(list[j].Rank)
			if pi != pj {
				return pi < pj
			}
			return coll.CompareString(list[i].Name, list[j].Name) < 0
		})
		recap.Divisions = append(recap.Divisions, compliancemodels.DivisionGroup{
			Division: displayName[k],
			Records:  list,
		})
	}

	recap.Percent = recap.Totals.Percent()
	return recap
}
