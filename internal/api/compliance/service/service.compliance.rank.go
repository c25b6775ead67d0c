// Package compliancesvc - thứ tự cấp bậc (xem service.compliance.go cho package doc).
package compliancesvc

import (
	"strings"

	compliancemodels "social_compliance/internal/api/compliance/models"
)

// rankOrder là bảng tra thứ tự ưu tiên cấp bậc, key đã case-fold một lần.
// Chính sách (khai báo một nơi duy nhất): cấp bậc không có trong bảng
// sắp SAU tất cả cấp bậc đã biết, không phải trước.
type rankOrder struct {
	priority map[string]int
	unknown  int // Thứ tự gán cho cấp bậc không nhận diện được
}

// newRankOrder dựng bảng tra từ RankTable. table = nil cho bảng rỗng:
// mọi cấp bậc đều "unknown" và chỉ còn tie-break theo tên.
func newRankOrder(table *compliancemodels.RankTable) *rankOrder {
	o := &rankOrder{priority: make(map[string]int)}
	if table != nil {
		for i, r := range table.Ranks {
			key := strings.ToLower(strings.TrimSpace(r))
			if key == "" {
				continue
			}
			if _, ok := o.priority[key]; !ok {
				o.priority[key] = i
			}
		}
	}
	o.unknown = len(o.priority)
	return o
}

// of trả về thứ tự ưu tiên của một nhãn cấp bậc (nhỏ = đứng trước).
func (o *rankOrder) of(rank string) int {
	if p, ok := o.priority[strings.ToLower(strings.TrimSpace(rank))]; ok {
		return p
	}
	return o.unknown
}
