// Package compliancesvc - Period Resolver (xem service.compliance.go cho package doc).
package compliancesvc

import (
	"fmt"
	"time"

	compliancemodels "social_compliance/internal/api/compliance/models"
	"social_compliance/internal/common"
)

// Các token chu kỳ báo cáo được hỗ trợ.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// dateLayout là định dạng ngày của bound tường minh (from/to).
const dateLayout = "2006-01-02"

// PeriodRequest là yêu cầu resolve chu kỳ: token hoặc khoảng tường minh.
// From/To (nếu có) override token; chỉ một bound thì bound còn lại
// được suy ra để tạo cửa sổ trọn ngày.
type PeriodRequest struct {
	Token string // daily | weekly | monthly (mặc định daily khi rỗng và không có bound)
	From  string // YYYY-MM-DD, optional
	To    string // YYYY-MM-DD, optional
}

// ResolvePeriod chuyển PeriodRequest + thời điểm tham chiếu thành cửa sổ [Start, End]
// theo timezone cố định của service. End luôn là 23:59:59.999 của ngày cuối.
// Trả về common.ErrInvalidRange khi bound không parse được hoặc khoảng bị đảo ngược.
func (s *ComplianceService) ResolvePeriod(req PeriodRequest, ref time.Time) (compliancemodels.PeriodWindow, error) {
	ref = ref.In(s.loc)

	if req.From != "" || req.To != "" {
		return s.resolveExplicit(req.From, req.To)
	}

	token := req.Token
	if token == "" {
		token = PeriodDaily
	}
	switch token {
	case PeriodDaily:
		day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, s.loc)
		return windowOf(day, day, fmt.Sprintf("Ngày %s", day.Format("02/01/2006"))), nil
	case PeriodWeekly:
		// Tuần ISO, thứ Hai là ngày đầu: Chủ nhật là ngày CUỐI của tuần hiện tại.
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -(weekday - 1))
		sunday := monday.AddDate(0, 0, 6)
		label := fmt.Sprintf("Tuần %s - %s", monday.Format("02/01/2006"), sunday.Format("02/01/2006"))
		return windowOf(monday, sunday, label), nil
	case PeriodMonthly:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, s.loc)
		// Ngày cuối tháng = ngày 0 của tháng kế tiếp.
		last := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, s.loc)
		return windowOf(first, last, fmt.Sprintf("Tháng %s", first.Format("01/2006"))), nil
	default:
		return compliancemodels.PeriodWindow{}, fmt.Errorf("token chu kỳ %q không hợp lệ: %w", token, common.ErrInvalidRange)
	}
}

// resolveExplicit xử lý khoảng tường minh. Thiếu một bound thì lấy bound còn lại
// làm cả hai đầu (cửa sổ trọn một ngày).
func (s *ComplianceService) resolveExplicit(from, to string) (compliancemodels.PeriodWindow, error) {
	if from == "" {
		from = to
	}
	if to == "" {
		to = from
	}

	fromDay, err := time.ParseInLocation(dateLayout, from, s.loc)
	if err != nil {
		return compliancemodels.PeriodWindow{}, fmt.Errorf("parse from %q: %w", from, common.ErrInvalidRange)
	}
	toDay, err := time.ParseInLocation(dateLayout, to, s.loc)
	if err != nil {
		return compliancemodels.PeriodWindow{}, fmt.Errorf("parse to %q: %w", to, common.ErrInvalidRange)
	}
	if toDay.Before(fromDay) {
		return compliancemodels.PeriodWindow{}, fmt.Errorf("khoảng bị đảo ngược %s > %s: %w", from, to, common.ErrInvalidRange)
	}

	var label string
	if fromDay.Equal(toDay) {
		label = fmt.Sprintf("Ngày %s", fromDay.Format("02/01/2006"))
	} else {
		label = fmt.Sprintf("Từ %s đến %s", fromDay.Format("02/01/2006"), toDay.Format("02/01/2006"))
	}
	return windowOf(fromDay, toDay, label), nil
}

// windowOf tạo PeriodWindow từ ngày đầu và ngày cuối (cả hai 00:00:00 trong loc).
// End = cuối ngày cuối (23:59:59.999), tính theo đơn vị mili giây như collection bài đăng.
func windowOf(firstDay, lastDay time.Time, label string) compliancemodels.PeriodWindow {
	endSec := lastDay.AddDate(0, 0, 1).Unix() - 1
	return compliancemodels.PeriodWindow{
		Start: firstDay.Unix() * 1000,
		End:   endSec*1000 + 999, // Cuối ngày (23:59:59.999)
		Label: label,
	}
}
