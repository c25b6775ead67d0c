// Package compliancesvc - Test resolve chu kỳ báo cáo theo UTC+7.
package compliancesvc

import (
	"errors"
	"testing"
	"time"

	compliancemodels "social_compliance/internal/api/compliance/models"
	"social_compliance/internal/common"
)

// msOf trả về mốc mili giây của một thời điểm trong timezone của service.
func msOf(t *testing.T, svc *ComplianceService, year int, month time.Month, day, hour, min, sec, msec int) int64 {
	t.Helper()
	return time.Date(year, month, day, hour, min, sec, msec*int(time.Millisecond), svc.loc).UnixMilli()
}

func TestResolvePeriod_Daily(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	ref := time.Date(2026, 1, 15, 14, 30, 0, 0, svc.loc)

	w, err := svc.ResolvePeriod(PeriodRequest{Token: PeriodDaily}, ref)
	if err != nil {
		t.Fatalf("ResolvePeriod lỗi: %v", err)
	}
	if w.Start != msOf(t, svc, 2026, 1, 15, 0, 0, 0, 0) {
		t.Errorf("Start sai: %d", w.Start)
	}
	if w.End != msOf(t, svc, 2026, 1, 15, 23, 59, 59, 999) {
		t.Errorf("End phải là 23:59:59.999, nhận %d", w.End)
	}
}

// Token rỗng và không có bound tường minh — mặc định daily.
func TestResolvePeriod_MacDinhDaily(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	ref := time.Date(2026, 1, 15, 8, 0, 0, 0, svc.loc)

	w, err := svc.ResolvePeriod(PeriodRequest{}, ref)
	if err != nil {
		t.Fatalf("ResolvePeriod lỗi: %v", err)
	}
	daily, _ := svc.ResolvePeriod(PeriodRequest{Token: PeriodDaily}, ref)
	if w != daily {
		t.Errorf("Token rỗng phải cho cùng cửa sổ với daily: %+v != %+v", w, daily)
	}
}

// Mọi thời điểm tham chiếu trong cùng một tuần ISO phải cho cùng một cửa sổ,
// kể cả Chủ nhật (cuối tuần, không phải đầu tuần mới).
func TestResolvePeriod_WeeklyOnDinhTrongTuan(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	// Tuần 12/01/2026 (thứ Hai) - 18/01/2026 (Chủ nhật)
	wantStart := msOf(t, svc, 2026, 1, 12, 0, 0, 0, 0)
	wantEnd := msOf(t, svc, 2026, 1, 18, 23, 59, 59, 999)

	for day := 12; day <= 18; day++ {
		ref := time.Date(2026, 1, day, 10, 0, 0, 0, svc.loc)
		w, err := svc.ResolvePeriod(PeriodRequest{Token: PeriodWeekly}, ref)
		if err != nil {
			t.Fatalf("ResolvePeriod ngày %d lỗi: %v", day, err)
		}
		if w.Start != wantStart || w.End != wantEnd {
			t.Errorf("Ngày %d/01: cửa sổ [%d, %d], mong đợi [%d, %d]",
				day, w.Start, w.End, wantStart, wantEnd)
		}
	}
}

func TestResolvePeriod_MonthlyThangDu(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	// 2024 là năm nhuận — tháng Hai kết thúc ngày 29
	ref := time.Date(2024, 2, 10, 12, 0, 0, 0, svc.loc)

	w, err := svc.ResolvePeriod(PeriodRequest{Token: PeriodMonthly}, ref)
	if err != nil {
		t.Fatalf("ResolvePeriod lỗi: %v", err)
	}
	if w.Start != msOf(t, svc, 2024, 2, 1, 0, 0, 0, 0) {
		t.Errorf("Start sai: %d", w.Start)
	}
	if w.End != msOf(t, svc, 2024, 2, 29, 23, 59, 59, 999) {
		t.Errorf("Năm nhuận tháng Hai phải kết thúc 29/02 23:59:59.999, nhận %d", w.End)
	}
}

func TestResolvePeriod_MonthlyThangMuoiHai(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	ref := time.Date(2026, 12, 25, 0, 0, 0, 0, svc.loc)

	w, err := svc.ResolvePeriod(PeriodRequest{Token: PeriodMonthly}, ref)
	if err != nil {
		t.Fatalf("ResolvePeriod lỗi: %v", err)
	}
	if w.End != msOf(t, svc, 2026, 12, 31, 23, 59, 59, 999) {
		t.Errorf("Tháng 12 phải kết thúc 31/12, nhận %d", w.End)
	}
}

// Khoảng tường minh override token; thiếu một bound thì thành cửa sổ trọn một ngày.
func TestResolvePeriod_BoundTuongMinh(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	ref := time.Now()

	w, err := svc.ResolvePeriod(PeriodRequest{Token: PeriodMonthly, From: "2026-03-02", To: "2026-03-08"}, ref)
	if err != nil {
		t.Fatalf("ResolvePeriod lỗi: %v", err)
	}
	if w.Start != msOf(t, svc, 2026, 3, 2, 0, 0, 0, 0) || w.End != msOf(t, svc, 2026, 3, 8, 23, 59, 59, 999) {
		t.Errorf("Bound tường minh phải override token: %+v", w)
	}

	// Chỉ có From
	w, err = svc.ResolvePeriod(PeriodRequest{From: "2026-03-02"}, ref)
	if err != nil {
		t.Fatalf("ResolvePeriod một bound lỗi: %v", err)
	}
	if w.Start != msOf(t, svc, 2026, 3, 2, 0, 0, 0, 0) || w.End != msOf(t, svc, 2026, 3, 2, 23, 59, 59, 999) {
		t.Errorf("Một bound phải thành cửa sổ trọn ngày: %+v", w)
	}

	// Chỉ có To
	w, err = svc.ResolvePeriod(PeriodRequest{To: "2026-03-08"}, ref)
	if err != nil {
		t.Fatalf("ResolvePeriod một bound lỗi: %v", err)
	}
	if w.Start != msOf(t, svc, 2026, 3, 8, 0, 0, 0, 0) || w.End != msOf(t, svc, 2026, 3, 8, 23, 59, 59, 999) {
		t.Errorf("Một bound phải thành cửa sổ trọn ngày: %+v", w)
	}
}

func TestResolvePeriod_LoiDauVao(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	ref := time.Now()

	cases := []struct {
		name string
		req  PeriodRequest
	}{
		{"khoảng đảo ngược", PeriodRequest{From: "2026-02-10", To: "2026-02-01"}},
		{"ngày không parse được", PeriodRequest{From: "10-02-2026"}},
		{"token lạ", PeriodRequest{Token: "quarterly"}},
	}
	for _, tc := range cases {
		_, err := svc.ResolvePeriod(tc.req, ref)
		if !errors.Is(err, common.ErrInvalidRange) {
			t.Errorf("%s: mong đợi ErrInvalidRange, nhận %v", tc.name, err)
		}
	}
}

// Cửa sổ phải liên tục: End của ngày hôm trước + 1ms = Start của ngày hôm sau.
func TestResolvePeriod_CuaSoLienTuc(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})

	day1, err := svc.ResolvePeriod(PeriodRequest{From: "2026-05-10", To: "2026-05-10"}, time.Now())
	if err != nil {
		t.Fatalf("ResolvePeriod lỗi: %v", err)
	}
	day2, err := svc.ResolvePeriod(PeriodRequest{From: "2026-05-11", To: "2026-05-11"}, time.Now())
	if err != nil {
		t.Fatalf("ResolvePeriod lỗi: %v", err)
	}
	if day1.End+1 != day2.Start {
		t.Errorf("Cửa sổ không liên tục: %d + 1 != %d", day1.End, day2.Start)
	}
	var w compliancemodels.PeriodWindow = day1
	if w.End-w.Start != 24*60*60*1000-1 {
		t.Errorf("Cửa sổ một ngày phải dài 86399999ms, nhận %d", w.End-w.Start)
	}
}
