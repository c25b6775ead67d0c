// Package compliancesvc - Test aggregator đơn vị và bảng thứ tự cấp bậc.
package compliancesvc

import (
	"testing"

	compliancemodels "social_compliance/internal/api/compliance/models"
)

func TestNewRankOrder(t *testing.T) {
	table := &compliancemodels.RankTable{
		Ranks: []string{"AKBP", "  Kompol  ", "AKP", "", "akbp"}, // Trùng lặp lấy lần đầu
	}
	order := newRankOrder(table)

	if got := order.of("akbp"); got != 0 {
		t.Errorf("akbp phải có thứ tự 0, nhận %d", got)
	}
	if got := order.of("KOMPOL"); got != 1 {
		t.Errorf("Tra cứu phải case-fold, nhận %d", got)
	}
	// Cấp bậc lạ sắp SAU tất cả cấp bậc đã biết
	if got := order.of("BRIPDA"); got != 3 {
		t.Errorf("Cấp bậc lạ phải nhận thứ tự unknown = 3, nhận %d", got)
	}
}

func TestNewRankOrder_BangNil(t *testing.T) {
	order := newRankOrder(nil)
	if order.of("AKBP") != order.of("BRIPDA") {
		t.Error("Bảng nil thì mọi cấp bậc phải cùng thứ tự unknown")
	}
}

func TestAggregateUnit(t *testing.T) {
	dir := &fakeDirectory{}
	svc := newTestService(t, dir)
	client := compliancemodels.Client{ClientID: "unit-1", Name: "Satker Satu"}
	order := newRankOrder(&compliancemodels.RankTable{Ranks: []string{"AKBP", "AKP", "BRIPDA"}})
	coll := newCollator()

	records := []compliancemodels.ComplianceRecord{
		{UserID: "a", Name: "Citra", Rank: "BRIPDA", Division: "Subbag Renmin", Status: compliancemodels.StatusComplete},
		{UserID: "b", Name: "Andi", Rank: "AKP", Division: "subbag renmin", Status: compliancemodels.StatusPartial},
		{UserID: "c", Name: "Budi", Rank: "AKBP", Division: "Bagian Ops", Status: compliancemodels.StatusNone},
		{UserID: "d", Name: "Dewi", Rank: "SERSAN", Division: "Bagian Ops", Status: compliancemodels.StatusNoHandle},
		{UserID: "e", Name: "Eka", Rank: "AKP", Division: "Bagian Ops", Status: compliancemodels.StatusComplete, IsExcepted: true},
	}
	recap := svc.AggregateUnit(client, compliancemodels.PlatformInstagram, records, order, coll)

	if recap.Totals.Total != 5 || recap.Totals.Completed != 2 || recap.Totals.Partial != 1 ||
		recap.Totals.None != 1 || recap.Totals.NoHandle != 1 || recap.Totals.Excepted != 1 {
		t.Errorf("Totals sai: %+v", recap.Totals)
	}

	// "Subbag Renmin" và "subbag renmin" phải gộp về một bộ phận
	if len(recap.Divisions) != 2 {
		t.Fatalf("Mong đợi 2 bộ phận, nhận %d", len(recap.Divisions))
	}
	// Bộ phận sắp theo collation: Bagian Ops trước Subbag Renmin
	if recap.Divisions[0].Division != "Bagian Ops" || recap.Divisions[1].Division != "Subbag Renmin" {
		t.Errorf("Thứ tự bộ phận sai: %s, %s", recap.Divisions[0].Division, recap.Divisions[1].Division)
	}

	// Trong bộ phận: cấp bậc trước (AKBP < AKP), cấp bậc lạ (SERSAN) cuối cùng
	ops := recap.Divisions[0].Records
	if ops[0].UserID != "c" || ops[1].UserID != "e" || ops[2].UserID != "d" {
		t.Errorf("Thứ tự trong Bagian Ops sai: %s, %s, %s", ops[0].UserID, ops[1].UserID, ops[2].UserID)
	}
	renmin := recap.Divisions[1].Records
	if renmin[0].UserID != "b" || renmin[1].UserID != "a" {
		t.Errorf("Thứ tự trong Subbag Renmin sai: %s, %s", renmin[0].UserID, renmin[1].UserID)
	}

	// 2 complete / 5 tổng
	if recap.Percent != 0.4 {
		t.Errorf("Percent = %v, mong đợi 0.4", recap.Percent)
	}
}

func TestAggregateUnit_DonViNha(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{}) // homeClientID = "dit-home"
	order := newRankOrder(nil)
	coll := newCollator()

	home := svc.AggregateUnit(compliancemodels.Client{ClientID: "dit-home"}, compliancemodels.PlatformInstagram, nil, order, coll)
	if !home.IsHome {
		t.Error("Đơn vị trùng HomeClientID phải có IsHome = true")
	}
	other := svc.AggregateUnit(compliancemodels.Client{ClientID: "unit-1"}, compliancemodels.PlatformInstagram, nil, order, coll)
	if other.IsHome {
		t.Error("Đơn vị khác không được có IsHome = true")
	}
}

func TestAggregateUnit_RosterRong(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	recap := svc.AggregateUnit(compliancemodels.Client{ClientID: "unit-1"}, compliancemodels.PlatformInstagram, nil, newRankOrder(nil), newCollator())
	if recap.Totals.Total != 0 {
		t.Errorf("Roster rỗng phải có total 0, nhận %d", recap.Totals.Total)
	}
	if recap.Percent != 0 {
		t.Errorf("Đơn vị 0 nhân sự phải có percent 0, nhận %v", recap.Percent)
	}
}
