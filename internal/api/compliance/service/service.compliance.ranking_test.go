// Package compliancesvc - Test bảng xếp hạng đơn vị.
package compliancesvc

import (
	"testing"

	compliancemodels "social_compliance/internal/api/compliance/models"
)

// unitWith tạo UnitRecap tối thiểu với tỷ lệ completed/total cho trước.
func unitWith(clientID, name string, completed, total int, isHome bool) compliancemodels.UnitRecap {
	return compliancemodels.UnitRecap{
		ClientID: clientID,
		Name:     name,
		IsHome:   isHome,
		Totals:   compliancemodels.UnitTotals{Total: total, Completed: completed},
	}
}

func TestBuildRanking_ScoreVaViTri(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	coll := newCollator()

	ig := []compliancemodels.UnitRecap{
		unitWith("u1", "Satker Satu", 5, 10, false), // ig 0.5
		unitWith("u2", "Satker Dua", 8, 10, false),  // ig 0.8
	}
	tt := []compliancemodels.UnitRecap{
		unitWith("u1", "Satker Satu", 9, 10, false), // tt 0.9 -> score 0.7
		unitWith("u2", "Satker Dua", 2, 10, false),  // tt 0.2 -> score 0.5
	}
	entries := svc.BuildRanking(ig, tt, coll)

	if len(entries) != 2 {
		t.Fatalf("Mong đợi 2 dòng, nhận %d", len(entries))
	}
	if entries[0].ClientID != "u1" || entries[0].Score != 0.7 {
		t.Errorf("Dòng đầu sai: %+v", entries[0])
	}
	if entries[0].Position != 1 || entries[1].Position != 2 {
		t.Errorf("Position phải 1-based liên tục: %d, %d", entries[0].Position, entries[1].Position)
	}
	if entries[0].IGPercent != 0.5 || entries[0].TTPercent != 0.9 {
		t.Errorf("Percent từng platform sai: %+v", entries[0])
	}
}

// Đơn vị "nhà" ghim đầu bất kể score thấp hơn.
func TestBuildRanking_GhimDonViNha(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	coll := newCollator()

	ig := []compliancemodels.UnitRecap{
		unitWith("dit-home", "Direktorat", 0, 10, true),
		unitWith("u1", "Satker Satu", 10, 10, false),
	}
	entries := svc.BuildRanking(ig, nil, coll)
	if entries[0].ClientID != "dit-home" {
		t.Errorf("Đơn vị nhà phải đứng đầu, nhận %s", entries[0].ClientID)
	}
	if !entries[0].IsHome {
		t.Error("Dòng đầu phải giữ cờ IsHome")
	}
}

// Chuỗi tie-break: score bằng -> igPercent, rồi ttPercent, rồi total, cuối cùng tên.
func TestBuildRanking_TieBreak(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	coll := newCollator()

	// Cùng score 0.5: u1 ig 0.6/tt 0.4, u2 ig 0.4/tt 0.6 -> u1 trước
	ig := []compliancemodels.UnitRecap{
		unitWith("u1", "Bravo", 6, 10, false),
		unitWith("u2", "Alpha", 4, 10, false),
	}
	tt := []compliancemodels.UnitRecap{
		unitWith("u1", "Bravo", 4, 10, false),
		unitWith("u2", "Alpha", 6, 10, false),
	}
	entries := svc.BuildRanking(ig, tt, coll)
	if entries[0].ClientID != "u1" {
		t.Errorf("igPercent cao hơn phải thắng khi score bằng, nhận %s", entries[0].ClientID)
	}

	// Mọi thứ bằng nhau -> tên theo collation tăng dần
	ig = []compliancemodels.UnitRecap{
		unitWith("u1", "Bravo", 5, 10, false),
		unitWith("u2", "alpha", 5, 10, false), // Collation không phân biệt hoa thường
	}
	entries = svc.BuildRanking(ig, nil, coll)
	if entries[0].Name != "alpha" {
		t.Errorf("Hòa toàn phần phải sắp theo tên, nhận %s trước", entries[0].Name)
	}
}

// Hai đơn vị khác nhau nhưng tên bằng nhau theo collation (trùng tên hoặc chỉ khác
// hoa thường) và hòa mọi chỉ số: khóa cuối theo clientId quyết định, thứ tự
// không phụ thuộc thứ tự đầu vào.
func TestBuildRanking_TrungTenKhoaCuoiTheoClientID(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	coll := newCollator()

	a := unitWith("u-alpha", "Satker Alpha", 5, 10, false)
	b := unitWith("u-bravo", "satker alpha", 5, 10, false)

	thuTu := func(units []compliancemodels.UnitRecap) []string {
		entries := svc.BuildRanking(units, nil, coll)
		ids := make([]string, len(entries))
		for i, e := range entries {
			ids[i] = e.ClientID
		}
		return ids
	}

	xuoi := thuTu([]compliancemodels.UnitRecap{a, b})
	nguoc := thuTu([]compliancemodels.UnitRecap{b, a})

	if xuoi[0] != "u-alpha" || xuoi[1] != "u-bravo" {
		t.Errorf("Trùng tên phải sắp theo clientId tăng dần, nhận %v", xuoi)
	}
	for i := range xuoi {
		if xuoi[i] != nguoc[i] {
			t.Fatalf("Thứ tự phụ thuộc thứ tự đầu vào: %v != %v", xuoi, nguoc)
		}
	}
}

// Đơn vị chỉ xuất hiện một platform vẫn vào bảng, phía còn lại percent 0.
func TestBuildRanking_MotPlatform(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	entries := svc.BuildRanking(
		[]compliancemodels.UnitRecap{unitWith("u1", "Satker Satu", 5, 10, false)},
		nil, newCollator())
	if len(entries) != 1 {
		t.Fatalf("Mong đợi 1 dòng, nhận %d", len(entries))
	}
	if entries[0].TTPercent != 0 || entries[0].Score != 0.25 {
		t.Errorf("Platform vắng mặt phải tính 0: %+v", entries[0])
	}
	if entries[0].Total != 10 {
		t.Errorf("Total phải lấy từ platform có dữ liệu, nhận %d", entries[0].Total)
	}
}

func TestBuildRanking_Rong(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})
	entries := svc.BuildRanking(nil, nil, newCollator())
	if len(entries) != 0 {
		t.Errorf("Đầu vào rỗng phải cho bảng rỗng, nhận %d dòng", len(entries))
	}
}
