// Package compliancesvc - Compliance Classifier (xem service.compliance.go cho package doc).
package compliancesvc

import (
	compliancemodels "social_compliance/internal/api/compliance/models"
)

// Classify phân loại một nhân sự theo tập engagement của kỳ.
// Quy tắc bốn trạng thái dùng chung cho MỌI báo cáo điểm danh/recap;
// caller không được special-case theo platform:
//
//  1. Chưa khai báo handle cho platform -> no-handle (bất kể nội dung engagement).
//  2. Có cờ miễn trừ -> complete (miễn trừ theo chính sách, tính là chấp hành
//     kể cả khi không tương tác gì).
//  3. Kỳ không có bài đăng nào (requiredCount == 0) -> complete, đánh dấu
//     NoObligation (không có gì phải làm).
//  4. Còn lại đếm satisfiedCount = số set (theo index) chứa handle đã chuẩn hóa:
//     đủ -> complete, một phần -> partial, không bài nào -> none.
func Classify(user compliancemodels.User, platform compliancemodels.Platform, sets []compliancemodels.EngagementSet) compliancemodels.ComplianceRecord {
	record := compliancemodels.ComplianceRecord{
		UserID:        user.UserID,
		Name:          user.Name,
		Rank:          user.Rank,
		Division:      user.Division,
		ClientID:      user.ClientID,
		RequiredCount: len(sets),
	}

	key := NormalizeHandle(user.HandleFor(platform))
	if key == "" {
		record.Status = compliancemodels.StatusNoHandle
		return record
	}
	record.Handle = key

	if user.IsException {
		record.Status = compliancemodels.StatusComplete
		record.IsExcepted = true
		return record
	}

	if len(sets) == 0 {
		record.Status = compliancemodels.StatusComplete
		record.NoObligation = true
		return record
	}

	for i := range sets {
		if sets[i].Contains(key) {
			record.SatisfiedCount++
		}
	}
	switch {
	case record.SatisfiedCount == record.RequiredCount:
		record.Status = compliancemodels.StatusComplete
	case record.SatisfiedCount > 0:
		record.Status = compliancemodels.StatusPartial
	default:
		record.Status = compliancemodels.StatusNone
	}
	return record
}
