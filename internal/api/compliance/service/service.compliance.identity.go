// Package compliancesvc - Identity Normalizer (xem service.compliance.go cho package doc).
package compliancesvc

import "strings"

// NormalizeHandle chuẩn hóa handle mạng xã hội thành key so sánh được:
// bỏ khoảng trắng hai đầu, bỏ MỘT dấu @ đầu, hạ chữ thường.
// Hàm thuần, total: input rỗng/toàn khoảng trắng trả về chuỗi rỗng, không bao giờ lỗi.
func NormalizeHandle(handle string) string {
	key := strings.TrimSpace(handle)
	if key == "" {
		return ""
	}
	key = strings.TrimPrefix(key, "@")
	return strings.ToLower(key)
}
