// Package utility chứa các helper dùng chung, không phụ thuộc domain.
package utility

// UniqueStrings trả về slice mới đã loại phần tử trùng, giữ nguyên thứ tự xuất hiện.
func UniqueStrings(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
