// Package compliancedto - DTO cho các endpoint tổng hợp chấp hành tương tác.
package compliancedto

// RecapQueryParams là query params của GET /compliance/recap và /compliance/ranking.
// from/to (nếu có) override period; chỉ một bound thì cửa sổ là trọn một ngày.
type RecapQueryParams struct {
	Scope    string `query:"scope" validate:"required,max=128,no_xss"`              // clientId của org-unit hoặc directorate
	Period   string `query:"period" validate:"omitempty,oneof=daily weekly monthly"` // Token chu kỳ, mặc định daily
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02"`          // Bound tường minh YYYY-MM-DD
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02"`            // Bound tường minh YYYY-MM-DD
	Platform string `query:"platform" validate:"omitempty,oneof=instagram tiktok"`   // Rỗng = cả hai platform
}
