package models

// ComplianceStatus là kết quả phân loại tương tác của một nhân sự trong kỳ.
type ComplianceStatus string

const (
	StatusComplete ComplianceStatus = "complete"  // Đã tương tác đủ toàn bộ bài đăng yêu cầu
	StatusPartial  ComplianceStatus = "partial"   // Tương tác một phần
	StatusNone     ComplianceStatus = "none"      // Có handle nhưng không tương tác bài nào
	StatusNoHandle ComplianceStatus = "no-handle" // Chưa khai báo handle cho platform
)

// PeriodWindow là cửa sổ báo cáo đã resolve: [Start, End] theo Unix milliseconds,
// End là 23:59:59.999 của ngày cuối cùng trong cửa sổ.
type PeriodWindow struct {
	Start int64  `json:"start" bson:"start"`
	End   int64  `json:"end" bson:"end"`
	Label string `json:"label" bson:"label"` // Mô tả cửa sổ cho người đọc, vd "Ngày 15/01/2026"
}

// EngagementSet là tập handle đã chuẩn hóa tương tác với một bài đăng.
// Xây mới mỗi lần tổng hợp, không lưu xuống database.
type EngagementSet struct {
	PostID  string              `json:"postId"`
	Handles map[string]struct{} `json:"-"`
}

// Contains kiểm tra một handle đã chuẩn hóa có trong tập không.
func (s *EngagementSet) Contains(key string) bool {
	if s == nil || key == "" {
		return false
	}
	_, ok := s.Handles[key]
	return ok
}

// ComplianceRecord là kết quả phân loại của một nhân sự (derived, in-memory).
// Tạo một lần khi phân loại, không mutate sau đó.
type ComplianceRecord struct {
	UserID         string           `json:"userId"`
	Name           string           `json:"name"`
	Rank           string           `json:"rank"`
	Division       string           `json:"division"`
	ClientID       string           `json:"clientId"`
	Handle         string           `json:"handle,omitempty"` // Handle đã chuẩn hóa (rỗng nếu no-handle)
	Status         ComplianceStatus `json:"status"`
	SatisfiedCount int              `json:"satisfiedCount"` // Số bài đã tương tác
	RequiredCount  int              `json:"requiredCount"`  // Số bài yêu cầu trong kỳ
	IsExcepted     bool             `json:"isExcepted"`     // Complete do miễn trừ chính sách
	NoObligation   bool             `json:"noObligation"`   // Complete do kỳ không có bài đăng nào
}

// DivisionGroup là danh sách record của một bộ phận, đã sắp theo cấp bậc rồi tên.
type DivisionGroup struct {
	Division string             `json:"division"`
	Records  []ComplianceRecord `json:"records"`
}

// UnitTotals là tổng phân loại của một đơn vị trên một platform.
type UnitTotals struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Partial   int `json:"partial"`
	None      int `json:"none"`
	NoHandle  int `json:"noHandle"`
	Excepted  int `json:"excepted"` // Số complete do miễn trừ (subset của Completed)
}

// Percent trả về tỷ lệ hoàn thành [0..1]; 0 khi đơn vị không có nhân sự.
func (t UnitTotals) Percent() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Completed) / float64(t.Total)
}

// Add cộng dồn totals của đơn vị khác (dùng khi tính tổng toàn directorate).
func (t *UnitTotals) Add(o UnitTotals) {
	t.Total += o.Total
	t.Completed += o.Completed
	t.Partial += o.Partial
	t.None += o.None
	t.NoHandle += o.NoHandle
	t.Excepted += o.Excepted
}

// UnitRecap là kết quả tổng hợp của một đơn vị trên một platform.
type UnitRecap struct {
	ClientID  string          `json:"clientId"`
	Name      string          `json:"name"`
	Platform  Platform        `json:"platform"`
	IsHome    bool            `json:"isHome"` // Đơn vị "nhà" — luôn ghim đầu mọi danh sách có thứ tự
	Divisions []DivisionGroup `json:"divisions"`
	Totals    UnitTotals      `json:"totals"`
	Percent   float64         `json:"percent"` // Totals.Percent() đã tính sẵn cho renderer
}

// RankingEntry là một dòng trong bảng xếp hạng đơn vị.
type RankingEntry struct {
	Position  int     `json:"position"` // 1-based, sau khi sắp xếp
	ClientID  string  `json:"clientId"`
	Name      string  `json:"name"`
	IsHome    bool    `json:"isHome"`
	IGPercent float64 `json:"igPercent"`
	TTPercent float64 `json:"ttPercent"`
	Score     float64 `json:"score"` // (IGPercent + TTPercent) / 2
	Total     int     `json:"total"` // Tổng nhân sự của đơn vị
}

// Recap là cấu trúc cuối cùng trả cho renderer bên ngoài.
// Engine thuần: không tự lưu Recap; caller quyết định lưu hay render.
type Recap struct {
	RecapID     string                  `json:"recapId"`     // UUID của lần tổng hợp, phục vụ trace log
	Scope       string                  `json:"scope"`       // ClientID của đơn vị hoặc directorate được yêu cầu
	ScopeType   string                  `json:"scopeType"`   // directorate | org-unit
	PeriodLabel string                  `json:"periodLabel"` // Window.Label
	Window      PeriodWindow            `json:"window"`
	Units       map[Platform][]UnitRecap `json:"units"`      // Per-platform, đã sắp theo thứ tự xếp hạng
	Ranking     []RankingEntry          `json:"ranking"`
	Totals      map[Platform]UnitTotals `json:"totals"`      // Tổng cộng toàn scope theo platform
	FailedPosts map[Platform][]string   `json:"failedPosts"` // PostID fetch engagement thất bại (caveat cho renderer)
	GeneratedAt int64                   `json:"generatedAt"` // Unix milliseconds
}

// HasFailures cho biết có fetch nào thất bại trong lần tổng hợp không.
func (r *Recap) HasFailures() bool {
	for _, ids := range r.FailedPosts {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}
