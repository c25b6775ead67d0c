// Package compliancesvc - Engagement Set Builder (xem service.compliance.go cho package doc).
package compliancesvc

import (
	"context"

	compliancemodels "social_compliance/internal/api/compliance/models"
	"social_compliance/internal/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BuildEngagementSets fetch tập handle tương tác cho từng bài đăng, đồng thời
// nhưng giới hạn fanout, và chuẩn hóa handle trước khi đưa vào set.
//
// Kết quả index-aligned với posts đầu vào: sets[i] tương ứng posts[i], bất kể
// thứ tự hoàn thành fetch — mỗi goroutine ghi vào đúng slot của nó nên không cần lock.
// Fetch lỗi KHÔNG làm hỏng cả batch: bài đó nhận set rỗng và được ghi vào failedPosts
// (giữ thứ tự xuất hiện trong posts).
func (s *ComplianceService) BuildEngagementSets(ctx context.Context, platform compliancemodels.Platform, posts []compliancemodels.Post) ([]compliancemodels.EngagementSet, []string) {
	sets := make([]compliancemodels.EngagementSet, len(posts))
	failed := make([]bool, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutLimit)
	for i := range posts {
		g.Go(func() error {
			post := posts[i]
			handles, err := s.dir.FetchEngagedHandles(gctx, platform, post.PostID)
			if err != nil {
				// Không fatal: ghi nhận rồi để slot là set rỗng.
				logger.WithContext(gctx).WithFields(logrus.Fields{
					"platform": platform,
					"post_id":  post.PostID,
				}).WithError(err).Warn("Fetch engagement thất bại, dùng set rỗng cho bài này")
				failed[i] = true
				sets[i] = compliancemodels.EngagementSet{PostID: post.PostID, Handles: map[string]struct{}{}}
				return nil
			}

			keys := make(map[string]struct{}, len(handles))
			for _, h := range handles {
				if key := NormalizeHandle(h); key != "" {
					keys[key] = struct{}{}
				}
			}
			sets[i] = compliancemodels.EngagementSet{PostID: post.PostID, Handles: keys}
			return nil
		})
	}
	// Các goroutine không bao giờ trả lỗi (lỗi fetch đã xử lý tại chỗ).
	_ = g.Wait()

	var failedPosts []string
	for i, f := range failed {
		if f {
			failedPosts = append(failedPosts, posts[i].PostID)
		}
	}
	return sets, failedPosts
}
