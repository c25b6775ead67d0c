// Package router đăng ký các route thuộc domain Compliance: recap, ranking.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	compliancehdl "social_compliance/internal/api/compliance/handler"
	apirouter "social_compliance/internal/api/router"
)

// Register đăng ký tất cả route compliance lên v1.
func Register(v1 fiber.Router) error {
	handler, err := compliancehdl.NewComplianceHandler()
	if err != nil {
		return fmt.Errorf("create compliance handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/compliance", "GET", "/recap", nil, handler.HandleGetRecap)
	apirouter.RegisterRouteWithMiddleware(v1, "/compliance", "GET", "/ranking", nil, handler.HandleGetRanking)
	return nil
}
