// Package compliancehdl - Handler cho các endpoint tổng hợp chấp hành tương tác.
package compliancehdl

import (
	"errors"
	"fmt"

	basehdl "social_compliance/internal/api/base/handler"
	compliancedto "social_compliance/internal/api/compliance/dto"
	compliancemodels "social_compliance/internal/api/compliance/models"
	compliancesvc "social_compliance/internal/api/compliance/service"
	directorysvc "social_compliance/internal/api/directory"
	"social_compliance/internal/common"
	"social_compliance/internal/global"
	"social_compliance/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ComplianceHandler xử lý request tổng hợp chấp hành tương tác.
type ComplianceHandler struct {
	Service *compliancesvc.ComplianceService
}

// NewComplianceHandler tạo mới ComplianceHandler với DirectorySource đọc MongoDB.
func NewComplianceHandler() (*ComplianceHandler, error) {
	dir, err := directorysvc.NewDirectoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo DirectoryService: %w", err)
	}
	svc, err := compliancesvc.NewComplianceService(
		dir,
		global.ServerConfig.ReportTimezone,
		global.ServerConfig.FetchFanoutLimit,
		global.ServerConfig.HomeClientID,
	)
	if err != nil {
		return nil, fmt.Errorf("tạo ComplianceService: %w", err)
	}
	return &ComplianceHandler{Service: svc}, nil
}

// HandleGetRecap xử lý GET /compliance/recap — recap đầy đủ cho một scope và chu kỳ.
// Query: scope (bắt buộc), period (daily|weekly|monthly), from, to, platform.
func (h *ComplianceHandler) HandleGetRecap(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		params, ok := h.bindAndValidate(c)
		if !ok {
			return nil
		}
		recap, err := h.compute(c, params)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, recap, nil)
		return nil
	})
}

// HandleGetRanking xử lý GET /compliance/ranking — chỉ bảng xếp hạng đơn vị.
// Cùng query params với /compliance/recap; tính đủ recap rồi trả về phần ranking
// kèm caveat failedPosts để client biết số liệu có thiếu hay không.
func (h *ComplianceHandler) HandleGetRanking(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		params, ok := h.bindAndValidate(c)
		if !ok {
			return nil
		}
		recap, err := h.compute(c, params)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, fiber.Map{
			"recapId":     recap.RecapID,
			"scope":       recap.Scope,
			"periodLabel": recap.PeriodLabel,
			"ranking":     recap.Ranking,
			"failedPosts": recap.FailedPosts,
		}, nil)
		return nil
	})
}

// bindAndValidate bind query params và validate. Trả về ok=false nếu đã
// ghi response lỗi cho client.
func (h *ComplianceHandler) bindAndValidate(c fiber.Ctx) (*compliancedto.RecapQueryParams, bool) {
	var params compliancedto.RecapQueryParams
	if err := c.Bind().Query(&params); err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput, "Query params không hợp lệ", common.StatusBadRequest, err.Error(),
		))
		return nil, false
	}
	if err := global.Validate.Struct(&params); err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error(),
		))
		return nil, false
	}
	return &params, true
}

// compute gọi engine và map lỗi domain sang common.Error cho response.
func (h *ComplianceHandler) compute(c fiber.Ctx, params *compliancedto.RecapQueryParams) (*compliancemodels.Recap, error) {
	period := compliancesvc.PeriodRequest{
		Token: params.Period,
		From:  params.From,
		To:    params.To,
	}
	var policy compliancesvc.PlatformPolicy
	if params.Platform != "" {
		policy.Platforms = []compliancemodels.Platform{compliancemodels.Platform(params.Platform)}
	}

	recap, err := h.Service.ComputeComplianceRecap(c.Context(), params.Scope, period, policy)
	if err != nil {
		logger.WithRequest(c).WithError(err).Error("Tổng hợp chấp hành tương tác thất bại")
		switch {
		case errors.Is(err, common.ErrUnitNotFound):
			return nil, common.NewError(common.ErrCodeBusinessUnit,
				fmt.Sprintf("Không tìm thấy đơn vị %s trong danh bạ", params.Scope),
				common.StatusNotFound, nil)
		case errors.Is(err, common.ErrInvalidRange):
			return nil, common.NewError(common.ErrCodeValidationRange,
				err.Error(), common.StatusBadRequest, nil)
		default:
			return nil, err
		}
	}
	return recap, nil
}
