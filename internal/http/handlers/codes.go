package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aquabase/wellreg-backend/internal/http/response"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/services"
)

type CodeHandler struct {
	log         *logger.Logger
	codeService services.CodeService
}

func NewCodeHandler(log *logger.Logger, codeService services.CodeService) *CodeHandler {
	return &CodeHandler{
		log:         log.With("handler", "CodeHandler"),
		codeService: codeService,
	}
}

func (h *CodeHandler) ListCodes(c *gin.Context) {
	ctx := c.Request.Context()

	activity, err := h.codeService.ActivityCodes(ctx)
	if err != nil {
		h.log.Error("ListCodes failed", "table", "activity", "error", err)
		response.RespondFromError(c, err)
		return
	}
	wellClass, err := h.codeService.WellClassCodes(ctx)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	wellStatus, err := h.codeService.WellStatusCodes(ctx)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	intendedUse, err := h.codeService.IntendedWaterUseCodes(ctx)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	drilling, err := h.codeService.DrillingMethodCodes(ctx)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	development, err := h.codeService.DevelopmentMethodCodes(ctx)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	decommission, err := h.codeService.DecommissionMethodCodes(ctx)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}

	response.RespondOK(c, gin.H{
		"activity_codes":            activity,
		"well_class_codes":          wellClass,
		"well_status_codes":         wellStatus,
		"intended_water_use_codes":  intendedUse,
		"drilling_method_codes":     drilling,
		"development_method_codes":  development,
		"decommission_method_codes": decommission,
	})
}
