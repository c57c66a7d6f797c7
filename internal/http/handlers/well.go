package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aquabase/wellreg-backend/internal/data/repos"
	"github.com/aquabase/wellreg-backend/internal/http/response"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/services"
)

type WellHandler struct {
	log               *logger.Logger
	wellService       services.WellService
	submissionService services.SubmissionService
}

func NewWellHandler(log *logger.Logger, wellService services.WellService, submissionService services.SubmissionService) *WellHandler {
	return &WellHandler{
		log:               log.With("handler", "WellHandler"),
		wellService:       wellService,
		submissionService: submissionService,
	}
}

func (h *WellHandler) GetWell(c *gin.Context) {
	tag, err := strconv.ParseInt(c.Param("well_tag_number"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_well_tag_number", err)
		return
	}
	well, err := h.wellService.GetWell(c.Request.Context(), tag)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"well": well})
}

func (h *WellHandler) SearchWells(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	q := repos.WellSearch{
		OwnerFullName: c.Query("owner"),
		StreetAddress: c.Query("address"),
		LegalPlan:     c.Query("legal_plan"),
		Limit:         limit,
	}
	wells, err := h.wellService.Search(c.Request.Context(), q)
	if err != nil {
		h.log.Error("SearchWells failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"wells": wells})
}

// ListSubmissions returns a well's full filing history, oldest first.
func (h *WellHandler) ListSubmissions(c *gin.Context) {
	tag, err := strconv.ParseInt(c.Param("well_tag_number"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_well_tag_number", err)
		return
	}
	subs, err := h.submissionService.ListSubmissionsForWell(c.Request.Context(), tag)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submissions": subs})
}
