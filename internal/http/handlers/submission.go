package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/http/middleware"
	"github.com/aquabase/wellreg-backend/internal/http/response"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/services"
)

type SubmissionHandler struct {
	log               *logger.Logger
	submissionService services.SubmissionService
}

func NewSubmissionHandler(log *logger.Logger, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		log:               log.With("handler", "SubmissionHandler"),
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var sub domain.ActivitySubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		response.RespondError(c, http.StatusBadRequest, "submission_invalid", err)
		return
	}

	// Legacy snapshots are synthesized during stacking, never filed.
	if sub.WellActivityCode == domain.ActivityLegacy {
		response.RespondError(c, http.StatusBadRequest, "submission_invalid",
			errors.New("legacy submissions cannot be filed directly"))
		return
	}
	if sub.WellActivityCode == domain.ActivityStaffEdit && c.GetString(middleware.RoleKey) != middleware.RoleStaff {
		response.RespondError(c, http.StatusForbidden, "forbidden",
			errors.New("staff edits require staff access"))
		return
	}

	user := c.GetString(middleware.UserKey)
	sub.CreateUser = user
	sub.UpdateUser = user

	created, well, err := h.submissionService.CreateSubmission(c.Request.Context(), &sub)
	if err != nil {
		h.log.Error("CreateSubmission failed", "error", err, "activity", sub.WellActivityCode)
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"submission": created, "well": well})
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	filingNumber, err := uuid.Parse(c.Param("filing_number"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filing_number", err)
		return
	}
	sub, err := h.submissionService.GetSubmission(c.Request.Context(), filingNumber)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submission": sub})
}

func (h *SubmissionHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	subs, err := h.submissionService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("ListRecent failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submissions": subs})
}
