package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aquabase/wellreg-backend/internal/data/repos"
	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/http/response"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/services"
)

type RegistryHandler struct {
	log             *logger.Logger
	registryService services.RegistryService
}

func NewRegistryHandler(log *logger.Logger, registryService services.RegistryService) *RegistryHandler {
	return &RegistryHandler{
		log:             log.With("handler", "RegistryHandler"),
		registryService: registryService,
	}
}

func (h *RegistryHandler) CreatePerson(c *gin.Context) {
	var person domain.Person
	if err := c.ShouldBindJSON(&person); err != nil {
		response.RespondError(c, http.StatusBadRequest, "person_invalid", err)
		return
	}
	created, err := h.registryService.CreatePerson(c.Request.Context(), &person)
	if err != nil {
		h.log.Error("CreatePerson failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"person": created})
}

func (h *RegistryHandler) GetPerson(c *gin.Context) {
	personGUID, err := uuid.Parse(c.Param("person_guid"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_person_guid", err)
		return
	}
	person, err := h.registryService.GetPerson(c.Request.Context(), personGUID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"person": person})
}

func (h *RegistryHandler) SearchPersons(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	q := repos.PersonSearch{
		Surname:            c.Query("surname"),
		RegistrationNumber: c.Query("registration_no"),
		RegistryActivity:   c.Query("activity"),
		Limit:              limit,
	}
	persons, err := h.registryService.SearchPersons(c.Request.Context(), q)
	if err != nil {
		h.log.Error("SearchPersons failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"persons": persons})
}

func (h *RegistryHandler) CreateOrganization(c *gin.Context) {
	var org domain.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		response.RespondError(c, http.StatusBadRequest, "organization_invalid", err)
		return
	}
	created, err := h.registryService.CreateOrganization(c.Request.Context(), &org)
	if err != nil {
		h.log.Error("CreateOrganization failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"organization": created})
}

func (h *RegistryHandler) ListOrganizations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	orgs, err := h.registryService.ListOrganizations(c.Request.Context(), limit)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"organizations": orgs})
}
