package handlers

import (
	"errors"
	"net/http"

	request "leadpilot/internal/adapter/http/dto/request"
	response "leadpilot/internal/adapter/http/dto/response"
	"leadpilot/internal/usecase"
	"leadpilot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

// LeadHandler handles HTTP requests for lead ingestion, lookup and the
// derived recommendation views (quick wins, problem report).

type LeadHandler struct {
	usecase   usecase.ILeadUseCase
	quickWins usecase.IQuickWinsUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase, qw usecase.IQuickWinsUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc, quickWins: qw}
}

// CreateLead ingests an audited lead pushed by the crawler/analyzer.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.IngestLead(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// GetLeadQuickWins returns the prioritized quick-win analysis for a lead.
// The analysis is recomputed from the stored audit on every call.
func (h *LeadHandler) GetLeadQuickWins(c *gin.Context) {
	analysis, err := h.quickWins.AnalyzeByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetLeadProblems returns the translated, grouped problem report for a lead.
func (h *LeadHandler) GetLeadProblems(c *gin.Context) {
	report, err := h.quickWins.ProblemsByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
