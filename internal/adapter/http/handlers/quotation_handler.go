package handlers

import (
	"context"
	"errors"
	"net/http"

	request "leadpilot/internal/adapter/http/dto/request"
	response "leadpilot/internal/adapter/http/dto/response"
	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase"
	"leadpilot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for service quotations.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotationForLead builds and persists a draft quotation from the
// lead's stored audit. An empty body is accepted and means multiplier 1.0.
func (h *QuotationHandler) CreateQuotationForLead(c *gin.Context) {
	var payload request.QuotationCreateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
			return
		}
	}

	quotation, err := h.usecase.CreateForLead(c.Request.Context(), c.Param("lead_id"), payload.Multiplier)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

func (h *QuotationHandler) AcceptQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.AcceptByID)
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.RejectByID)
}

func (h *QuotationHandler) patchQuotationStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quotation, error),
) {
	quotation, err := updater(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

// GetLatestQuotationForLead returns the most recent quotation built for a lead.
func (h *QuotationHandler) GetLatestQuotationForLead(c *gin.Context) {
	quotation, err := h.usecase.GetLatestByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidMultiplier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToQuote):
		return pkg.NewDomainErrorSimple("NOTHING_TO_QUOTE", "The audit raised no issues to quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotPending):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_DECIDED", "Quotation has already been decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
