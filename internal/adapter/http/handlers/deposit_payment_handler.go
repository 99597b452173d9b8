package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "leadpilot/internal/adapter/http/dto/response"
	"leadpilot/internal/usecase"
	"leadpilot/pkg"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler handles HTTP requests for deposit payments.

type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc}
}

// CreateDepositByQuotationID collects the signing deposit for an accepted
// quotation, using quotation_id in path.
func (h *DepositPaymentHandler) CreateDepositByQuotationID(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	log.Printf("[payment][handler] create start quotation_id=%s", quotationID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quotation_id=%s err=%v", quotationID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload quotation_id=%s err=%v", quotationID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), quotationID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed quotation_id=%s err=%v", quotationID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success quotation_id=%s payment_id=%s status=%s", quotationID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetDepositByQuotationID returns the latest deposit payment for a quotation.
func (h *DepositPaymentHandler) GetDepositByQuotationID(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	log.Printf("[payment][handler] get-by-quotation start quotation_id=%s", quotationID)

	payments, err := h.usecase.ListByQuotationID(c.Request.Context(), quotationID)
	if err != nil {
		log.Printf("[payment][handler] get-by-quotation failed quotation_id=%s err=%v", quotationID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-quotation not-found quotation_id=%s", quotationID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-quotation success quotation_id=%s payment_id=%s status=%s", quotationID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuotationID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_ACCEPTED", "Quotation not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
