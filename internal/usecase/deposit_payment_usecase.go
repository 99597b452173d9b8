package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"leadpilot/internal/domain/engine"
	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidPaymentQuotationID      = errors.New("invalid quotation_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuotationNotAccepted           = errors.New("quotation not accepted")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositPaymentUseCase collects the signing deposit of an accepted
// quotation.
//
// The deposit amount is never taken from the caller: it is the quotation
// total times the upfront share of its payment plan.

type IDepositPaymentUseCase interface {
	CreateDeposit(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo          interfaces.IDepositPaymentRepository
	quotationRepo interfaces.IQuotationRepository
	gateway       interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, quotationRepo interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, quotationRepo: quotationRepo, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateDeposit(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[payment][usecase] create-deposit start raw_quotation_id=%q payload_len=%d", quotationID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		log.Printf("[payment][usecase] invalid quotation_id (empty)")
		return entities.DepositPayment{}, ErrInvalidPaymentQuotationID
	}
	if len(mpPayload) == 0 {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (empty) quotation_id=%s", quotationID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
	}
	if !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (not-json) quotation_id=%s", quotationID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured quotation_id=%s", quotationID)
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.quotationRepo == nil {
		log.Printf("[payment][usecase] quotation repository not configured quotation_id=%s", quotationID)
		return entities.DepositPayment{}, errors.New("quotation repository not configured")
	}

	log.Printf("[payment][usecase] loading quotation quotation_id=%s", quotationID)
	var err error
	q, err := u.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quotation quotation_id=%s err=%v", quotationID, err)
		return entities.DepositPayment{}, err
	}
	if q.ID == "" {
		log.Printf("[payment][usecase] quotation not found quotation_id=%s", quotationID)
		return entities.DepositPayment{}, ErrQuotationNotFound
	}
	if !mockMode && q.Status != entities.QuotationStatusAccepted {
		log.Printf("[payment][usecase] quotation not accepted quotation_id=%s status=%s", quotationID, q.Status)
		return entities.DepositPayment{}, ErrQuotationNotAccepted
	}

	depositAmount := roundCents(q.Total * engine.DepositShare(q.Total))
	log.Printf("[payment][usecase] quotation loaded quotation_id=%s status=%s total=%.2f deposit=%.2f", quotationID, q.Status, q.Total, depositAmount)

	// Ensure basic linkage with the quotation when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id quotation_id=%s", quotationID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer quotation_id=%s", quotationID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}

		log.Printf("[payment][usecase] enriching payload quotation_id=%s", quotationID)
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quotationID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Acconto preventivo %s", quotationID)
		}

		// The source of truth for the amount is the quotation in DB.
		reqMap["transaction_amount"] = depositAmount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
			log.Printf("[payment][usecase] payload enriched quotation_id=%s payload_len=%d", quotationID, len(mpPayload))
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed quotation_id=%s err=%v", quotationID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway quotation_id=%s", quotationID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = quotationID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = depositAmount
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[payment][usecase] calling payment gateway quotation_id=%s", quotationID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed quotation_id=%s err=%v", quotationID, err)
			if isGatewayCustomerNotFound(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success quotation_id=%s provider_payment_id=%s provider_status=%s", quotationID, providerPaymentID, providerStatus)

	status := paymentStatusFromProvider(providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quotation_id=%s err=%v", quotationID, err)
	}

	now := time.Now().UTC()
	p := entities.DepositPayment{
		ID:           providerPaymentID,
		QuotationID:  quotationID,
		Amount:       depositAmount,
		Date:         now,
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed quotation_id=%s payment_id=%s err=%v", quotationID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[payment][usecase] create-deposit success quotation_id=%s payment_id=%s amount=%.2f status=%s", quotationID, created.ID, created.Amount, created.Status)
	return created, nil
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_it@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.DepositPayment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidPaymentQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}
