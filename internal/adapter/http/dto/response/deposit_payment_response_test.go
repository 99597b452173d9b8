package response

import (
	"encoding/json"
	"testing"
	"time"

	"leadpilot/internal/domain/entities"
)

func TestFromDepositPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.DepositPayment{
		ID:           "pay-1",
		QuotationID:  "quo-1",
		Amount:       475,
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: json.RawMessage(`{"status":"approved"}`),
		MPPayload:    map[string]interface{}{"status": "approved"},
	}

	res := FromDepositPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.QuotationID != "quo-1" || res.Amount != 475 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Status != "approved" {
		t.Fatalf("unexpected status: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != `{"status":"approved"}` {
		t.Fatalf("unexpected raw payload: %q", res.MPPayloadRaw)
	}
	if res.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
