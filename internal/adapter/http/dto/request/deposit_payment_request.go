package request

import "encoding/json"

// DepositPaymentCreateRequest is the payload for the deposit collection route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type DepositPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
