package request

// QuotationCreateRequest carries the optional pricing multiplier applied to
// every base price. Zero (or an absent field) means the default 1.0.

type QuotationCreateRequest struct {
	Multiplier float64 `json:"multiplier"`
}
