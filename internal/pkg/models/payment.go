package models

import "encoding/json"

// InitiatePaymentRequest is the payload for starting a membership payment
type InitiatePaymentRequest struct {
	UserID    string `json:"userId"`
	ClubID    string `json:"clubId"`
	UserPhone string `json:"userPhone"`
}

// InitiatePaymentResponse carries the gateway redirect URL back to the client
type InitiatePaymentResponse struct {
	URL string `json:"url"`
}

// PaymentCallback is the normalized form of a gateway callback. The gateway
// may deliver identifiers in the request body, the path or the query string;
// the handler resolves them into this struct before the usecase runs.
type PaymentCallback struct {
	TranID string
	ValID  string
	Error  string
}

// CallbackPayload is the wire shape of a gateway callback body. SSLCommerz
// posts form-encoded IPNs but can be configured for JSON, so both tag sets
// are present.
type CallbackPayload struct {
	TranID string `json:"tran_id" form:"tran_id"`
	ValID  string `json:"val_id" form:"val_id"`
	Status string `json:"status" form:"status"`
	Error  string `json:"error" form:"error"`
}

// ValidationResponse is the gateway's answer to a validation call. Raw holds
// the unparsed body and is persisted on the transaction as payment details.
type ValidationResponse struct {
	Status   string          `json:"status"`
	TranID   string          `json:"tran_id"`
	ValID    string          `json:"val_id"`
	Amount   string          `json:"amount"`
	Currency string          `json:"currency"`
	Raw      json.RawMessage `json:"-"`
}

// GatewaySessionResponse is the gateway's answer to a session creation call
type GatewaySessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}
