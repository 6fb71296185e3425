package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/austcms/clubpay/internal/pkg/models"
)

// gateway session status indicating the session was created
const sessionStatusSuccess = "SUCCESS"

// InitPayment creates a payment session at the gateway and returns the page
// URL to forward the end user to. The transaction row must already exist in
// the store before this is called, so the gateway can never confirm a
// tran_id we do not know about.
func (g *PaymentGW) InitPayment(ctx context.Context, tran *models.Transaction) (string, error) {
	form := url.Values{}
	form.Set("store_id", g.cfg.SSLCommerz.StoreID)
	form.Set("store_passwd", g.cfg.SSLCommerz.StorePassword)
	form.Set("tran_id", tran.TranID)
	form.Set("total_amount", fmt.Sprintf("%.2f", tran.Amount))
	form.Set("currency", tran.Currency)
	form.Set("success_url", g.callbackURL("success"))
	form.Set("fail_url", g.callbackURL("fail"))
	form.Set("cancel_url", g.callbackURL("cancel"))
	form.Set("cus_name", tran.UserName)
	form.Set("cus_email", tran.UserEmail)
	form.Set("cus_phone", tran.UserPhone)
	form.Set("product_name", "Club membership")
	form.Set("product_category", "membership")
	form.Set("product_profile", "non-physical-goods")
	form.Set("shipping_method", "NO")
	form.Set("emi_option", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.SSLCommerz.SessionURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send session request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("session request failed: (status: %d, body: %s)", resp.StatusCode, string(respBody))
	}

	var session models.GatewaySessionResponse
	if err := json.Unmarshal(respBody, &session); err != nil {
		return "", fmt.Errorf("failed to parse session response: %w", err)
	}

	if session.Status != sessionStatusSuccess || session.GatewayPageURL == "" {
		return "", fmt.Errorf("gateway rejected session: %s", session.FailedReason)
	}

	return session.GatewayPageURL, nil
}

// ValidatePayment asks the gateway's validator whether the payment attempt
// identified by valID is genuine. The raw response body is returned alongside
// the parsed form so it can be persisted as payment details.
func (g *PaymentGW) ValidatePayment(ctx context.Context, valID string) (*models.ValidationResponse, error) {
	query := url.Values{}
	query.Set("val_id", valID)
	query.Set("store_id", g.cfg.SSLCommerz.StoreID)
	query.Set("store_passwd", g.cfg.SSLCommerz.StorePassword)
	query.Set("format", "json")
	query.Set("v", "1")

	reqURL := g.cfg.SSLCommerz.ValidationURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation request: %w", err)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send validation request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read validation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("validation request failed: (status: %d, body: %s)", resp.StatusCode, string(respBody))
	}

	var validation models.ValidationResponse
	if err := json.Unmarshal(respBody, &validation); err != nil {
		return nil, fmt.Errorf("failed to parse validation response: %w", err)
	}
	validation.Raw = respBody

	return &validation, nil
}

func (g *PaymentGW) callbackURL(action string) string {
	return fmt.Sprintf("%s/v1/payment/%s", strings.TrimRight(g.cfg.Server.BaseURL, "/"), action)
}
