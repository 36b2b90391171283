package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const (
	sandboxURL = "https://sandbox.sslcommerz.com"
	liveURL    = "https://securepay.sslcommerz.com"

	sessionPath = "/gwprocess/v4/api.php"
)

// PaymentRequest carries everything a gateway session needs: the
// amount, the correlation transaction id, the three callback URLs plus
// IPN, and buyer identity. The shipping/billing address block is a
// fixed placeholder the storefront never collects.
type PaymentRequest struct {
	TotalAmount     float64
	Currency        string
	TranID          string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	IPNURL          string
	ShippingMethod  string
	ProductName     string
	ProductCategory string
	ProductProfile  string
	CustomerName    string
	CustomerEmail   string
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// Client initiates SSLCommerz payment sessions.
type Client struct {
	StoreID       string
	StorePassword string
	BaseURL       string
	HTTPClient    *http.Client
}

// NewClientFromEnv builds a Client from STORE_ID / STORE_PASSWORD,
// pointed at the sandbox host unless GATEWAY_LIVE=true.
func NewClientFromEnv() *Client {
	base := sandboxURL
	if os.Getenv("GATEWAY_LIVE") == "true" {
		base = liveURL
	}
	return &Client{
		StoreID:       os.Getenv("STORE_ID"),
		StorePassword: os.Getenv("STORE_PASSWORD"),
		BaseURL:       base,
		HTTPClient:    http.DefaultClient,
	}
}

// InitiateSession registers the payment with the gateway and returns
// the URL the buyer must be redirected to. A declined session is an
// error carrying the gateway's failure reason.
func (cl *Client) InitiateSession(ctx context.Context, req PaymentRequest) (string, error) {
	form := url.Values{}
	form.Set("store_id", cl.StoreID)
	form.Set("store_passwd", cl.StorePassword)
	form.Set("total_amount", fmt.Sprintf("%.2f", req.TotalAmount))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TranID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IPNURL)
	form.Set("shipping_method", req.ShippingMethod)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", req.ProductCategory)
	form.Set("product_profile", req.ProductProfile)
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)

	// Placeholder address block required by the gateway contract.
	form.Set("cus_add1", "Dhaka")
	form.Set("cus_add2", "Dhaka")
	form.Set("cus_city", "Dhaka")
	form.Set("cus_state", "Dhaka")
	form.Set("cus_postcode", "1000")
	form.Set("cus_country", "Bangladesh")
	form.Set("cus_phone", "01711111111")
	form.Set("cus_fax", "01711111111")
	form.Set("ship_name", req.CustomerName)
	form.Set("ship_add1", "Dhaka")
	form.Set("ship_add2", "Dhaka")
	form.Set("ship_city", "Dhaka")
	form.Set("ship_state", "Dhaka")
	form.Set("ship_postcode", "1000")
	form.Set("ship_country", "Bangladesh")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.BaseURL+sessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := cl.HTTPClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", err
	}

	if session.Status != "SUCCESS" || session.GatewayPageURL == "" {
		return "", fmt.Errorf("gateway session failed: %s", session.FailedReason)
	}

	return session.GatewayPageURL, nil
}
