// Package paypal is a thin client over the PayPal REST checkout API. Each
// call fetches a fresh client-credentials token; PayPal caches them server
// side so this stays cheap at our volume.
package paypal

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type Client struct {
	apiBase      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

func NewClient(apiBase, clientID, clientSecret string) *Client {
	return &Client{
		apiBase:      strings.TrimRight(apiBase, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type OrderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type PurchaseUnit struct {
	Amount OrderAmount `json:"amount"`
}

type experienceContext struct {
	PaymentMethodPreference string `json:"payment_method_preference"`
	BrandName               string `json:"brand_name"`
	Locale                  string `json:"locale"`
	LandingPage             string `json:"landing_page"`
	UserAction              string `json:"user_action"`
	ReturnURL               string `json:"return_url"`
	CancelURL               string `json:"cancel_url"`
}

type paymentSource struct {
	Paypal struct {
		ExperienceContext experienceContext `json:"experience_context"`
	} `json:"paypal"`
}

type createOrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
	PaymentSource paymentSource  `json:"payment_source"`
}

type OrderLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type Order struct {
	ID     string      `json:"id"`
	Status string      `json:"status"`
	Links  []OrderLink `json:"links"`
}

func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	body := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.apiBase+"/v1/oauth2/token",
		strings.NewReader(body.Encode()))
	if err != nil {
		return "", err
	}

	basicAuth := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basicAuth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token request failed with status %d: %s", res.StatusCode, string(resBody))
	}

	var token tokenResponse
	if err := json.Unmarshal(resBody, &token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiBase+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("paypal request %s failed with status %d: %s", path, res.StatusCode, string(resBody))
	}
	return resBody, nil
}

// CreateOrder opens a checkout order for the given total. The raw response is
// returned alongside the parsed order so callers can persist it.
func (c *Client) CreateOrder(ctx context.Context, total, currency string) (*Order, []byte, error) {
	reqBody := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []PurchaseUnit{
			{Amount: OrderAmount{CurrencyCode: currency, Value: total}},
		},
	}
	reqBody.PaymentSource.Paypal.ExperienceContext = experienceContext{
		PaymentMethodPreference: "IMMEDIATE_PAYMENT_REQUIRED",
		BrandName:               "EstateFlow",
		Locale:                  "en-US",
		LandingPage:             "LOGIN",
		UserAction:              "PAY_NOW",
		ReturnURL:               "https://yourwebsite.com/return",
		CancelURL:               "https://yourwebsite.com/cancel",
	}

	raw, err := c.postJSON(ctx, "/v2/checkout/orders", reqBody)
	if err != nil {
		return nil, nil, err
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, nil, err
	}
	return &order, raw, nil
}

// CaptureOrder settles an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Order, []byte, error) {
	raw, err := c.postJSON(ctx, "/v2/checkout/orders/"+orderID+"/capture", nil)
	if err != nil {
		return nil, nil, err
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, nil, err
	}
	return &order, raw, nil
}
