// Package paystack initializes card payments with the Paystack API.
package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/pkg/clients"
)

const (
	DefaultBaseURL = "https://api.paystack.co"
	initializePath = "/transaction/initialize"
)

var ErrGateway = errors.New("paystack request failed")

type HTTPClient interface {
	Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type InitializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency,omitempty"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type initializeResponse struct {
	Status  bool          `json:"status"`
	Message string        `json:"message"`
	Data    Authorization `json:"data"`
}

type Client struct {
	client    HTTPClient
	baseURL   string
	secretKey string
}

func New(client HTTPClient, baseURL, secretKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
	}
}

func NewDefault(baseURL, secretKey string) *Client {
	return New(clients.NewHTTPClient(), baseURL, secretKey)
}

// Initialize starts a transaction and returns the page the customer must be
// redirected to. Amount is in the currency's smallest unit.
func (c *Client) Initialize(ctx context.Context, req *InitializeRequest) (*Authorization, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.secretKey)
	headers.Set("Content-Type", "application/json")

	statusCode, respBody, _, err := c.client.Post(ctx, c.baseURL+initializePath, headers, body)
	if err != nil {
		zap.L().Error("paystack request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	var resp initializeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		zap.L().Error("can't decode paystack response", zap.Int("status", statusCode), zap.Error(err))
		return nil, fmt.Errorf("%w: status %d: undecodable body", ErrGateway, statusCode)
	}
	if statusCode != http.StatusOK || !resp.Status || resp.Data.AuthorizationURL == "" {
		zap.L().Error("paystack rejected transaction", zap.Int("status", statusCode), zap.String("message", resp.Message))
		return nil, fmt.Errorf("%w: status %d: %s", ErrGateway, statusCode, resp.Message)
	}
	return &resp.Data, nil
}
