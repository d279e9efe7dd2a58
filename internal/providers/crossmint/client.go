package crossmint

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
)

const (
	mintPath     = "/v1/mint"
	transferPath = "/v1/wallets/transactions"
)

// MintRequest is the body of a mint call
type MintRequest struct {
	To       string `json:"to"`
	Metadata string `json:"metadata"`
}

// MintResponse carries the provider transaction id and the raw response body
type MintResponse struct {
	// TransactionID is empty when the provider did not return one
	TransactionID string
	Raw           map[string]interface{}
}

// TransferRequest describes a wallet to wallet payment
type TransferRequest struct {
	From        string
	To          string
	Amount      decimal.Decimal
	Asset       string
	Description string
}

// TransferResponse carries the payment transaction id and the raw response body
type TransferResponse struct {
	TransactionID string
	Raw           map[string]interface{}
}

type transferBody struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
	Asset       string `json:"asset"`
	Description string `json:"description"`
}

// Client defines the interface for the Crossmint API to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/crossmint_client.go -package=mocks -mock_names=Client=MockCrossmintClient
type Client interface {
	// Mint mints a collectible to the given wallet. Never retried.
	Mint(ctx context.Context, req MintRequest) (*MintResponse, error)

	// Transfer moves funds between two wallets. Never retried.
	Transfer(ctx context.Context, req TransferRequest) (*TransferResponse, error)

	// IsProductionKey reports whether the configured API key targets production
	IsProductionKey() bool
}

// Config holds the Crossmint client configuration
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// CrossmintClient implements Client on top of resty
type CrossmintClient struct {
	http   *resty.Client
	apiKey string
}

// NewClient creates a new Crossmint API client
func NewClient(cfg Config) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIKey)

	return &CrossmintClient{
		http:   httpClient,
		apiKey: cfg.APIKey,
	}
}

// IsProductionKey reports whether the configured API key targets production
func (c *CrossmintClient) IsProductionKey() bool {
	return strings.HasPrefix(c.apiKey, domain.PRODUCTION_API_KEY_PREFIX)
}

// Mint mints a collectible to req.To with the metadata document at req.Metadata
func (c *CrossmintClient) Mint(ctx context.Context, req MintRequest) (*MintResponse, error) {
	raw, err := c.post(ctx, "crossmint.Mint", mintPath, req)
	if err != nil {
		return nil, err
	}

	return &MintResponse{
		TransactionID: firstString(raw, "transactionId", "txId"),
		Raw:           raw,
	}, nil
}

// Transfer moves req.Amount of req.Asset from req.From to req.To
func (c *CrossmintClient) Transfer(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	body := transferBody{
		From:        req.From,
		To:          req.To,
		Amount:      req.Amount.String(),
		Asset:       req.Asset,
		Description: req.Description,
	}

	raw, err := c.post(ctx, "crossmint.Transfer", transferPath, body)
	if err != nil {
		return nil, err
	}

	return &TransferResponse{
		TransactionID: firstString(raw, "id", "transactionId"),
		Raw:           raw,
	}, nil
}

func (c *CrossmintClient) post(ctx context.Context, op string, path string, body interface{}) (map[string]interface{}, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, classifyTransportError(op, err)
	}

	raw := map[string]interface{}{}
	if len(resp.Body()) > 0 {
		if jsonErr := json.Unmarshal(resp.Body(), &raw); jsonErr != nil && !resp.IsError() {
			return nil, domain.NewError(domain.ErrorKindUpstream, op, "invalid response body", jsonErr)
		}
	}

	if resp.IsError() {
		logger.WarnCtx(ctx, "Crossmint request rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
		)
		message := firstString(raw, "message", "error")
		if message == "" {
			message = fmt.Sprintf("unexpected status code %d", resp.StatusCode())
		}
		return nil, domain.NewError(domain.ErrorKindUpstream, op, message,
			fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String()))
	}

	return raw, nil
}

// classifyTransportError tags a failed request as a certificate or transport error
func classifyTransportError(op string, err error) error {
	if isCertificateError(err) {
		return domain.NewError(domain.ErrorKindCertificate, op, "certificate verification failed", err)
	}
	return domain.NewError(domain.ErrorKindTransport, op, "request failed", err)
}

func isCertificateError(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &invalidErr) {
		return true
	}
	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "certificate")
}

func firstString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
