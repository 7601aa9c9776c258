package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrUnavailable = errors.New("payment gateway unavailable")

type Config struct {
	URL     string        `env:"GATEWAY_URL" envDefault:"https://pro.selfwork.ru/merchant/v1/init"`
	APIKey  string        `env:"GATEWAY_API_KEY"`
	Profile string        `env:"GATEWAY_PROFILE" envDefault:"selfwork"`
	Origin  string        `env:"SHOP_ORIGIN" envDefault:"https://program-kids.vercel.app"`
	Referer string        `env:"SHOP_REFERER" envDefault:"program-kids.vercel.app"`
	Timeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`
}

// PaymentRequest carries one order line for the gateway init call. Amounts
// are in kopecks, the unit the gateway expects.
type PaymentRequest struct {
	OrderID       string
	ItemName      string
	AmountKop     int
	ItemAmountKop int
	Quantity      int
}

func (r *PaymentRequest) Amount() string       { return strconv.Itoa(r.AmountKop) }
func (r *PaymentRequest) ItemAmount() string   { return strconv.Itoa(r.ItemAmountKop) }
func (r *PaymentRequest) ItemQuantity() string { return strconv.Itoa(r.Quantity) }

type Client struct {
	log     *zap.Logger
	client  *resty.Client
	signer  *Signer
	cfg     *Config
	profile Profile
}

type option func(*Client)

func Logger(log *zap.Logger) option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func New(cfg *Config, options ...option) (*Client, error) {
	profile := Profile(cfg.Profile)
	if !profile.Valid() {
		return nil, fmt.Errorf("unknown gateway profile %q", cfg.Profile)
	}

	c := &Client{
		log:     zap.NewNop(),
		client:  resty.New().SetTimeout(cfg.Timeout),
		signer:  NewSigner(cfg.APIKey),
		cfg:     cfg,
		profile: profile,
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// CreatePayment submits the form-encoded init request and returns the payment
// page markup produced by the gateway.
func (c *Client) CreatePayment(ctx context.Context, req *PaymentRequest, returnURL string) (string, error) {
	form := map[string]string{
		"order_id":          req.OrderID,
		"amount":            req.Amount(),
		"info[0][name]":     req.ItemName,
		"info[0][quantity]": req.ItemQuantity(),
		"info[0][amount]":   req.ItemAmount(),
		"signature":         c.signer.Sign(c.profile.RequestFields(req)...),
	}

	origin, referer := c.originReferer(returnURL)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Origin", origin).
		SetHeader("Referer", referer).
		SetFormData(form).
		Post(c.cfg.URL)
	if err != nil {
		c.log.Error("gateway request failed", zap.String("orderID", req.OrderID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Error("gateway rejected init request",
			zap.String("orderID", req.OrderID),
			zap.Int("status", resp.StatusCode()),
		)
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	return string(resp.Body()), nil
}

// VerifyCallback checks the webhook signature against the active profile.
func (c *Client) VerifyCallback(orderID, amount, signature string) bool {
	return c.signer.Verify(signature, c.profile.CallbackFields(orderID, amount)...)
}

// originReferer derives browser-like headers from the buyer return url,
// falling back to the configured shop address.
func (c *Client) originReferer(returnURL string) (string, string) {
	if returnURL != "" {
		if u, err := url.Parse(returnURL); err == nil && u.Scheme != "" && u.Host != "" {
			return u.Scheme + "://" + u.Host, u.Host
		}
	}

	return c.cfg.Origin, c.cfg.Referer
}
