// Package notifyclient is a Go client for device-side calls to an ipay4u
// server: registration, signed payment notifications and status checks.
package notifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"ipay4u/internal/domain/service"
	"ipay4u/internal/errors"
	"ipay4u/internal/infra/auth"

	"github.com/google/uuid"
)

// Request headers understood by the server.
const (
	HeaderRegistrationSecret = "X-Registration-Secret"
	HeaderDeviceFingerprint  = "X-Device-Fingerprint"
	HeaderTimestamp          = "X-Timestamp"
	HeaderNonce              = "X-Nonce"
	HeaderSignature          = "X-Signature"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	defaultBackoff     = 500 * time.Millisecond
)

// Client talks to one ipay4u server on behalf of one device.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	signer      service.RequestSigner
	now         func() time.Time
	newNonce    func() string
	maxAttempts int
	backoff     time.Duration

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithToken sets a device token obtained earlier, e.g. from a provisioning QR code.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithRetry sets how often Notify is attempted and the base delay between attempts.
func WithRetry(maxAttempts int, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = max(maxAttempts, 1)
		c.backoff = backoff
	}
}

// WithClock overrides the time source used for X-Timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: defaultTimeout},
		signer:      auth.NewHMACSigner(),
		now:         time.Now,
		newNonce:    uuid.NewString,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns the current device token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ipay4u: %d %s: %s (request %s)", e.StatusCode, e.Code, e.Message, e.RequestID)
}

// Retryable reports whether repeating the call could succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// RegisterRequest identifies the device and satisfies the server's registration gate.
// Set Secret or Fingerprint depending on the server's mode.
type RegisterRequest struct {
	DeviceID    string `json:"device_id"`
	DeviceName  string `json:"device_name"`
	Secret      string `json:"-"`
	Fingerprint string `json:"-"`
}

// Registration is the server's reply to a successful registration.
type Registration struct {
	Status      string `json:"status"`
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
}

// Register obtains a fresh token and keeps it for subsequent calls.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*Registration, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	headers := http.Header{}
	if req.Secret != "" {
		headers.Set(HeaderRegistrationSecret, req.Secret)
	}
	if req.Fingerprint != "" {
		headers.Set(HeaderDeviceFingerprint, req.Fingerprint)
	}

	var registration Registration
	if err := c.do(ctx, http.MethodPost, "/register", body, headers, &registration); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = registration.DeviceToken
	c.mu.Unlock()

	return &registration, nil
}

// Payment is one bank-payment notification observed on the device.
type Payment struct {
	ClientTxnID string  `json:"client_txn_id"`
	Bank        string  `json:"bank"`
	Amount      float64 `json:"amount"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
}

// NotifyResult is the server's acknowledgement of a payment.
type NotifyResult struct {
	Status      string `json:"status"`
	ClientTxnID string `json:"client_txn_id"`
	EventID     string `json:"event_id,omitempty"`
}

// Duplicate reports whether the server had already recorded this client_txn_id.
func (r *NotifyResult) Duplicate() bool {
	return r.Status == "duplicate_ignored"
}

// Notify reports a payment. Transport failures and 5xx replies are retried
// with a new nonce and timestamp; the server deduplicates on ClientTxnID, so
// a retry of an already recorded payment comes back as a duplicate.
// An empty ClientTxnID is filled in on payment so the caller can resend it.
func (c *Client) Notify(ctx context.Context, payment *Payment) (*NotifyResult, error) {
	if payment.ClientTxnID == "" {
		payment.ClientTxnID = uuid.NewString()
	}

	body, err := json.Marshal(payment)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var lastErr error
	for attempt := range c.maxAttempts {
		if attempt > 0 {
			if err := sleep(ctx, c.backoff*time.Duration(1<<(attempt-1))); err != nil {
				return nil, err
			}
		}

		var result NotifyResult
		lastErr = c.doSigned(ctx, http.MethodPost, "/notify", body, &result)
		if lastErr == nil {
			return &result, nil
		}
		if !retryable(lastErr) {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

// DeviceStatus is the lifecycle state of the device.
type DeviceStatus struct {
	Status   string `json:"status"`
	DeviceID string `json:"device_id"`
}

// Status asks the server whether the device is still active.
func (c *Client) Status(ctx context.Context) (*DeviceStatus, error) {
	var status DeviceStatus
	if err := c.do(ctx, http.MethodGet, "/device-status", nil, c.bearer(), &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// SignHeaders computes the authentication headers for body. Exposed for tools
// that send requests with another HTTP stack.
func (c *Client) SignHeaders(body []byte) http.Header {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	nonce := c.newNonce()
	token := c.Token()

	headers := c.bearer()
	headers.Set(HeaderTimestamp, timestamp)
	headers.Set(HeaderNonce, nonce)
	headers.Set(HeaderSignature, c.signer.Sign(token, body, timestamp, nonce))

	return headers
}

func (c *Client) bearer() http.Header {
	headers := http.Header{}
	if token := c.Token(); token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}

	return headers
}

func (c *Client) doSigned(ctx context.Context, method, path string, body []byte, out any) error {
	return c.do(ctx, method, path, body, c.SignHeaders(body), out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, headers http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s response", path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp, payload)
	}

	if out == nil {
		return nil
	}

	return errors.Wrapf(json.Unmarshal(payload, out), "decode %s response", path)
}

func decodeAPIError(resp *http.Response, payload []byte) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		RequestID:  resp.Header.Get("X-Request-Id"),
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(payload, &body) == nil && body.Error.Code != "" {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}

	return apiErr
}

func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	// Transport errors: the request may or may not have reached the server.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
