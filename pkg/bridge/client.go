package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// DefaultBridgeURL is used when New is given an empty base URL.
const DefaultBridgeURL = "http://localhost:8080"

// DefaultReplyTimeoutMs is the JMS-TIMEOUT applied by RequestReply when the
// caller did not pick one.
const DefaultReplyTimeoutMs = 30000

// defaultHTTPTimeout bounds the whole HTTP round trip, separate from the
// broker-side reply timeout forwarded in JMS-TIMEOUT.
const defaultHTTPTimeout = 60 * time.Second

// Request header names understood by the bridge. Part of the wire contract;
// they are written to the request verbatim.
const (
	HeaderURL           = "JMS-URL"
	HeaderUser          = "JMS-USR"
	HeaderQueue         = "JMS-QU1"
	HeaderPassword      = "JMS-PSW"
	HeaderPublishOnly   = "JMS-PUBLISH-ONLY"
	HeaderReplyQueue    = "JMS-QU2"
	HeaderTimeout       = "JMS-TIMEOUT"
	HeaderCorrelationID = "JMS-CORRELATION-ID"
)

// Client wraps an HTTP session against one bridge instance.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logpkg.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP connect/read timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l logpkg.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.WithComponent("bridge")
		}
	}
}

// New creates a client for the bridge at baseURL (DefaultBridgeURL when
// empty). A trailing slash is trimmed.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBridgeURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultHTTPTimeout},
		logger:  logpkg.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendRequest describes one message handed to the bridge.
type SendRequest struct {
	// EMSURL is the broker connection URL, e.g. tcp://localhost:7222.
	EMSURL string
	// User is the EMS username.
	User string
	// Queue is the destination queue (JMS-QU1).
	Queue string
	// Body is the raw message text, sent as-is.
	Body string
	// Password is sent only when non-empty.
	Password string
	// ReplyQueue names the reply queue (JMS-QU2); only meaningful when
	// PublishOnly is false. The bridge uses a temporary queue when empty.
	ReplyQueue string
	// PublishOnly selects fire-and-forget mode.
	PublishOnly bool
	// TimeoutMs is the broker-side reply timeout forwarded as JMS-TIMEOUT;
	// values <= 0 omit the header. Only meaningful in request-reply mode.
	TimeoutMs int
	// CorrelationID is sent as JMS-CORRELATION-ID when non-empty.
	CorrelationID string
	// Headers are extra HTTP headers applied after the computed ones, so
	// callers can override anything, or add JMS properties such as
	// JMSPriority or JMSType.
	Headers map[string]string
	// PlainText skips the application/json Content-Type/Accept negotiation.
	PlainText bool
}

// Send posts one message to the bridge and interprets the response.
//
// Non-2xx responses become a *BridgeError carrying the status code and the
// bridge's JSON error envelope when one decodes, otherwise the raw text. A
// 2xx publish-only JSON acknowledgment has its messageId extracted; a
// malformed acknowledgment is tolerated and leaves MessageID empty with the
// raw body preserved.
func (c *Client) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", strings.NewReader(req.Body))
	if err != nil {
		return nil, err
	}

	h := httpReq.Header
	// Assigned directly so the JMS-* names go on the wire uppercase, exactly
	// as the bridge documents them.
	h[HeaderURL] = []string{req.EMSURL}
	h[HeaderUser] = []string{req.User}
	h[HeaderQueue] = []string{req.Queue}
	if req.Password != "" {
		h[HeaderPassword] = []string{req.Password}
	}
	if req.PublishOnly {
		h[HeaderPublishOnly] = []string{"YES"}
	} else {
		if req.ReplyQueue != "" {
			h[HeaderReplyQueue] = []string{req.ReplyQueue}
		}
		if req.TimeoutMs > 0 {
			h[HeaderTimeout] = []string{strconv.Itoa(req.TimeoutMs)}
		}
	}
	if req.CorrelationID != "" {
		h[HeaderCorrelationID] = []string{req.CorrelationID}
	}
	if !req.PlainText {
		h.Set("Content-Type", "application/json")
		h.Set("Accept", "application/json")
	}
	for k, v := range req.Headers {
		h[k] = []string{v}
	}

	c.logger.Debug("sending message",
		logpkg.Str("queue", req.Queue),
		logpkg.Bool("publish_only", req.PublishOnly),
		logpkg.Int("body_bytes", len(req.Body)))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	body := string(raw)
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	c.logger.Debug("bridge responded",
		logpkg.Int("status", resp.StatusCode),
		logpkg.Bool("json", isJSON))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := body
		if isJSON {
			var envelope struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
				msg = envelope.Error
			}
		}
		return nil, &BridgeError{StatusCode: resp.StatusCode, Message: msg}
	}

	result := &SendResult{Status: resp.StatusCode, Body: body}
	if req.PublishOnly && isJSON {
		var ack struct {
			MessageID string `json:"messageId"`
		}
		// A malformed acknowledgment is not an error; the raw body stands.
		if err := json.Unmarshal(raw, &ack); err == nil {
			result.MessageID = ack.MessageID
		}
	}
	return result, nil
}

// Publish sends a message in fire-and-forget mode.
func (c *Client) Publish(ctx context.Context, req SendRequest) (*SendResult, error) {
	req.PublishOnly = true
	return c.Send(ctx, req)
}

// RequestReply sends a message and has the bridge wait for the correlated
// reply, defaulting the reply timeout to DefaultReplyTimeoutMs.
func (c *Client) RequestReply(ctx context.Context, req SendRequest) (*SendResult, error) {
	req.PublishOnly = false
	if req.TimeoutMs <= 0 {
		req.TimeoutMs = DefaultReplyTimeoutMs
	}
	return c.Send(ctx, req)
}

// GetStats fetches bridge metrics from /metrics. With useJSON and a JSON
// response it returns the parsed mapping; otherwise {"raw": <text>}. Non-2xx
// responses are a plain error, not a *BridgeError.
func (c *Client) GetStats(ctx context.Context, useJSON bool) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/metrics", nil)
	if err != nil {
		return nil, err
	}
	if useJSON {
		req.Header.Set("Accept", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http error: %s", resp.Status)
	}
	if useJSON && strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var stats map[string]interface{}
		if err := json.Unmarshal(raw, &stats); err != nil {
			return nil, err
		}
		return stats, nil
	}
	return map[string]interface{}{"raw": string(raw)}, nil
}

// Close releases the underlying HTTP session. Safe to call once, typically
// via defer so the connections are released on every exit path.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// NewCorrelationID mints a fresh correlation id. The bridge picks its own
// default when the header is absent; minting client-side lets the caller
// know the id up front.
func NewCorrelationID() string {
	return uuid.NewString()
}
