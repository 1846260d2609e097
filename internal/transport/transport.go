// Package transport provides the single request function for the onboarding
// API. It serializes JSON or multipart bodies, attaches the anonymous session
// token and/or the authenticated bearer token, and normalizes the service's
// success and failure envelopes so that every failure surfaces as a
// *types.OnboardingError.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/pathway-onboarding/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "OnboardAgent/1.0"

const (
	headerSessionToken = "X-Session-Token"
	headerRequestID    = "X-Request-ID"
)

// Options configures the transport client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for the transport client.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client issues requests against one onboarding API base URL.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient creates a transport client for the given base URL.
func NewClient(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: opts.UserAgent,
		http:      &http.Client{Timeout: opts.Timeout},
	}
}

// FormFile is one file part of a multipart request body.
type FormFile struct {
	Field    string
	Filename string
	Content  io.Reader
}

// Form is a multipart request body. The content type (and boundary) is
// generated at send time, never set by the caller.
type Form struct {
	Fields map[string]string
	Files  []FormFile
}

// Request describes one call. Exactly one of JSON and Form may be set; a
// request with neither sends no body. SessionToken and AuthToken are both
// optional and both sent when present — the service decides precedence.
type Request struct {
	Method       string
	JSON         any
	Form         *Form
	Query        url.Values
	SessionToken string
	AuthToken    string
}

// Meta carries pagination detail on list responses.
type Meta struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
	Total    int `json:"total,omitempty"`
}

// Envelope is the uniform success wrapper returned by every endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// Decode unmarshals the envelope's data payload into v.
func (e *Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return types.WrapUnknown("malformed response data", err)
	}
	return nil
}

// errorEnvelope is the uniform failure wrapper, signaled by a non-2xx status.
type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	} `json:"error"`
}

// Send issues a single request and returns the parsed success envelope. One
// attempt per call: retry policy belongs to the caller. Failures of any kind
// return a *types.OnboardingError.
func (c *Client) Send(ctx context.Context, endpoint string, req Request) (*Envelope, error) {
	if req.JSON != nil && req.Form != nil {
		return nil, types.WrapUnknown("request body must be JSON or multipart, not both", nil)
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + endpoint
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, types.WrapUnknown("failed to create request", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(headerRequestID, uuid.NewString())
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.SessionToken != "" {
		httpReq.Header.Set(headerSessionToken, req.SessionToken)
	}
	if req.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.AuthToken)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, types.WrapUnknown("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.WrapUnknown("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, respBody)
	}

	var envelope Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, types.WrapUnknown("malformed response body", err)
	}
	return &envelope, nil
}

// encodeBody serializes the request body. JSON bodies get an explicit content
// type; multipart bodies use the writer's generated boundary.
func encodeBody(req Request) (io.Reader, string, error) {
	switch {
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", types.WrapUnknown("failed to encode request body", err)
		}
		return bytes.NewReader(data), "application/json", nil

	case req.Form != nil:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for field, value := range req.Form.Fields {
			if err := w.WriteField(field, value); err != nil {
				return nil, "", types.WrapUnknown("failed to encode form field", err)
			}
		}
		for _, file := range req.Form.Files {
			part, err := w.CreateFormFile(file.Field, file.Filename)
			if err != nil {
				return nil, "", types.WrapUnknown("failed to encode form file", err)
			}
			if _, err := io.Copy(part, file.Content); err != nil {
				return nil, "", types.WrapUnknown("failed to encode form file", err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", types.WrapUnknown("failed to finalize form body", err)
		}
		return &buf, w.FormDataContentType(), nil

	default:
		return nil, "", nil
	}
}

// decodeError parses the failure envelope from a non-2xx response. A missing
// code defaults to UNKNOWN_ERROR and a missing message to a generic one; a
// body that is not a failure envelope at all is classified the same way.
func decodeError(status int, body []byte) *types.OnboardingError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || (envelope.Error.Code == "" && envelope.Error.Message == "") {
		return types.WrapUnknown(fmt.Sprintf("request failed with status %d", status), nil)
	}
	oe := types.NewOnboardingError(envelope.Error.Code, envelope.Error.Message)
	oe.Details = envelope.Error.Details
	return oe
}
