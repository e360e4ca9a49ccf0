// Package apiclient is the single typed client for the upstream VacTrack
// REST API. Every upstream call in the gateway goes through it, with one
// error policy and no automatic retries.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vactrack/clinic-gateway/internal/config"
	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/pkg/errors"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// envelope is the {success,data} shape some upstream endpoints answer with.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// pageEnvelope is the {content,totalPages} shape the admin listings answer
// with.
type pageEnvelope struct {
	Content       json.RawMessage `json:"content"`
	TotalPages    *int            `json:"totalPages"`
	TotalElements int64           `json:"totalElements"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Internal(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Internal(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Unavailable("vactrack api unreachable", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Unavailable("failed to read vactrack api response", err)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(resp.StatusCode, payload)
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	return decodePayload(payload, out)
}

func (c *Client) statusError(status int, payload []byte) error {
	message := upstreamMessage(payload)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.Unauthorized(fmt.Errorf("upstream status %d: %s", status, message))
	case status == http.StatusNotFound:
		return errors.NotFound("resource", fmt.Errorf("upstream status %d", status))
	case status < 500:
		if message == "" {
			message = "request rejected"
		}
		return errors.BadRequest(message, fmt.Errorf("upstream status %d", status))
	default:
		return errors.Unavailable("vactrack api error", fmt.Errorf("upstream status %d: %s", status, message))
	}
}

func upstreamMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// decodePayload absorbs the upstream's inconsistent envelopes: a bare
// payload, {success,data}, or {content,totalPages}. Callers only ever see
// the typed result.
func decodePayload(payload []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Success != nil {
		if !*env.Success {
			msg := env.Message
			if msg == "" {
				msg = "request rejected"
			}
			return errors.BadRequest(msg, nil)
		}
		if len(env.Data) > 0 {
			payload = env.Data
		}
	}

	if page, ok := out.(*model.Page); ok {
		var pe pageEnvelope
		if err := json.Unmarshal(payload, &pe); err == nil && pe.TotalPages != nil {
			page.Content = pe.Content
			page.Page = pe.Number
			page.Size = pe.Size
			page.TotalPages = *pe.TotalPages
			page.TotalItems = pe.TotalElements
			return nil
		}
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Unavailable("unexpected vactrack api payload", err)
	}
	return nil
}
