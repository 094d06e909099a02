package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resume-builder/internal/resume"
)

const defaultTimeout = 15 * time.Second

// Client is a thin gateway to the remote content API. Every operation is a
// single attempt; there is no retry or cancellation beyond the caller's
// context and the HTTP client's own timeout.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New constructs a content API client rooted at baseURL (e.g.
// "http://localhost:8080/api"). The API key is sent as a bearer token when
// non-empty.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Create persists a new document and returns it with the assigned ID.
func (c *Client) Create(ctx context.Context, doc resume.Document) (resume.Document, error) {
	body, err := c.do(ctx, http.MethodPost, "/user-resumes", map[string]any{"data": doc})
	if err != nil {
		return resume.Document{}, err
	}
	return resume.DecodeAPIDocument(body)
}

// ListByOwner returns the documents owned by the given email, in the order
// the backend stores them.
func (c *Client) ListByOwner(ctx context.Context, ownerEmail string) ([]resume.Document, error) {
	path := "/user-resumes?filters[userEmail][$eq]=" + url.QueryEscape(ownerEmail)
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	raw := envelope.Data
	if raw == nil {
		raw = body
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	out := make([]resume.Document, 0, len(items))
	for _, item := range items {
		doc, err := resume.DecodeAPIDocument(item)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// GetByID fetches a full document with related fields expanded.
func (c *Client) GetByID(ctx context.Context, id string) (resume.Document, error) {
	body, err := c.do(ctx, http.MethodGet, "/user-resumes/"+url.PathEscape(id)+"?populate=*", nil)
	if err != nil {
		return resume.Document{}, err
	}
	return resume.DecodeAPIDocument(body)
}

// Update writes a partial, section-scoped patch to the document. Only the
// keys present in sections are touched; the document ID never changes.
func (c *Client) Update(ctx context.Context, id string, sections map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, "/user-resumes/"+url.PathEscape(id), map[string]any{"data": sections})
	return err
}

// DeleteByID removes a document. Deletion is terminal; callers are expected
// to have confirmed it with the user.
func (c *Client) DeleteByID(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/user-resumes/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("content api read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func decodeAPIError(status int, body []byte) error {
	var parsed struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return &APIError{Status: status, Code: parsed.Error.Code, Message: parsed.Error.Message}
	}
	return &APIError{Status: status}
}
