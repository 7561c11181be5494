// Package noteapi is the HTTP adapter for the remote note service. Every
// endpoint answers with the envelope {success, message, ...}; success:false
// is a domain failure whose message travels to the user verbatim, anything
// that keeps an envelope from arriving is a transport failure.
package noteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"note-keep/internal/services/notes"
)

const (
	listPath   = "/api/note/all"
	addPath    = "/api/note/add"
	editPath   = "/api/note/edit/"
	pinPath    = "/api/note/update-note-pinned/"
	deletePath = "/api/note/delete/"
)

// Client talks to one note service. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *slog.Logger
}

var _ notes.Gateway = (*Client)(nil)

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// envelope mirrors the service's uniform response wrapper.
type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Notes   []notes.Note `json:"notes"`
	Note    *notes.Note  `json:"note"`
}

// ListNotes fetches the full collection for identity.
func (c *Client) ListNotes(ctx context.Context, identity string) ([]notes.Note, error) {
	if identity == "" {
		return nil, notes.ErrNotAuthorised
	}
	env, err := c.call(ctx, http.MethodGet, listPath, identity, nil)
	if err != nil {
		return nil, err
	}
	return env.Notes, nil
}

// CreateNote submits a new note. Not idempotent: resubmitting creates a
// duplicate, and the client does not debounce on the caller's behalf.
func (c *Client) CreateNote(ctx context.Context, identity string, draft notes.Draft) (*notes.Note, error) {
	if identity == "" {
		return nil, notes.ErrNotAuthorised
	}
	env, err := c.call(ctx, http.MethodPost, addPath, identity, draft)
	if err != nil {
		return nil, err
	}
	return env.Note, nil
}

// UpdateNote replaces the editable fields of an existing note.
func (c *Client) UpdateNote(ctx context.Context, noteID, identity string, draft notes.Draft) (*notes.Note, error) {
	if identity == "" {
		return nil, notes.ErrNotAuthorised
	}
	env, err := c.call(ctx, http.MethodPost, editPath+noteID, identity, draft)
	if err != nil {
		return nil, err
	}
	return env.Note, nil
}

// SetPinned sets the pinned flag of a note. The wire contract addresses the
// note by id alone.
func (c *Client) SetPinned(ctx context.Context, noteID string, pinned bool) error {
	payload := map[string]bool{"isPinned": pinned}
	_, err := c.call(ctx, http.MethodPut, pinPath+noteID, "", payload)
	return err
}

// DeleteNote removes a note by id.
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	_, err := c.call(ctx, http.MethodDelete, deletePath+noteID, "", nil)
	return err
}

// call performs one envelope round trip.
func (c *Client) call(ctx context.Context, method, path, identity string, payload any) (*envelope, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if identity != "" {
		req.Header.Set("Authorization", identity)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("failed to close response body", "error", cerr)
		}
	}()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("unexpected response (HTTP %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		c.log.Debug("service reported failure", "method", method, "path", path, "message", env.Message)
		return nil, &notes.RemoteError{Message: env.Message}
	}
	return &env, nil
}
