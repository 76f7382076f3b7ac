package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/MKhiriev/sparknest-admin/internal/config"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/utils"
	"github.com/MKhiriev/sparknest-admin/models"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	h := &httpServerAdapter{client: client, ids: utils.NewUUIDGenerator(), logger: logger}
	client.
		OnBeforeRequest(h.beforeRequest).
		OnAfterResponse(h.afterResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// HasToken implements [ServerAdapter].
func (h *httpServerAdapter) HasToken() bool {
	return h.currentToken() != ""
}

func (h *httpServerAdapter) currentToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. The body must carry "token" and may
// carry "user"; a body that is not JSON is reported as ErrMalformedResponse.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	const op = "login"

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return models.LoginResponse{}, err
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return models.LoginResponse{}, malformedError(op, resp, errors.New("login response is not JSON"))
	}

	out := models.LoginResponse{Token: gjson.GetBytes(body, "token").String()}
	if user := gjson.GetBytes(body, "user"); user.IsObject() {
		if err = json.Unmarshal([]byte(user.Raw), &out.User); err != nil {
			return models.LoginResponse{}, malformedError(op, resp, fmt.Errorf("decode user: %w", err))
		}
	}

	return out, nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (string, error) {
	const op = "register"

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post("/auth/register")
	if err != nil {
		return "", transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return "", err
	}

	return backendMessage(resp.Body()), nil
}

// List implements [ServerAdapter]. The backend answers with a bare JSON
// array; an object wrapping the array in "data" is accepted too.
func (h *httpServerAdapter) List(ctx context.Context, kind models.ResourceKind) ([]models.Entity, error) {
	op := "list " + string(kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUnknownResourceKind)
	}

	resp, err := h.authedRequest(ctx).Get(kind.Path())
	if err != nil {
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return nil, err
	}

	raw := gjson.ParseBytes(resp.Body())
	if !raw.IsArray() {
		raw = raw.Get("data")
	}
	if !raw.IsArray() {
		return nil, malformedError(op, resp, errors.New("expected a JSON array"))
	}

	items := make([]models.Entity, 0, len(raw.Array()))
	if err = decodeJSON(raw.Raw, &items); err != nil {
		return nil, malformedError(op, resp, err)
	}

	return items, nil
}

// Create implements [ServerAdapter].
func (h *httpServerAdapter) Create(ctx context.Context, kind models.ResourceKind, data models.Entity) (models.Entity, error) {
	op := "create " + string(kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUnknownResourceKind)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(kind.Path())
	if err != nil {
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return nil, err
	}

	return decodeEntity(op, resp, data)
}

// Update implements [ServerAdapter].
func (h *httpServerAdapter) Update(ctx context.Context, kind models.ResourceKind, id models.ID, data models.Entity) (models.Entity, error) {
	op := "update " + string(kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUnknownResourceKind)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Put(kind.ItemPath(id))
	if err != nil {
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return nil, err
	}

	return decodeEntity(op, resp, data)
}

// Delete implements [ServerAdapter].
func (h *httpServerAdapter) Delete(ctx context.Context, kind models.ResourceKind, id models.ID) error {
	op := "delete " + string(kind)
	if !kind.Valid() {
		return fmt.Errorf("%s: %w", op, models.ErrUnknownResourceKind)
	}

	resp, err := h.authedRequest(ctx).Delete(kind.ItemPath(id))
	if err != nil {
		return transportError(op, err)
	}

	return mapHTTPError(op, resp)
}

// MarkRead implements [ServerAdapter].
func (h *httpServerAdapter) MarkRead(ctx context.Context, id models.ID) error {
	const op = "mark message read"

	resp, err := h.authedRequest(ctx).Patch(models.Messages.ItemPath(id) + "/read")
	if err != nil {
		return transportError(op, err)
	}

	return mapHTTPError(op, resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.currentToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeEntity returns the record echoed by the backend. Some endpoints reply
// with an empty body or a bare message; the sent data is returned then.
func decodeEntity(op string, resp *resty.Response, sent models.Entity) (models.Entity, error) {
	raw := gjson.ParseBytes(resp.Body())
	if !raw.IsObject() {
		return sent, nil
	}
	if data := raw.Get("data"); data.IsObject() {
		raw = data
	}

	var out models.Entity
	if err := decodeJSON(raw.Raw, &out); err != nil {
		return nil, malformedError(op, resp, err)
	}
	if out.ID().IsZero() && len(out) <= 1 {
		// {"message": "..."} style acknowledgement
		return sent, nil
	}
	return out, nil
}

// decodeJSON keeps numbers as json.Number so that ids above 2^53 survive.
func decodeJSON(raw string, v any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func (h *httpServerAdapter) beforeRequest(_ *resty.Client, req *resty.Request) error {
	id, ok := utils.GetRequestIDFromContext(req.Context())
	if !ok {
		id = h.ids.Generate()
	}
	req.SetHeader(requestIDHeader, id)

	h.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Str("request_id", id).
		Msg("backend request")
	return nil
}

func (h *httpServerAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend response")
	return nil
}
