package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-work-tracker/internal/config"
	"github.com/MKhiriev/go-work-tracker/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter creates a ServerAdapter speaking the REST API of the
// work-tracker server.
func NewHTTPServerAdapter(cfg *config.ClientConfig) ServerAdapter {
	baseURL := cfg.ServerURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var authResp models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &authResp); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(authResp.AccessToken)
	return authResp.User, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var authResp models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &authResp); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(authResp.AccessToken)
	return authResp.User, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var profileResp models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &profileResp); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profileResp.User, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, req models.CreateEntryRequest) (models.WorkEntry, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/entries/")
	if err != nil {
		return models.WorkEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkEntry{}, err
	}

	var entryResp models.EntryResponse
	if err = json.Unmarshal(resp.Body(), &entryResp); err != nil {
		return models.WorkEntry{}, fmt.Errorf("decode create entry response: %w", err)
	}

	return entryResp.WorkEntry, nil
}

func (h *httpServerAdapter) GetEntry(ctx context.Context, entryID int64) (models.WorkEntry, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/entries/%d", entryID))
	if err != nil {
		return models.WorkEntry{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkEntry{}, err
	}

	var entryResp models.EntryResponse
	if err = json.Unmarshal(resp.Body(), &entryResp); err != nil {
		return models.WorkEntry{}, fmt.Errorf("decode get entry response: %w", err)
	}

	return entryResp.WorkEntry, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, entryID int64, req models.UpdateEntryRequest) (models.WorkEntry, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(fmt.Sprintf("/entries/%d", entryID))
	if err != nil {
		return models.WorkEntry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkEntry{}, err
	}

	var entryResp models.EntryResponse
	if err = json.Unmarshal(resp.Body(), &entryResp); err != nil {
		return models.WorkEntry{}, fmt.Errorf("decode update entry response: %w", err)
	}

	return entryResp.WorkEntry, nil
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, entryID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/entries/%d", entryID))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListEntries(ctx context.Context, query models.ListQuery) (models.ListEntriesResponse, error) {
	req := h.authedRequest(ctx)

	if query.StartDate != "" {
		req.SetQueryParam("start_date", query.StartDate)
	}
	if query.EndDate != "" {
		req.SetQueryParam("end_date", query.EndDate)
	}
	if query.Page != "" {
		req.SetQueryParam("page", query.Page)
	}
	if query.PerPage != "" {
		req.SetQueryParam("per_page", query.PerPage)
	}

	resp, err := req.Get("/entries/")
	if err != nil {
		return models.ListEntriesResponse{}, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListEntriesResponse{}, err
	}

	var listResp models.ListEntriesResponse
	if err = json.Unmarshal(resp.Body(), &listResp); err != nil {
		return models.ListEntriesResponse{}, fmt.Errorf("decode list entries response: %w", err)
	}

	return listResp, nil
}

func (h *httpServerAdapter) Statistics(ctx context.Context) (models.Statistics, error) {
	resp, err := h.authedRequest(ctx).Get("/entries/statistics")
	if err != nil {
		return models.Statistics{}, fmt.Errorf("statistics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Statistics{}, err
	}

	var stats models.Statistics
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.Statistics{}, fmt.Errorf("decode statistics response: %w", err)
	}

	return stats, nil
}

// authedRequest starts a request carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
