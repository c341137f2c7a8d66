package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/app-dashboard/internal/config"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/utils"
	"github.com/MKhiriev/app-dashboard/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpDashboardAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDashboardAdapter constructs the HTTP implementation of
// [DashboardAdapter]. The base URL from cfg.HTTPAddress is normalised; a
// missing scheme defaults to http.
func NewHTTPDashboardAdapter(cfg config.ClientAdapter, logger *logger.Logger) (DashboardAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpDashboardAdapter{client: client, logger: logger}, nil
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

func (h *httpDashboardAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpDashboardAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpDashboardAdapter) ListApps(ctx context.Context) ([]models.App, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/get_apps")
	if err != nil {
		return nil, fmt.Errorf("list apps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeApps(resp.Body())
}

func (h *httpDashboardAdapter) AddApp(ctx context.Context, app models.App, password string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddAppRequest{App: app, AdminPassword: optional(password)}).
		Post("/add_new_app")
	if err != nil {
		return fmt.Errorf("add app request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDashboardAdapter) DeleteApp(ctx context.Context, name, password string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteAppRequest{Name: name, AdminPassword: optional(password)}).
		Post("/delete_app")
	if err != nil {
		return fmt.Errorf("delete app request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDashboardAdapter) CreateSession(ctx context.Context, password string) (models.Token, error) {
	var envelope models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SessionRequest{AdminPassword: optional(password)}).
		SetResult(&envelope).
		Post("/api/session")
	if err != nil {
		return models.Token{}, fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed := envelope.Token
	if signed == "" {
		if signed, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.Token{}, fmt.Errorf("create session parse bearer token: %w", err)
		}
	}

	token := models.Token{SignedString: signed}
	if envelope.ExpiresAt != nil {
		token.ExpiresAt = jwt.NewNumericDate(*envelope.ExpiresAt)
	}

	h.SetToken(signed)
	h.logger.Debug().Msg("admin session created")

	return token, nil
}

func (h *httpDashboardAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpDashboardAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// optional maps an empty password to "not provided".
func optional(password string) *string {
	if password == "" {
		return nil
	}
	return &password
}

// decodeApps decodes the body of GET /get_apps.
func decodeApps(body []byte) ([]models.App, error) {
	var apps []models.App
	if err := json.Unmarshal(body, &apps); err != nil {
		return nil, fmt.Errorf("decode apps response: %w", err)
	}
	return apps, nil
}
