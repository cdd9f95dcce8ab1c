package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// Config holds the connection settings of an [AuthClient].
type Config struct {
	// Address is the server base URL. A missing scheme defaults to http.
	// Env: CLIENT_ADDRESS
	Address string `env:"ADDRESS" envDefault:"localhost:8080"`

	// Timeout bounds every request. Zero keeps the client default.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

type httpAuthClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAuthClient constructs a REST implementation of [AuthClient].
// It normalises cfg.Address into a base URL and returns an error when the
// address is empty or cannot be parsed.
func NewHTTPAuthClient(cfg Config, logger *logger.Logger) (AuthClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid client address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &httpAuthClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthClient]. It POSTs req to /auth/register and
// decodes the echoed profile from the message envelope.
func (h *httpAuthClient) Register(ctx context.Context, req models.RegistrationRequest) (models.RegistrationEcho, error) {
	var result struct {
		Message models.RegistrationEcho `json:"message"`
	}

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/auth/register")
	if err != nil {
		return models.RegistrationEcho{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegistrationEcho{}, err
	}

	return result.Message, nil
}

// Login implements [AuthClient]. On success the returned token is stored
// and attached to every later request.
func (h *httpAuthClient) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var result models.TokenResponse

	resp, err := h.request(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return result.Token, nil
}

func (h *httpAuthClient) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	if err := h.getJSON(ctx, "/auth/me", &identity); err != nil {
		return models.Identity{}, fmt.Errorf("me: %w", err)
	}
	return identity, nil
}

func (h *httpAuthClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.getJSON(ctx, "/user", &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (h *httpAuthClient) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, "/username/"+url.PathEscape(username), &user); err != nil {
		return models.User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

func (h *httpAuthClient) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, "/id/"+strconv.FormatInt(userID, 10), &user); err != nil {
		return models.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// Health implements [AuthClient]. A nil error means the server answered
// 200 on /health.
func (h *httpAuthClient) Health(ctx context.Context) error {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpAuthClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	if err := h.getJSON(ctx, "/version", &info); err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version: %w", err)
	}
	return info, nil
}

func (h *httpAuthClient) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.request(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

// request builds a request bound to ctx carrying the stored bearer token.
func (h *httpAuthClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
