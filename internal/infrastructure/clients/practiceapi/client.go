package practiceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cliento/cliento/internal/domain/entities"
	apperrors "github.com/cliento/cliento/pkg/errors"
)

// csrfCookieName is the cookie the backend sets; its value must be echoed in
// the csrfHeaderName header so state-changing requests are accepted.
const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
)

// Client is the typed surface of the practice REST API. All calls carry the
// session cookie and, when present, the CSRF token; each call is a single
// attempt with no retry or backoff.
type Client interface {
	ListPatients(ctx context.Context) ([]entities.Patient, error)
	CreatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error)
	UpdatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error)
	DeletePatient(ctx context.Context, id int64) error

	ListConsultations(ctx context.Context) ([]entities.Consultation, error)
	CreateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error)
	UpdateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error)
	DeleteConsultation(ctx context.Context, id int64) error

	ListRooms(ctx context.Context) ([]entities.Room, error)
	ListProfessionals(ctx context.Context) ([]entities.Professional, error)

	ListNotes(ctx context.Context) ([]entities.Note, error)
	CreateNote(ctx context.Context, note entities.Note) (*entities.Note, error)
	UpdateNote(ctx context.Context, note entities.Note) (*entities.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	ListPayments(ctx context.Context) ([]entities.Payment, error)
	CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	UpdatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	DeletePayment(ctx context.Context, id int64) error

	Login(ctx context.Context, req LoginRequest) error
	Register(ctx context.Context, req RegisterRequest) error
	Logout(ctx context.Context) error
	VerifySession(ctx context.Context) (*entities.User, error)
}

var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client against a real backend
type HTTPClient struct {
	baseURL    string
	base       *url.URL
	httpClient *http.Client
}

// New creates a client for the API at baseURL. The cookie jar plays the role
// the browser's cookie store played: it holds the session cookie and the
// CSRF token between calls.
func New(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	trimmed := strings.TrimRight(baseURL, "/")
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &HTTPClient{
		baseURL: trimmed,
		base:    parsed,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}

// csrfToken returns the current CSRF token from the cookie jar, or "" when
// the backend has not set one yet.
func (c *HTTPClient) csrfToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.base) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL + path
}

// Cookies returns the cookies currently held for the API origin, so the
// caller can carry the session across process restarts.
func (c *HTTPClient) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.base)
}

// SetCookies seeds the jar with previously saved cookies for the API origin
func (c *HTTPClient) SetCookies(cookies []*http.Cookie) {
	c.httpClient.Jar.SetCookies(c.base, cookies)
}

// doJSON performs a single request with JSON content negotiation. Transport
// failures map to TRANSPORT errors, non-2xx statuses to STATUS errors (with
// 401/403/404 refined), and a 2xx body is decoded into out when out is
// non-nil. Empty bodies are tolerated.
func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.csrfToken(); token != "" {
		req.Header.Set(csrfHeaderName, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewStatusError(
			fmt.Sprintf("practice api returned status %d", resp.StatusCode),
			resp.StatusCode,
		)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError("read response body", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
