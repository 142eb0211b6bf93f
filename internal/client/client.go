package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// defaultTimeout — таймаут HTTP-запросов к платформе.
	defaultTimeout = 30 * time.Second

	// maxErrorBody — предел чтения тела ошибочного ответа.
	maxErrorBody = 64 * 1024
)

// Config — параметры подключения к платформе.
type Config struct {
	// Address — базовый URL REST API платформы.
	Address string

	// Token — bearer-токен; пустой — запросы без Authorization.
	Token string

	// Insecure — отключает проверку TLS-сертификата платформы.
	Insecure bool

	// Timeout — таймаут запросов; 0 — defaultTimeout.
	Timeout time.Duration
}

// Client — HTTP-клиент платформы Dirigent.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New создаёт клиент платформы.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	var transport http.RoundTripper
	if cfg.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Address, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// --- Deployments ---

// CreateDeployment загружает набор ресурсов одним атомарным деплоем.
// Части multipart-формы идут в переданном порядке.
func (c *Client) CreateDeployment(ctx context.Context, tenantID string, resources []DeploymentResource) (*DeploymentResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if tenantID != "" {
		if err := mw.WriteField("tenantId", tenantID); err != nil {
			return nil, fmt.Errorf("encode tenant field: %w", err)
		}
	}

	for _, r := range resources {
		part, err := mw.CreatePart(resourceHeader(r))
		if err != nil {
			return nil, fmt.Errorf("encode resource %s: %w", r.Name, err)
		}
		if _, err := part.Write(r.Content); err != nil {
			return nil, fmt.Errorf("encode resource %s: %w", r.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/deployments", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var dr DeploymentResponse
	if err := c.send(req, &dr); err != nil {
		return nil, err
	}
	return &dr, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// resourceHeader собирает заголовки multipart-части ресурса.
func resourceHeader(r DeploymentResource) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="resources"; filename="%s"`, quoteEscaper.Replace(r.Name)))
	h.Set("Content-Type", r.ContentType)
	return h
}

// --- Instances ---

// CreateInstance запускает новый экземпляр процесса.
func (c *Client) CreateInstance(ctx context.Context, req CreateInstanceRequest) (*InstanceResponse, error) {
	var inst InstanceResponse
	if err := c.postJSON(ctx, "/api/v1/instances", req, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// GetInstance возвращает экземпляр процесса по ключу.
func (c *Client) GetInstance(ctx context.Context, key string) (*InstanceResponse, error) {
	var inst InstanceResponse
	if err := c.getJSON(ctx, "/api/v1/instances/"+key, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// CancelInstance отменяет выполняющийся экземпляр процесса.
func (c *Client) CancelInstance(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/instances/"+key+"/cancel", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.send(req, nil)
}

// --- HTTP helpers ---

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.send(req, result)
}

func (c *Client) postJSON(ctx context.Context, path string, body, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, result)
}

// send выполняет запрос, проверяет статус и декодирует тело в result.
// Каждый запрос получает X-Request-Id и, при наличии токена, Authorization.
func (c *Client) send(req *http.Request, result any) error {
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkError(resp); err != nil {
		return err
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
