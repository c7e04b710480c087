package tenantservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с TenantService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента TenantService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTenant получает тенанта по ID
func (c *Client) GetTenant(ctx context.Context, tenantID int64) (*Tenant, error) {
	url := fmt.Sprintf("%s/internal/tenants/%d", c.baseURL, tenantID)

	var tenant Tenant
	if err := c.getJSON(ctx, url, &tenant, ErrTenantNotFound); err != nil {
		return nil, err
	}

	return &tenant, nil
}

// GetStaffMembers получает список активных сотрудников тенанта
func (c *Client) GetStaffMembers(ctx context.Context, tenantID int64) ([]StaffMember, error) {
	url := fmt.Sprintf("%s/internal/tenants/%d/staff", c.baseURL, tenantID)

	var staff []StaffMember
	if err := c.getJSON(ctx, url, &staff, ErrTenantNotFound); err != nil {
		return nil, err
	}

	// Неактивные сотрудники не участвуют в расчёте доступности
	active := make([]StaffMember, 0, len(staff))
	for _, member := range staff {
		if member.IsActive {
			active = append(active, member)
		}
	}

	return active, nil
}

// GetStaffMember получает одного сотрудника тенанта
func (c *Client) GetStaffMember(ctx context.Context, tenantID, staffID int64) (*StaffMember, error) {
	url := fmt.Sprintf("%s/internal/tenants/%d/staff/%d", c.baseURL, tenantID, staffID)

	var member StaffMember
	if err := c.getJSON(ctx, url, &member, ErrStaffNotFound); err != nil {
		return nil, err
	}

	return &member, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ.
// notFoundErr возвращается на 404.
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
