package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Artem-be/HRTest/internal/domain"
)

// Client — HTTP-клиент бэкенда (/usercontrol/). Таймауты на конкретный
// вызов задает контекст вызывающего.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, opts ...func(*Client)) *Client {
	c := &Client{
		BaseURL:    "http://localhost:8080/usercontrol/",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	if strings.TrimSpace(baseURL) != "" {
		c.BaseURL = baseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

type leadPayload struct {
	TgID        int64  `json:"tg_id"`
	Name        string `json:"name"`
	NumberPhone string `json:"number_phone"`
	Service     string `json:"service"`
}

type activityPayload struct {
	UserID int64  `json:"user_id"`
	Action string `json:"action"`
}

// SendLead создает заявку через POST create_or_update/.
func (c *Client) SendLead(ctx context.Context, lead domain.Lead) error {
	if c == nil {
		return errors.New("backendapi client is nil")
	}
	payload := leadPayload{
		TgID:        lead.TgID,
		Name:        lead.Name,
		NumberPhone: lead.Phone,
		Service:     lead.Service,
	}
	return c.post(ctx, "create_or_update/", payload)
}

// LogActivity пишет одно действие пользователя через POST log_activity/.
func (c *Client) LogActivity(ctx context.Context, userID int64, action string) error {
	if c == nil {
		return errors.New("backendapi client is nil")
	}
	return c.post(ctx, "log_activity/", activityPayload{UserID: userID, Action: action})
}

// DailyStats читает GET daily_stats/.
func (c *Client) DailyStats(ctx context.Context) (domain.DailyStats, error) {
	var stats domain.DailyStats
	if c == nil {
		return stats, errors.New("backendapi client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("daily_stats/"), nil)
	if err != nil {
		return stats, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return stats, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return stats, non2xxError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// бэкенд отвечает 201; успешным считаем любой 2xx
	if resp.StatusCode/100 != 2 {
		return non2xxError(resp)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + path
}

func non2xxError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("backend non-2xx: %d: %s", resp.StatusCode, string(body))
}
