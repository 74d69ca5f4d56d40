package opay

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

	"github.com/simhonchourasia/playbet-be/models"
)

var ErrNotConfigured = errors.New("opay: base url not configured")

// Client asks the Opay validation API whether a trxid was paid to the merchant. The base URL
// and API key come from the admin settings on every call.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

func (c *Client) Validate(ctx context.Context, settings models.OpaySettings, trxID string) (*models.OpayValidation, error) {
	if settings.BaseURL == "" {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(map[string]string{
		"trxid":    trxID,
		"merchant": settings.MerchantNumber,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(settings.BaseURL, "/")+"/api/validate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", settings.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data struct {
		Status  string  `json:"status"`
		Amount  float64 `json:"amount"`
		Sender  string  `json:"sender"`
		Message string  `json:"message"`
	}
	_ = json.Unmarshal(body, &data)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return &models.OpayValidation{Valid: false}, nil
	default:
		if data.Message == "" {
			data.Message = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("opay: %d %s", resp.StatusCode, data.Message)
	}

	return &models.OpayValidation{
		Valid:  strings.EqualFold(data.Status, "success") && data.Amount > 0,
		Amount: data.Amount,
		Sender: data.Sender,
	}, nil
}
