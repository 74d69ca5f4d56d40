package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
)

// Client reads device online state from the presence service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

// Status reports a device the service has never seen as offline.
func (c *Client) Status(ctx context.Context, deviceID string) (*models.PresenceStatus, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("presence: base url not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/devices/"+url.PathEscape(deviceID)+"/status", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	status := &models.PresenceStatus{DeviceID: deviceID}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return status, nil
	default:
		return nil, fmt.Errorf("presence: unexpected status %d", resp.StatusCode)
	}

	var data struct {
		Online   bool       `json:"online"`
		LastSeen *time.Time `json:"lastSeen"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("presence: decode: %w", err)
	}
	status.Online = data.Online
	status.LastSeen = data.LastSeen
	return status, nil
}
