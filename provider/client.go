package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
)

// Client calls the premium games provider API with the operator's API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type remoteGame struct {
	GameCode     string `json:"game_code"`
	GameName     string `json:"game_name"`
	ProviderCode string `json:"provider_code"`
	Category     string `json:"category"`
	Banner       string `json:"banner"`
}

type envelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e envelope) text(status int) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return http.StatusText(status)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var e envelope
		_ = json.Unmarshal(respBody, &e)
		return fmt.Errorf("provider: %d %s", resp.StatusCode, e.text(resp.StatusCode))
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("provider: decode %s: %w", path, err)
	}
	return nil
}

// ListGames fetches one catalog page.
func (c *Client) ListGames(ctx context.Context, q models.CatalogQuery) (*models.CatalogPage, error) {
	query := url.Values{}
	query.Set("page", strconv.FormatInt(q.Page.Number, 10))
	query.Set("limit", strconv.FormatInt(q.Page.Size, 10))
	if q.Provider != "" {
		query.Set("provider", q.Provider)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}

	var data struct {
		Data       []remoteGame `json:"data"`
		Page       int64        `json:"page"`
		TotalPages int64        `json:"total_pages"`
		Total      int64        `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/games", query, nil, &data); err != nil {
		return nil, err
	}

	page := &models.CatalogPage{
		Games:      make([]models.CatalogGame, 0, len(data.Data)),
		Page:       data.Page,
		TotalPages: data.TotalPages,
		Total:      data.Total,
	}
	if page.Page == 0 {
		page.Page = q.Page.Number
	}
	for _, g := range data.Data {
		page.Games = append(page.Games, models.CatalogGame{
			GameID:   g.GameCode,
			Name:     g.GameName,
			Provider: g.ProviderCode,
			Category: g.Category,
			Image:    g.Banner,
		})
	}
	return page, nil
}

func (c *Client) Providers(ctx context.Context) ([]models.Provider, error) {
	var data struct {
		Data []struct {
			Code string `json:"code"`
			Name string `json:"name"`
			Logo string `json:"logo"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/providers", nil, nil, &data); err != nil {
		return nil, err
	}
	providers := make([]models.Provider, 0, len(data.Data))
	for _, p := range data.Data {
		providers = append(providers, models.Provider{Code: p.Code, Name: p.Name, Logo: p.Logo})
	}
	return providers, nil
}

// LaunchURL opens a game session for the player and returns the URL to load.
func (c *Client) LaunchURL(ctx context.Context, params models.LaunchParams) (string, error) {
	payload := map[string]interface{}{
		"game_code": params.GameID,
		"user_id":   params.UserID,
		"username":  params.Username,
		"balance":   params.Balance,
	}
	var data struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/launch", nil, payload, &data); err != nil {
		return "", err
	}
	if data.URL == "" {
		return "", fmt.Errorf("provider: empty launch url for %s", params.GameID)
	}
	return data.URL, nil
}
