package promodata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"promosync/internal/logger"
	"promosync/internal/services/apierr"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, token string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FetchProduct looks up a single catalog record by product code. The API
// answers with an item list; the first item is the match.
func (c *Client) FetchProduct(ctx context.Context, code string) (*Product, error) {
	reqURL := fmt.Sprintf("%s/products?code=%s", c.baseURL, url.QueryEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &apierr.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    apierr.ExtractMessage(body, resp.Status),
		}
	}

	var itemsResp struct {
		Items []Product `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&itemsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(itemsResp.Items) == 0 {
		return nil, &apierr.NotFoundError{Resource: "product", ID: code}
	}

	c.logger.Debug("Fetched product %s from Promodata", code)
	return &itemsResp.Items[0], nil
}
