package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promosync/internal/logger"
	"promosync/internal/services/apierr"
)

type Client struct {
	baseURL    string
	key        string
	secret     string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(storeURL, consumerKey, consumerSecret string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(storeURL, "/") + "/wp-json/wc/v3",
		key:     consumerKey,
		secret:  consumerSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// endpoint builds an authenticated REST URL. WooCommerce accepts the consumer
// key/secret as query parameters over HTTPS.
func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("consumer_key", c.key)
	params.Set("consumer_secret", c.secret)
	return fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
}

func (c *Client) do(ctx context.Context, method, reqURL string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &apierr.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    apierr.ExtractMessage(respBody, resp.Status),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Ping issues a minimal authenticated read to verify the store is reachable
// and the credentials are accepted.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("per_page", "1")
	return c.do(ctx, http.MethodGet, c.endpoint("/products", params), nil, nil)
}

// CreateProduct creates a product resource and returns the created record.
func (c *Client) CreateProduct(ctx context.Context, product *Product) (*CreatedProduct, error) {
	var created CreatedProduct
	if err := c.do(ctx, http.MethodPost, c.endpoint("/products", nil), product, &created); err != nil {
		return nil, err
	}
	c.logger.Debug("Created WooCommerce product %d (%s)", created.ID, created.SKU)
	return &created, nil
}

// CreateVariations batch-creates variations under a parent product.
func (c *Client) CreateVariations(ctx context.Context, parentID int64, variations []Variation) error {
	payload := struct {
		Create []Variation `json:"create"`
	}{
		Create: variations,
	}

	path := fmt.Sprintf("/products/%d/variations/batch", parentID)
	if err := c.do(ctx, http.MethodPost, c.endpoint(path, nil), payload, nil); err != nil {
		return err
	}
	c.logger.Debug("Created %d variations for WooCommerce product %d", len(variations), parentID)
	return nil
}
