package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pdv/models"
)

// HTTPSaleClient talks to the sale processing API on behalf of a PDV terminal.
type HTTPSaleClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPSaleClient(baseURL, token string, timeout time.Duration) *HTTPSaleClient {
	return &HTTPSaleClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// ProcessSale posts the sale. The reply body is read whatever the status
// code, since the service answers failures as {"success": false}.
func (c *HTTPSaleClient) ProcessSale(ctx context.Context, req models.SaleRequest) (*models.SaleResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode sale: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/processar_venda", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post sale: %w", err)
	}
	defer resp.Body.Close()

	var result models.SaleResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode sale reply (status %d): %w", resp.StatusCode, err)
	}
	return &result, nil
}

// GetProduct fetches one catalog entry so its name and price can be captured
// when it is added to the cart.
func (c *HTTPSaleClient) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.getData(ctx, "/products/"+strconv.Itoa(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPSaleClient) ListProducts(ctx context.Context, page, limit int) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/products?page=%d&limit=%d", page, limit)
	if err := c.getData(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPSaleClient) getData(ctx context.Context, path string, out interface{}) error {
	httpReq, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	envelope := struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s (status %d): %w", path, resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !envelope.Success {
		return fmt.Errorf("get %s: %s", path, envelope.Message)
	}
	return json.Unmarshal(envelope.Data, out)
}

func (c *HTTPSaleClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}
