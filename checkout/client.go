package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OrderRequest is the payload sent to the order endpoint.
type OrderRequest struct {
	CartID   string      `json:"cartId,omitempty"`
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Place    string      `json:"place"`
	Items    []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type orderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Data    struct {
		Order struct {
			ID int64 `json:"id"`
		} `json:"order"`
	} `json:"data"`
}

// APIError carries the server's rejection so the form can show the
// exact message the API returned.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to the store API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// PlaceOrder submits the order and returns the new order id.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (int64, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("placing order: %w", err)
	}
	defer resp.Body.Close()

	var parsed orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("placing order: unexpected response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode >= 400 || !parsed.Success {
		message := parsed.Message
		if message == "" {
			message = fmt.Sprintf("order failed with status %d", resp.StatusCode)
		}
		return 0, &APIError{StatusCode: resp.StatusCode, Code: parsed.Code, Message: message}
	}

	return parsed.Data.Order.ID, nil
}
