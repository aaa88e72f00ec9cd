// Package client implements ui.ProductAPI over HTTP: it is the Go rendition
// of the browser's fetch calls against the product API.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inventario/internal/models"
)

// ErrNotFound reports a 404 from the API.
var ErrNotFound = errors.New("producto no encontrado")

// StatusError is a non-success response other than 404, carrying the
// server's error message when one was returned.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("respuesta inesperada del servidor: %d", e.Status)
}

// Client is an HTTP client for the product API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:3000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches the full product collection.
func (c *Client) List() ([]models.Product, error) {
	var products []models.Product
	if err := c.do(http.MethodGet, "/api/products", nil, http.StatusOK, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get fetches a single product by ID.
func (c *Client) Get(id int64) (*models.Product, error) {
	var product models.Product
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, http.StatusOK, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create posts a new product and returns the created record.
func (c *Client) Create(input models.CreateProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(http.MethodPost, "/api/products", input, http.StatusCreated, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update puts a partial update and returns the updated record.
func (c *Client) Update(id int64, input models.UpdateProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/products/%d", id), input, http.StatusOK, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product by ID.
func (c *Client) Delete(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, http.StatusOK, nil)
}

func (c *Client) do(method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("la solicitud no se pudo completar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		return &StatusError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}
