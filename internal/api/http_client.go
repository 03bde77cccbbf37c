package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"glamgirl/internal/models"
)

const defaultTimeout = 15 * time.Second

// csrfCookieName is the cookie the backend issues its anti-forgery token in.
// Mutating requests must echo it back in the X-CSRFToken header.
const csrfCookieName = "csrftoken"

// Config holds backend connection details.
type Config struct {
	// BaseURL is the backend API root, e.g. "http://127.0.0.1:8000/api".
	BaseURL string
	Timeout time.Duration
}

// HTTPClient talks to the storefront backend over HTTP. The cookie jar
// carries the backend's session cookie, which is what identifies the cart,
// so one HTTPClient equals one cart session.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    *url.URL
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a backend client with a fresh session.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPClient{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		baseURL: base,
	}, nil
}

// GetCategories lists all product categories.
func (c *HTTPClient) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/products/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetProducts lists all active products.
func (c *HTTPClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *HTTPClient) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsByCategory lists active products in one category.
func (c *HTTPClient) GetProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/products/category/%d/", categoryID)
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetCart fetches the current cart for this session.
func (c *HTTPClient) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart/", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds a product and returns the resulting full cart.
func (c *HTTPClient) AddToCart(ctx context.Context, productID, quantity int) (*models.Cart, error) {
	body := map[string]int{"product_id": productID, "quantity": quantity}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/add/", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem sets a line item's quantity and returns the full cart.
func (c *HTTPClient) UpdateCartItem(ctx context.Context, itemID, quantity int) (*models.Cart, error) {
	body := map[string]int{"quantity": quantity}
	var cart models.Cart
	path := fmt.Sprintf("/cart/update/%d/", itemID)
	if err := c.do(ctx, http.MethodPut, path, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveFromCart removes a line item and returns the full cart.
func (c *HTTPClient) RemoveFromCart(ctx context.Context, itemID int) (*models.Cart, error) {
	var cart models.Cart
	path := fmt.Sprintf("/cart/remove/%d/", itemID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ClearCart empties the cart and returns it.
func (c *HTTPClient) ClearCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/clear/", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// CreateOrder places an order from the session's cart. The backend clears
// the cart server-side on success.
func (c *HTTPClient) CreateOrder(ctx context.Context, form models.OrderForm) (*models.Order, error) {
	var resp struct {
		Message string       `json:"message"`
		Order   models.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders/create/", form, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// GetOrder fetches a placed order by id.
func (c *HTTPClient) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// csrfToken returns the anti-forgery token currently held in the jar, or ""
// when the backend has not issued one yet.
func (c *HTTPClient) csrfToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

// ensureCSRFToken makes sure the jar holds a csrftoken before a mutation.
// A cold session gets one preflight GET /cart/, which both creates the
// backend session and sets the cookie. At most one preflight per mutation.
func (c *HTTPClient) ensureCSRFToken(ctx context.Context) (string, error) {
	if token := c.csrfToken(); token != "" {
		return token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String()+"/cart/", nil)
	if err != nil {
		return "", fmt.Errorf("creating csrf preflight request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("csrf preflight: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return "", &Error{Status: resp.StatusCode, Message: "session preflight failed"}
	}
	return c.csrfToken(), nil
}

// do executes one backend call: marshal body, attach the CSRF header on
// mutations, map error payloads, decode the response into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if method != http.MethodGet {
		token, err := c.ensureCSRFToken(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("X-CSRFToken", token)
			// The backend's CSRF check also verifies the referer.
			req.Header.Set("Referer", c.baseURL.String()+"/")
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}

// parseErrorResponse converts a backend error payload into *Error.
// Business failures come as {"error": "..."}; form validation failures come
// as a field -> messages map.
func parseErrorResponse(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	json.Unmarshal(body, &payload) // best effort, fallbacks below

	msg := payload.Error
	if msg == "" {
		msg = firstFieldError(body)
	}
	if msg == "" {
		switch status {
		case http.StatusNotFound:
			msg = "Not found"
		case http.StatusBadRequest:
			msg = "Invalid request"
		default:
			msg = fmt.Sprintf("unexpected backend status %d", status)
		}
	}
	return &Error{Status: status, Message: msg}
}

// firstFieldError pulls one readable message out of a field-errors map,
// e.g. {"customer_email": ["Enter a valid email address."]}.
func firstFieldError(body []byte) string {
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for field, msgs := range fields {
		if len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", field, msgs[0])
		}
	}
	return ""
}
