// Package api is the editor's typed HTTP client for the estimate record
// service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"gyeonjeok/internal/domain/entities"
)

// ErrRequestInFlight is returned when an action is re-entered while its
// previous call has not settled. Each action carries an independent flag;
// the guard replaces request cancellation, it does not add idempotency —
// bypassing it can still create duplicate records on the server.
var ErrRequestInFlight = errors.New("request already in flight")

// APIError is a non-2xx response decoded from the service's {error} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the record service. Zero-value is not usable; construct
// with New. SetToken installs the bearer token used on authenticated calls.
type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.Mutex
	token    string
	inFlight map[string]bool
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 15 * time.Second},
		inFlight: map[string]bool{},
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignupUser is the account payload returned on signup.
type SignupUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type signupResponse struct {
	Message string     `json:"message"`
	User    SignupUser `json:"user"`
}

type supplierCollection struct {
	Suppliers []entities.Supplier `json:"suppliers"`
}

type clientCollection struct {
	Clients []entities.Client `json:"clients"`
}

type itemTemplateCollection struct {
	ItemTemplates []entities.ItemTemplate `json:"itemTemplates"`
}

type estimateCollection struct {
	Estimates []entities.EstimateRecord `json:"estimates"`
}

type estimateResult struct {
	Estimate entities.EstimateRecord `json:"estimate"`
}

func (c *Client) Signup(ctx context.Context, email, password, name string) (SignupUser, error) {
	if err := c.begin("signup"); err != nil {
		return SignupUser{}, err
	}
	defer c.end("signup")

	var out signupResponse
	err := c.do(ctx, http.MethodPost, "/signup", signupRequest{Email: email, Password: password, Name: name}, &out)
	return out.User, err
}

func (c *Client) ListSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	if err := c.begin("fetchSuppliers"); err != nil {
		return nil, err
	}
	defer c.end("fetchSuppliers")

	var out supplierCollection
	err := c.do(ctx, http.MethodGet, "/suppliers", nil, &out)
	return out.Suppliers, err
}

func (c *Client) SaveSupplier(ctx context.Context, s entities.Supplier) ([]entities.Supplier, error) {
	if err := c.begin("saveSupplier"); err != nil {
		return nil, err
	}
	defer c.end("saveSupplier")

	var out supplierCollection
	err := c.do(ctx, http.MethodPost, "/suppliers", s, &out)
	return out.Suppliers, err
}

func (c *Client) DeleteSupplier(ctx context.Context, companyName string) ([]entities.Supplier, error) {
	if err := c.begin("deleteSupplier"); err != nil {
		return nil, err
	}
	defer c.end("deleteSupplier")

	var out supplierCollection
	err := c.do(ctx, http.MethodDelete, "/suppliers/"+url.PathEscape(companyName), nil, &out)
	return out.Suppliers, err
}

func (c *Client) ListClients(ctx context.Context) ([]entities.Client, error) {
	if err := c.begin("fetchClients"); err != nil {
		return nil, err
	}
	defer c.end("fetchClients")

	var out clientCollection
	err := c.do(ctx, http.MethodGet, "/clients", nil, &out)
	return out.Clients, err
}

func (c *Client) SaveClient(ctx context.Context, cl entities.Client) ([]entities.Client, error) {
	if err := c.begin("saveClient"); err != nil {
		return nil, err
	}
	defer c.end("saveClient")

	var out clientCollection
	err := c.do(ctx, http.MethodPost, "/clients", cl, &out)
	return out.Clients, err
}

func (c *Client) DeleteClient(ctx context.Context, name string) ([]entities.Client, error) {
	if err := c.begin("deleteClient"); err != nil {
		return nil, err
	}
	defer c.end("deleteClient")

	var out clientCollection
	err := c.do(ctx, http.MethodDelete, "/clients/"+url.PathEscape(name), nil, &out)
	return out.Clients, err
}

func (c *Client) ListItemTemplates(ctx context.Context) ([]entities.ItemTemplate, error) {
	if err := c.begin("fetchItemTemplates"); err != nil {
		return nil, err
	}
	defer c.end("fetchItemTemplates")

	var out itemTemplateCollection
	err := c.do(ctx, http.MethodGet, "/item-templates", nil, &out)
	return out.ItemTemplates, err
}

func (c *Client) SaveItemTemplate(ctx context.Context, t entities.ItemTemplate) ([]entities.ItemTemplate, error) {
	if err := c.begin("saveItemTemplate"); err != nil {
		return nil, err
	}
	defer c.end("saveItemTemplate")

	var out itemTemplateCollection
	err := c.do(ctx, http.MethodPost, "/item-templates", t, &out)
	return out.ItemTemplates, err
}

func (c *Client) DeleteItemTemplate(ctx context.Context, name string) ([]entities.ItemTemplate, error) {
	if err := c.begin("deleteItemTemplate"); err != nil {
		return nil, err
	}
	defer c.end("deleteItemTemplate")

	var out itemTemplateCollection
	err := c.do(ctx, http.MethodDelete, "/item-templates/"+url.PathEscape(name), nil, &out)
	return out.ItemTemplates, err
}

func (c *Client) ListEstimates(ctx context.Context) ([]entities.EstimateRecord, error) {
	if err := c.begin("fetchEstimates"); err != nil {
		return nil, err
	}
	defer c.end("fetchEstimates")

	var out estimateCollection
	err := c.do(ctx, http.MethodGet, "/estimates", nil, &out)
	return out.Estimates, err
}

// SaveEstimate creates a new record when currentID is empty and updates the
// bound record otherwise, mirroring the editor's new-vs-loaded distinction.
func (c *Client) SaveEstimate(ctx context.Context, doc entities.EstimateDocument, currentID string) (entities.EstimateRecord, error) {
	if err := c.begin("saveEstimate"); err != nil {
		return entities.EstimateRecord{}, err
	}
	defer c.end("saveEstimate")

	method := http.MethodPost
	path := "/estimates"
	if currentID != "" {
		method = http.MethodPut
		path = "/estimates/" + url.PathEscape(currentID)
	}

	var out estimateResult
	err := c.do(ctx, method, path, doc, &out)
	return out.Estimate, err
}

func (c *Client) DeleteEstimate(ctx context.Context, id string) ([]entities.EstimateRecord, error) {
	if err := c.begin("deleteEstimate"); err != nil {
		return nil, err
	}
	defer c.end("deleteEstimate")

	var out estimateCollection
	err := c.do(ctx, http.MethodDelete, "/estimates/"+url.PathEscape(id), nil, &out)
	return out.Estimates, err
}

func (c *Client) begin(action string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[action] {
		return ErrRequestInFlight
	}
	c.inFlight[action] = true
	return nil
}

func (c *Client) end(action string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, action)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
