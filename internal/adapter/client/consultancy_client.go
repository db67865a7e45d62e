package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	request "motorcar_consultancy/internal/adapter/http/dto/request"
	response "motorcar_consultancy/internal/adapter/http/dto/response"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the consultancy API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("consultancy api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("consultancy api: %s (status %d)", e.Message, e.StatusCode)
}

// IConsultancyAPI is the part of the API used by the checkout flow.

type IConsultancyAPI interface {
	SelectService(ctx context.Context, service string) (response.ServiceSelectionResponse, error)
	Checkout(ctx context.Context, payload request.CheckoutRequest) (response.CheckoutResponse, error)
}

// ConsultancyClient talks JSON to the consultancy API under BaseURL (e.g.
// http://localhost:3000/api).
type ConsultancyClient struct {
	HTTP    *http.Client
	BaseURL string
}

var _ IConsultancyAPI = (*ConsultancyClient)(nil)

func NewConsultancyClient(baseURL string) *ConsultancyClient {
	return &ConsultancyClient{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *ConsultancyClient) SelectService(ctx context.Context, service string) (response.ServiceSelectionResponse, error) {
	var out response.ServiceSelectionResponse
	err := c.post(ctx, "/select-service", request.SelectServiceRequest{Service: service}, &out)
	return out, err
}

func (c *ConsultancyClient) Checkout(ctx context.Context, payload request.CheckoutRequest) (response.CheckoutResponse, error) {
	var out response.CheckoutResponse
	err := c.post(ctx, "/checkout", payload, &out)
	return out, err
}

func (c *ConsultancyClient) Contact(ctx context.Context, payload request.ContactRequest) (response.ContactResponse, error) {
	var out response.ContactResponse
	err := c.post(ctx, "/contact", payload, &out)
	return out, err
}

func (c *ConsultancyClient) Quote(ctx context.Context, payload request.QuoteRequest) (response.QuoteResponse, error) {
	var out response.QuoteResponse
	err := c.post(ctx, "/checkout/quote", payload, &out)
	return out, err
}

func (c *ConsultancyClient) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var body struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(res.Body).Decode(&body) == nil {
			apiErr.Message = body.Message
		}
		return apiErr
	}
	return json.NewDecoder(res.Body).Decode(out)
}
