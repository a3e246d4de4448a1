package procurement

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/procurement-mock/internal/domain/models"
)

// Client exposes the purchase order mock operations consumers use.
type Client interface {
	ListPurchaseOrders(ctx context.Context, req ListRequest) (*models.Page, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a client against the mock's base URL, e.g. http://localhost:8080.
func NewClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &APIClient{httpClient: restyClient}
}

// ListRequest mirrors the query parameters of GET /purchase-orders. Zero values are
// omitted so the server defaults apply.
type ListRequest struct {
	StartDate   string
	EndDate     string
	CompanyCode string
	Supplier    string
	Status      string
	Limit       int
	Offset      int
}

func (r ListRequest) params() map[string]string {
	params := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}
	set("start_date", r.StartDate)
	set("end_date", r.EndDate)
	set("company_code", r.CompanyCode)
	set("supplier", r.Supplier)
	set("status", r.Status)
	if r.Limit > 0 {
		params["limit"] = strconv.Itoa(r.Limit)
	}
	if r.Offset > 0 {
		params["offset"] = strconv.Itoa(r.Offset)
	}
	return params
}

// apiError represents the mock's error payload.
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// ListPurchaseOrders fetches one page.
func (c *APIClient) ListPurchaseOrders(ctx context.Context, req ListRequest) (*models.Page, error) {
	result := new(models.Page)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(req.params()).
		SetResult(result).
		SetError(apiErr).
		Get("/purchase-orders")
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error
		if apiErr.Details != "" {
			message = fmt.Sprintf("%s (%s)", message, apiErr.Details)
		}
		return nil, &StatusError{Code: resp.StatusCode(), Message: message}
	}

	return result, nil
}

// ListAll walks pages of the given size until maxRecords are collected or the server
// reports no more pages.
func ListAll(ctx context.Context, c Client, req ListRequest, maxRecords int) ([]models.PurchaseOrder, error) {
	var out []models.PurchaseOrder
	for len(out) < maxRecords {
		page, err := c.ListPurchaseOrders(ctx, req)
		if err != nil {
			return out, err
		}
		out = append(out, page.Data...)
		if !page.Pagination.HasMore {
			break
		}
		req.Offset = page.Pagination.Offset + page.Pagination.Limit
	}
	if len(out) > maxRecords {
		out = out[:maxRecords]
	}
	return out, nil
}

// StatusError is returned when the mock answers with a 4xx or 5xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("procurement api error: code=%d, message=%s", e.Code, e.Message)
}
