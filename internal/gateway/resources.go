package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/cellmart/pos-client/internal/domain/entity"
)

// decodeInto unmarshals a normalized response body into out.
func decodeInto(resp *Response, out any) error {
	if len(resp.Body) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Body, out)
}

// --- auth ---

// Login exchanges credentials for a token pair and stores it.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.Do(ctx, http.MethodPost, "/auth/login/", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	if err != nil {
		return err
	}

	var out struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return fmt.Errorf("parsing login response: %w", err)
	}
	return c.creds.Set(out.Access, out.Refresh)
}

// Register creates an account. The caller still logs in afterwards.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	_, err := c.Do(ctx, http.MethodPost, "/auth/register/", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, nil)
	return err
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	resp, err := c.Do(ctx, http.MethodGet, "/auth/me/", nil, nil)
	if err != nil {
		return nil, err
	}
	user := &entity.User{}
	if err := decodeInto(resp, user); err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}
	return user, nil
}

// Logout clears the stored credentials. Purely client-side.
func (c *Client) Logout() error {
	c.cache.purge()
	return c.creds.Clear()
}

// --- sales ---

// ListSales returns sales with pagination metadata.
func (c *Client) ListSales(ctx context.Context, query url.Values) ([]entity.Sale, *Page, error) {
	resp, err := c.Get(ctx, "/sales/", query)
	if err != nil {
		return nil, nil, err
	}
	var sales []entity.Sale
	if err := decodeInto(resp, &sales); err != nil {
		return nil, nil, fmt.Errorf("parsing sales: %w", err)
	}
	return sales, resp.Page, nil
}

// SaleInvoice fetches the printable view of a sale. Always fresh, never
// cached: the invoice view is the document of record.
func (c *Client) SaleInvoice(ctx context.Context, id int64) (*entity.Sale, error) {
	resp, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/sales/%d/invoice/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	sale := &entity.Sale{}
	if err := decodeInto(resp, sale); err != nil {
		return nil, fmt.Errorf("parsing sale invoice: %w", err)
	}
	return sale, nil
}

// CompanyProfile fetches the shop identity used on invoice headers.
func (c *Client) CompanyProfile(ctx context.Context) (*entity.CompanyProfile, error) {
	resp, err := c.Get(ctx, "/company-profile/", nil)
	if err != nil {
		return nil, err
	}
	profile := &entity.CompanyProfile{}
	if err := decodeInto(resp, profile); err != nil {
		return nil, fmt.Errorf("parsing company profile: %w", err)
	}
	return profile, nil
}

// --- products ---

func (c *Client) ListProducts(ctx context.Context, query url.Values) ([]entity.Product, *Page, error) {
	resp, err := c.Get(ctx, "/products/", query)
	if err != nil {
		return nil, nil, err
	}
	var products []entity.Product
	if err := decodeInto(resp, &products); err != nil {
		return nil, nil, fmt.Errorf("parsing products: %w", err)
	}
	return products, resp.Page, nil
}

func (c *Client) CreateProduct(ctx context.Context, product *entity.Product) error {
	_, err := c.Do(ctx, http.MethodPost, "/products/", product, nil)
	return err
}

// UpdateProduct sends a partial update; fields holds only what changed.
func (c *Client) UpdateProduct(ctx context.Context, id int64, fields map[string]any) error {
	_, err := c.Do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d/", id), fields, nil)
	return err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/", id), nil, nil)
	return err
}

func (c *Client) BulkDeleteProducts(ctx context.Context, ids []int64) error {
	_, err := c.Do(ctx, http.MethodPost, "/products/bulk_delete/", map[string]any{"ids": ids}, nil)
	return err
}

func (c *Client) BulkUploadProducts(ctx context.Context, products []entity.Product) error {
	_, err := c.Do(ctx, http.MethodPost, "/products/bulk_upload/", products, nil)
	return err
}

// --- customers ---

func (c *Client) ListCustomers(ctx context.Context, query url.Values) ([]entity.Customer, *Page, error) {
	resp, err := c.Get(ctx, "/customers/", query)
	if err != nil {
		return nil, nil, err
	}
	var customers []entity.Customer
	if err := decodeInto(resp, &customers); err != nil {
		return nil, nil, fmt.Errorf("parsing customers: %w", err)
	}
	return customers, resp.Page, nil
}

func (c *Client) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	_, err := c.Do(ctx, http.MethodPost, "/customers/", customer, nil)
	return err
}

// --- dues ---

func (c *Client) ListDues(ctx context.Context, query url.Values) ([]entity.Due, *Page, error) {
	resp, err := c.Get(ctx, "/dues/", query)
	if err != nil {
		return nil, nil, err
	}
	var dues []entity.Due
	if err := decodeInto(resp, &dues); err != nil {
		return nil, nil, fmt.Errorf("parsing dues: %w", err)
	}
	return dues, resp.Page, nil
}

func (c *Client) ApproveDue(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/dues/%d/approve/", id), nil, nil)
	return err
}

func (c *Client) WriteOffDue(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/dues/%d/write_off/", id), nil, nil)
	return err
}

func (c *Client) SetDueClearance(ctx context.Context, id int64, amount decimal.Decimal) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/dues/%d/set_clearance/", id), map[string]any{"amount": amount}, nil)
	return err
}

// --- repairs ---

func (c *Client) ListRepairs(ctx context.Context, query url.Values) ([]entity.Repair, *Page, error) {
	resp, err := c.Get(ctx, "/repairs/", query)
	if err != nil {
		return nil, nil, err
	}
	var repairs []entity.Repair
	if err := decodeInto(resp, &repairs); err != nil {
		return nil, nil, fmt.Errorf("parsing repairs: %w", err)
	}
	return repairs, resp.Page, nil
}

func (c *Client) MarkRepairDead(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/repairs/%d/mark_dead/", id), nil, nil)
	return err
}

// --- notifications ---

func (c *Client) ListNotifications(ctx context.Context, query url.Values) ([]entity.Notification, *Page, error) {
	resp, err := c.Get(ctx, "/notifications/", query)
	if err != nil {
		return nil, nil, err
	}
	var notifications []entity.Notification
	if err := decodeInto(resp, &notifications); err != nil {
		return nil, nil, fmt.Errorf("parsing notifications: %w", err)
	}
	return notifications, resp.Page, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/mark_read/", id), nil, nil)
	return err
}
