package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vactrack/clinic-gateway/internal/model"
)

func (c *Client) AdminDashboard(ctx context.Context, token string) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminAppointments(ctx context.Context, token string, page, size int, status string) (*model.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if status != "" {
		q.Set("status", status)
	}

	var out model.Page
	if err := c.do(ctx, http.MethodGet, "/admin/appointments", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateAppointmentStatus(ctx context.Context, token, id, status string) error {
	return c.do(ctx, http.MethodPut, "/admin/appointments/"+id+"/status", token, nil, map[string]string{
		"status": status,
	}, nil)
}

func (c *Client) AdminVaccines(ctx context.Context, token string, page, size int) (*model.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out model.Page
	if err := c.do(ctx, http.MethodGet, "/admin/vaccines", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminCreateVaccine(ctx context.Context, token string, v *model.Vaccine) (*model.Vaccine, error) {
	var out model.Vaccine
	if err := c.do(ctx, http.MethodPost, "/admin/vaccines", token, nil, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateVaccine(ctx context.Context, token, id string, v *model.Vaccine) (*model.Vaccine, error) {
	var out model.Vaccine
	if err := c.do(ctx, http.MethodPut, "/admin/vaccines/"+id, token, nil, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteVaccine(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/vaccines/"+id, token, nil, nil, nil)
}

func (c *Client) AdminStatistics(ctx context.Context, token, period string) (map[string]interface{}, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}

	var out map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/admin/statistics", token, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminSettings(ctx context.Context, token string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/admin/settings", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminUpdateSettings(ctx context.Context, token string, settings map[string]interface{}) error {
	return c.do(ctx, http.MethodPut, "/admin/settings", token, nil, settings, nil)
}

func (c *Client) AdminFeedback(ctx context.Context, token string, page, size int) (*model.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out model.Page
	if err := c.do(ctx, http.MethodGet, "/admin/feedback", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminPublishFeedback(ctx context.Context, token, id string, published bool) error {
	return c.do(ctx, http.MethodPut, "/admin/feedback/"+id+"/publish", token, nil, map[string]bool{
		"published": published,
	}, nil)
}

func (c *Client) AdminContacts(ctx context.Context, token string, page, size int) (*model.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out model.Page
	if err := c.do(ctx, http.MethodGet, "/admin/contact", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateContactStatus(ctx context.Context, token, id, status string) error {
	return c.do(ctx, http.MethodPut, "/admin/contact/"+id+"/status", token, nil, map[string]string{
		"status": status,
	}, nil)
}
