package apiclient

import (
	"context"
	"net/http"

	"github.com/vactrack/clinic-gateway/internal/model"
)

func (c *Client) ListChildren(ctx context.Context, token string) ([]model.Child, error) {
	var out []model.Child
	if err := c.do(ctx, http.MethodGet, "/children", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetChild(ctx context.Context, token, id string) (*model.Child, error) {
	var out model.Child
	if err := c.do(ctx, http.MethodGet, "/children/"+id, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateChild(ctx context.Context, token string, child *model.Child) (*model.Child, error) {
	var out model.Child
	if err := c.do(ctx, http.MethodPost, "/children", token, nil, child, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateChild(ctx context.Context, token, id string, child *model.Child) (*model.Child, error) {
	var out model.Child
	if err := c.do(ctx, http.MethodPut, "/children/"+id, token, nil, child, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteChild(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/children/"+id, token, nil, nil, nil)
}
