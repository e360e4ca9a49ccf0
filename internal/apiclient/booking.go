package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vactrack/clinic-gateway/internal/model"
)

func (c *Client) CreateBooking(ctx context.Context, token string, booking *model.Booking) (*model.Booking, error) {
	var out model.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", token, nil, booking, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		// Some deployments echo nothing useful back; keep the gateway-minted id.
		out = *booking
	}
	return &out, nil
}

func (c *Client) AvailableSlots(ctx context.Context, token, date, facilityID string) ([]model.BookingSlot, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("facilityId", facilityID)

	var out []model.BookingSlot
	if err := c.do(ctx, http.MethodGet, "/bookings/available-slots", token, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CheckPayment(ctx context.Context, token, bookingID string) (*model.PaymentStatus, error) {
	var out model.PaymentStatus
	if err := c.do(ctx, http.MethodGet, "/payments/check/"+bookingID, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
