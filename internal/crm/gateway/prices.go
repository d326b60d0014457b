package gateway

import (
	"context"
	"net/http"
	"net/url"

	"ftts-booking/internal/booking/models"
)

// GetPriceList fetches the priced product for a test type in an agency's
// price level.
func (c *Client) GetPriceList(ctx context.Context, target models.Target, testType models.TestType) (models.PriceListItem, error) {
	var item models.PriceListItem
	path := "/price-lists/" + url.PathEscape(string(target)) + "/" + url.PathEscape(string(testType))
	err := c.doJSON(ctx, http.MethodGet, path, nil, &item)
	return item, err
}

// GetEligibility fetches the candidate's eligibility window for a test type.
func (c *Client) GetEligibility(ctx context.Context, licenceNumber string, testType models.TestType) (models.Eligibility, error) {
	var window models.Eligibility
	path := "/eligibility/" + url.PathEscape(licenceNumber) + "?testType=" + url.QueryEscape(string(testType))
	err := c.doJSON(ctx, http.MethodGet, path, nil, &window)
	return window, err
}
