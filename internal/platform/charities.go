package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
)

// Charities is the gateway for donation campaigns. Charities bypass
// the review workflow entirely: staff list them and delete stale ones.
type Charities struct {
	client *Client
}

func NewCharities(client *Client) *Charities {
	return &Charities{client: client}
}

func (c *Charities) List(ctx context.Context, filters ListFilters) ([]model.Charity, error) {
	var charities []model.Charity
	if err := c.client.getJSON(ctx, "/"+string(model.DomainCharity), filters.query(), &charities); err != nil {
		return nil, err
	}
	return charities, nil
}

// Delete removes a charity. The caller drops it from the local list
// immediately on success.
func (c *Charities) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/%s/%d", model.DomainCharity, id)
	return c.client.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}
