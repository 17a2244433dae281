package vandapay

import (
	"context"
	"encoding/json"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// PayoutRequest files a merchant settlement request against
// a registered bank account. Merchant role.
func (c *Client) PayoutRequest(ctx context.Context, amount float64, accountId string) error {
	body := struct {
		Amount    float64 `json:"amount"`
		AccountId string  `json:"selected_account_id"`
	}{
		Amount:    amount,
		AccountId: accountId,
	}
	return c.rest.Post(ctx, "/payout/request", &body, nil)
}

// PayoutStatus lists payout requests visible to the caller.
// Merchant (or finance officer) role.
func (c *Client) PayoutStatus(ctx context.Context) (*model.PayoutList, error) {
	var payload json.RawMessage
	err := c.rest.Get(ctx, "/payout/status", nil, &payload)
	if err != nil {
		return nil, err
	}

	return dataset(model.UnwrapList[model.PayoutRequest](payload)), nil
}
