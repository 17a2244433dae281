package vandapay

import (
	"context"
	"encoding/json"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// WalletBalance reads the authenticated user's wallet balance.
// A shape-mismatched payload degrades to nil, not an error.
func (c *Client) WalletBalance(ctx context.Context) (*model.WalletBalance, error) {
	var payload json.RawMessage
	err := c.rest.Get(ctx, "/wallet/balance", nil, &payload)
	if err != nil {
		return nil, err
	}
	return model.UnwrapObject[model.WalletBalance](payload), nil
}

// WalletCharge credits [amount] to an employee wallet. Company role.
func (c *Client) WalletCharge(ctx context.Context, userId int64, amount float64) error {
	body := struct {
		UserId int64   `json:"user_id"`
		Amount float64 `json:"amount"`
	}{
		UserId: userId,
		Amount: amount,
	}
	return c.rest.Post(ctx, "/wallet/charge", &body, nil)
}

// TransactionHistory lists the authenticated user's ledger records,
// newest first. Shape mismatch degrades to an empty dataset.
func (c *Client) TransactionHistory(ctx context.Context) (*model.TransactionList, error) {
	var payload json.RawMessage
	err := c.rest.Get(ctx, "/transactions/history", nil, &payload)
	if err != nil {
		return nil, err
	}

	return dataset(model.UnwrapList[model.Transaction](payload)), nil
}

// WalletChargeBulk uploads a CSV of per-employee charges,
// national_id and amount per row. Company role.
func (c *Client) WalletChargeBulk(ctx context.Context, csvData []byte) error {
	return c.rest.Upload(ctx, "/wallet/charge-bulk", "file", "charges.csv", csvData, nil)
}
