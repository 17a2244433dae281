package vandapay

import (
	"context"
	"encoding/json"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// BankAccounts lists the merchant's registered payout
// destinations. Merchant role.
func (c *Client) BankAccounts(ctx context.Context) (*model.BankAccountList, error) {
	var payload json.RawMessage
	err := c.rest.Get(ctx, "/merchant/bank-accounts", nil, &payload)
	if err != nil {
		return nil, err
	}
	return dataset(model.UnwrapList[model.BankAccount](payload)), nil
}

// CreateBankAccount registers a payout destination. Merchant role.
// The created record comes back pending verification.
func (c *Client) CreateBankAccount(ctx context.Context, account *model.BankAccount) (*model.BankAccount, error) {
	body := struct {
		Title    string `json:"title"`
		BankName string `json:"bank_name,omitempty"`
		Iban     string `json:"iban"`
	}{
		Title:    account.Title,
		BankName: account.BankName,
		Iban:     account.Iban,
	}

	var payload json.RawMessage
	err := c.rest.Post(ctx, "/merchant/bank-accounts", &body, &payload)
	if err != nil {
		return nil, err
	}
	return model.UnwrapObject[model.BankAccount](payload), nil
}
