package vandapay

import (
	"context"
	"net/http"

	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
)

// Registration is the public company/merchant sign-up payload.
type Registration struct {
	CompanyName  string `json:"company_name,omitempty"`
	CompanyType  string `json:"company_type,omitempty"`
	MerchantName string `json:"merchant_name,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	NationalId   string `json:"national_id,omitempty"`
	City         string `json:"city,omitempty"`
	Province     string `json:"province,omitempty"`
	Password     string `json:"password"`
}

var ErrRegistrationUnavailable = errors.Unavailable(
	errors.Id("registration_unavailable"),
	errors.Message("wallet: registration service is temporarily unavailable"),
)

// RegisterCompany files a public company sign-up. No bearer required.
func (c *Client) RegisterCompany(ctx context.Context, reg *Registration) error {
	return c.register(ctx, "/public/company/register", reg)
}

// RegisterMerchant files a public merchant sign-up. No bearer required.
func (c *Client) RegisterMerchant(ctx context.Context, reg *Registration) error {
	return c.register(ctx, "/public/merchant/register", reg)
}

func (c *Client) register(ctx context.Context, path string, reg *Registration) error {
	err := c.rest.Post(ctx, path, reg, nil)
	if err == nil {
		return nil
	}
	// 404: endpoint not deployed ; 500: plugin fault.
	// Either way the sign-up service is unusable,
	// other failures surface the server message.
	if e, _ := errors.FromError(err); e != nil {
		switch e.Code {
		case http.StatusNotFound, http.StatusInternalServerError:
			return ErrRegistrationUnavailable
		}
	}
	return err
}
