package vandapay

import (
	"context"
	"encoding/json"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// PaymentRequest opens a merchant → employee payment request ;
// the employee receives an OTP to confirm it. Merchant role.
func (c *Client) PaymentRequest(ctx context.Context, nationalId string, amount float64) (*model.PaymentRequest, error) {
	body := struct {
		NationalId string  `json:"national_id"`
		Amount     float64 `json:"amount"`
	}{
		NationalId: nationalId,
		Amount:     amount,
	}

	var payload json.RawMessage
	err := c.rest.Post(ctx, "/payment/request", &body, &payload)
	if err != nil {
		return nil, err
	}
	return model.UnwrapObject[model.PaymentRequest](payload), nil
}

// PaymentConfirm settles a pending payment request with the
// employee's OTP code. Employee role.
func (c *Client) PaymentConfirm(ctx context.Context, requestId int64, otpCode string) error {
	body := struct {
		RequestId int64  `json:"request_id"`
		OtpCode   string `json:"otp_code"`
	}{
		RequestId: requestId,
		OtpCode:   otpCode,
	}
	return c.rest.Post(ctx, "/payment/confirm", &body, nil)
}
