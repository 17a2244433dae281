package console

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mrhaji1999/vandapay-sub001/cmd"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

func init() {
	cmd.Register(
		&cli.Command{
			Name:     "payment",
			Usage:    "Merchant payment requests and OTP confirmation",
			Category: "wallet",
			Subcommands: []*cli.Command{
				{
					Name:  "request",
					Usage: "Request a payment from an employee wallet",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     "national-id",
							Usage:    "employee national id",
							Required: true,
						},
						&cli.Float64Flag{
							Name:     "amount",
							Usage:    "amount to request",
							Required: true,
						},
					},
					Action: paymentRequestAction,
				},
				{
					Name:  "confirm",
					Usage: "Confirm a pending payment request with an OTP code",
					Flags: []cli.Flag{
						&cli.Int64Flag{
							Name:     "request",
							Usage:    "payment request id",
							Required: true,
						},
						&cli.StringFlag{
							Name:     "otp",
							Usage:    "one-time confirmation code",
							Required: true,
						},
					},
					Action: paymentConfirmAction,
				},
			},
		},
	)
}

func paymentRequestAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		amount := c.Float64("amount")
		if amount <= 0 {
			return fmt.Errorf("payment: amount must be positive")
		}

		req, err := env.API.PaymentRequest(ctx, c.String("national-id"), amount)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("payment requested"))
		if req != nil {
			renderField(os.Stdout, "request", fmt.Sprintf("%d", int64(req.Id)))
			renderField(os.Stdout, "amount", fmt.Sprintf("%.2f", float64(req.Amount)))
			if req.Status != "" {
				renderField(os.Stdout, "status", renderStatus(req.Status))
			}
		}
		return nil

	}, model.RoleMerchant)
}

func paymentConfirmAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		err := env.API.PaymentConfirm(ctx, c.Int64("request"), c.String("otp"))
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("payment confirmed"))
		return nil

	}, model.RoleEmployee)
}
