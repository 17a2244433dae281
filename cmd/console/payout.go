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
			Name:     "payout",
			Usage:    "Merchant settlement requests",
			Category: "wallet",
			Subcommands: []*cli.Command{
				{
					Name:  "request",
					Usage: "Request a payout to a bank account",
					Flags: []cli.Flag{
						&cli.Float64Flag{
							Name:     "amount",
							Usage:    "amount to withdraw",
							Required: true,
						},
						&cli.StringFlag{
							Name:     "account",
							Usage:    "destination bank account id",
							Required: true,
						},
					},
					Action: payoutRequestAction,
				},
				{
					Name:   "status",
					Usage:  "List payout requests with their current state",
					Action: payoutStatusAction,
				},
			},
		},
	)
}

func payoutRequestAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		amount := c.Float64("amount")
		if amount <= 0 {
			return fmt.Errorf("payout: amount must be positive")
		}

		err := env.API.PayoutRequest(ctx, amount, c.String("account"))
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("payout requested"))
		return nil

	}, model.RoleMerchant)
}

func payoutStatusAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		list, err := env.API.PayoutStatus(ctx)
		if err != nil {
			return err
		}
		if list == nil || len(list.Data) == 0 {
			fmt.Fprintln(os.Stdout, "no payout requests")
			return nil
		}

		rows := make([][]string, 0, len(list.Data))
		for _, req := range list.Data {
			rows = append(rows, []string{
				fmt.Sprintf("%d", int64(req.Id)),
				fmt.Sprintf("%.2f", float64(req.Amount)),
				req.AccountId,
				renderStatus(req.Status),
				req.CreatedAt.String(),
			})
		}
		renderTable(os.Stdout,
			[]string{"ID", "AMOUNT", "ACCOUNT", "STATUS", "CREATED"}, rows,
		)
		return nil

	}, model.RoleMerchant, model.RoleAdministrator)
}
