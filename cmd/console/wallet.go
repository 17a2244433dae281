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
			Name:     "wallet",
			Usage:    "Wallet balance and funding operations",
			Category: "wallet",
			Subcommands: []*cli.Command{
				{
					Name:   "balance",
					Usage:  "Show the wallet balance of the authenticated account",
					Action: walletBalanceAction,
				},
				{
					Name:  "charge",
					Usage: "Credit an employee wallet from the company wallet",
					Flags: []cli.Flag{
						&cli.Int64Flag{
							Name:     "user",
							Usage:    "employee user id to credit",
							Required: true,
						},
						&cli.Float64Flag{
							Name:     "amount",
							Usage:    "amount to transfer",
							Required: true,
						},
					},
					Action: walletChargeAction,
				},
				{
					Name:  "charge-bulk",
					Usage: "Credit many employee wallets from a CSV file",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     "file",
							Aliases:  []string{"f"},
							Usage:    "CSV `FILE` with national_id,amount rows",
							Required: true,
						},
					},
					Action: walletChargeBulkAction,
				},
			},
		},
	)
}

func walletBalanceAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		balance, err := env.API.WalletBalance(ctx)
		if err != nil {
			return err
		}
		if balance == nil {
			fmt.Fprintln(os.Stdout, "balance unavailable")
			return nil
		}

		renderField(os.Stdout, "user", fmt.Sprintf("%d", int64(balance.UserId)))
		renderField(os.Stdout, "balance", fmt.Sprintf("%.2f", float64(balance.Balance)))
		return nil
	})
}

func walletChargeAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		userId := c.Int64("user")
		amount := c.Float64("amount")
		if amount <= 0 {
			return fmt.Errorf("wallet: charge amount must be positive")
		}

		if err := env.API.WalletCharge(ctx, userId, amount); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "%s credited %.2f to user %d\n",
			styleOK.Render("ok ;"), amount, userId,
		)
		return nil

	}, model.RoleCompany, model.RoleAdministrator)
}

func walletChargeBulkAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		data, err := os.ReadFile(c.String("file"))
		if err != nil {
			return err
		}

		if err = env.API.WalletChargeBulk(ctx, data); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("bulk charge submitted"))
		return nil

	}, model.RoleCompany, model.RoleAdministrator)
}
