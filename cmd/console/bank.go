package console

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mrhaji1999/vandapay-sub001/cmd"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

func init() {
	cmd.Register(
		&cli.Command{
			Name:     "accounts",
			Usage:    "Merchant payout bank accounts",
			Category: "wallet",
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "List registered payout destinations",
					Action: accountsListAction,
				},
				{
					Name:  "add",
					Usage: "Register a payout destination for verification",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     "title",
							Usage:    "account holder / display title",
							Required: true,
						},
						&cli.StringFlag{
							Name:     "iban",
							Usage:    "destination IBAN",
							Required: true,
						},
						&cli.StringFlag{
							Name:  "bank",
							Usage: "bank name",
						},
					},
					Action: accountsAddAction,
				},
			},
		},
	)
}

func accountsListAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		list, err := env.API.BankAccounts(ctx)
		if err != nil {
			return err
		}
		if list == nil || len(list.Data) == 0 {
			fmt.Fprintln(os.Stdout, "no bank accounts")
			return nil
		}

		rows := make([][]string, 0, len(list.Data))
		for _, acc := range list.Data {
			rows = append(rows, []string{
				strconv.FormatInt(acc.Id.Int64(), 10),
				acc.Title,
				acc.BankName,
				acc.Iban,
				renderStatus(acc.Status),
			})
		}
		renderTable(os.Stdout,
			[]string{"ID", "TITLE", "BANK", "IBAN", "STATUS"}, rows,
		)
		return nil

	}, model.RoleMerchant, model.RoleAdministrator)
}

func accountsAddAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		created, err := env.API.CreateBankAccount(ctx, &model.BankAccount{
			Title:    c.String("title"),
			BankName: c.String("bank"),
			Iban:     c.String("iban"),
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("bank account registered"))
		if created != nil {
			renderField(os.Stdout, "id", strconv.FormatInt(created.Id.Int64(), 10))
			if created.Status != "" {
				renderField(os.Stdout, "status", renderStatus(created.Status))
			}
		}
		return nil

	}, model.RoleMerchant, model.RoleAdministrator)
}
