package console

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mrhaji1999/vandapay-sub001/cmd"
	"github.com/mrhaji1999/vandapay-sub001/internal/client/vandapay"
)

func init() {
	cmd.Register(
		&cli.Command{
			Name:     "register",
			Usage:    "Public company and merchant registration",
			Category: "session",
			Subcommands: []*cli.Command{
				{
					Name:  "company",
					Usage: "Register a new company account",
					Flags: append([]cli.Flag{
						&cli.StringFlag{
							Name:     "name",
							Usage:    "company name",
							Required: true,
						},
						&cli.StringFlag{
							Name:  "type",
							Usage: "company legal type",
						},
					}, registrationFlags...),
					Action: registerCompanyAction,
				},
				{
					Name:  "merchant",
					Usage: "Register a new merchant account",
					Flags: append([]cli.Flag{
						&cli.StringFlag{
							Name:     "name",
							Usage:    "merchant (store) name",
							Required: true,
						},
						&cli.StringFlag{
							Name:  "national-id",
							Usage: "owner national id",
						},
					}, registrationFlags...),
					Action: registerMerchantAction,
				},
			},
		},
	)
}

var registrationFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "email",
		Usage:    "contact email address",
		Required: true,
	},
	&cli.StringFlag{
		Name:     "phone",
		Usage:    "contact phone number",
		Required: true,
	},
	&cli.StringFlag{
		Name:     "password",
		Usage:    "account password",
		EnvVars:  []string{"VANDAPAY_PASSWORD"},
		Required: true,
	},
	&cli.StringFlag{
		Name:  "contact",
		Usage: "contact person name",
	},
	&cli.StringFlag{
		Name:  "city",
		Usage: "city",
	},
	&cli.StringFlag{
		Name:  "province",
		Usage: "province",
	},
}

func registration(c *cli.Context) *vandapay.Registration {
	return &vandapay.Registration{
		ContactName: c.String("contact"),
		Email:       c.String("email"),
		Phone:       c.String("phone"),
		City:        c.String("city"),
		Province:    c.String("province"),
		Password:    c.String("password"),
	}
}

func registerCompanyAction(c *cli.Context) error {
	return runPublic(c, func(ctx context.Context, env *Env) error {

		reg := registration(c)
		reg.CompanyName = c.String("name")
		reg.CompanyType = c.String("type")

		if err := env.API.RegisterCompany(ctx, reg); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("company registration submitted"))
		return nil
	})
}

func registerMerchantAction(c *cli.Context) error {
	return runPublic(c, func(ctx context.Context, env *Env) error {

		reg := registration(c)
		reg.MerchantName = c.String("name")
		reg.NationalId = c.String("national-id")

		if err := env.API.RegisterMerchant(ctx, reg); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("merchant registration submitted"))
		return nil
	})
}
