package console

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mrhaji1999/vandapay-sub001/cmd"
	"github.com/mrhaji1999/vandapay-sub001/internal/auth"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

func init() {
	cmd.Register(
		&cli.Command{
			Name:     "employees",
			Usage:    "Company employee roster",
			Category: "wallet",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List the company's employees with their wallet balances",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "query",
							Usage: "filter the roster by name or e-mail",
						},
					},
					Action: employeesListAction,
				},
				{
					Name:  "search",
					Usage: "Resolve one employee by national id",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     "national-id",
							Usage:    "employee national id",
							Required: true,
						},
					},
					Action: employeesSearchAction,
				},
			},
		},
	)
}

func employeesListAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		user := env.Store.User()
		if user == nil {
			if res := env.Store.FetchProfile(ctx); res.Cause != nil {
				return res.Cause
			}
			user = env.Store.User()
		}
		if user == nil {
			return auth.ErrLoginRequired
		}

		var query url.Values
		if q := c.String("query"); q != "" {
			query = url.Values{"search": []string{q}}
		}

		list, err := env.API.Employees(ctx, user.Id, query)
		if err != nil {
			return err
		}
		if list == nil || len(list.Data) == 0 {
			fmt.Fprintln(os.Stdout, "no employees")
			return nil
		}

		rows := make([][]string, 0, len(list.Data))
		for _, emp := range list.Data {
			rows = append(rows, []string{
				strconv.FormatInt(emp.Id.Int64(), 10),
				emp.Name,
				emp.Email,
				emp.NationalId,
				strconv.FormatFloat(float64(emp.Balance), 'f', 2, 64),
				renderStatus(emp.Status),
			})
		}
		renderTable(os.Stdout,
			[]string{"ID", "NAME", "EMAIL", "NATIONAL ID", "BALANCE", "STATUS"}, rows,
		)
		return nil

	}, model.RoleCompany, model.RoleAdministrator)
}

func employeesSearchAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		emp, err := env.API.SearchEmployee(ctx, c.String("national-id"))
		if err != nil {
			return err
		}

		renderField(os.Stdout, "id", strconv.FormatInt(emp.Id.Int64(), 10))
		renderField(os.Stdout, "name", emp.Name)
		renderField(os.Stdout, "email", emp.Email)
		renderField(os.Stdout, "national id", emp.NationalId)
		if emp.Status != "" {
			renderField(os.Stdout, "status", renderStatus(emp.Status))
		}
		return nil

	}, model.RoleCompany, model.RoleMerchant, model.RoleAdministrator)
}
