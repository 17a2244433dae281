package console

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mrhaji1999/vandapay-sub001/cmd"
	"github.com/mrhaji1999/vandapay-sub001/internal/auth"
	"github.com/mrhaji1999/vandapay-sub001/internal/session"
)

func init() {
	cmd.Register(
		&cli.Command{
			Name:     "login",
			Usage:    "Authenticate against the wallet service and persist the session",
			Category: "session",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Usage:    "account login name",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "account password",
					EnvVars: []string{"VANDAPAY_PASSWORD"},
				},
			},
			Action: loginAction,
		},
		&cli.Command{
			Name:     "logout",
			Usage:    "Destroy the persisted session",
			Category: "session",
			Action:   logoutAction,
		},
		&cli.Command{
			Name:     "whoami",
			Usage:    "Show the authenticated account profile",
			Category: "session",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "refresh",
					Usage: "refetch the profile from the service",
				},
			},
			Action: whoamiAction,
		},
	)
}

func loginAction(c *cli.Context) error {
	return runPublic(c, func(ctx context.Context, env *Env) error {

		username := c.String("username")
		password := c.String("password")
		if password == "" {
			return fmt.Errorf("login: no password given ; pass --password or set VANDAPAY_PASSWORD")
		}

		grant, err := env.API.Token(ctx, username, password)
		if err != nil {
			return err
		}

		env.Store.SetToken(grant.Token)
		if seed := grant.Seed(); seed != nil {
			// provisional identity from the grant response ;
			// superseded by the /profile fetch below
			env.Store.SetUser(seed)
		}

		res := env.Store.FetchProfile(ctx)
		switch res.Outcome {
		case session.FetchSuccess:
		case session.FetchNotFound, session.FetchTransportError:
			env.Logs.Warn("login: profile fetch failed ; session kept",
				"outcome", string(res.Outcome), "error", res.Cause,
			)
		}

		fmt.Fprintln(os.Stdout, styleOK.Render("logged in"))
		if user := env.Store.User(); user != nil {
			renderProfile(os.Stdout, user)
		}
		return nil
	})
}

func logoutAction(c *cli.Context) error {
	return runPublic(c, func(ctx context.Context, env *Env) error {
		if env.Store.Logout() {
			fmt.Fprintln(os.Stdout, "logged out")
		} else {
			fmt.Fprintln(os.Stdout, "no active session")
		}
		return nil
	})
}

func whoamiAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		user := env.Store.User()
		if user == nil || c.Bool("refresh") {
			res := env.Store.FetchProfile(ctx)
			if res.Outcome != session.FetchSuccess && res.Cause != nil {
				return res.Cause
			}
			user = env.Store.User()
		}
		if user == nil {
			return auth.ErrLoginRequired
		}

		renderProfile(os.Stdout, user)
		if claims, err := auth.DecodeClaims(env.Store.Token()); err == nil {
			if exp := claims.ExpiresAt(); !exp.IsZero() {
				renderField(os.Stdout, "token expires", exp.String())
			}
		}
		return nil
	})
}
