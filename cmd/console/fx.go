package console

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/mrhaji1999/vandapay-sub001/cmd"
	"github.com/mrhaji1999/vandapay-sub001/config"
	"github.com/mrhaji1999/vandapay-sub001/internal/auth"
	"github.com/mrhaji1999/vandapay-sub001/internal/client/vandapay"
	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
	"github.com/mrhaji1999/vandapay-sub001/internal/session"
)

// Console command runtime
type Env struct {
	fx.In
	Config *config.Config
	Logs   *slog.Logger
	Store  *session.Store
	API    *vandapay.Client
}

func NewApp(cfg *config.Config, target *Env) *fx.App {
	return fx.New(
		fx.NopLogger,
		fx.Provide(
			func() *config.Config { return cfg },
			cmd.ProvideLogger,
			cmd.ProvideSessionStore,
			cmd.ProvideRestClient,
			cmd.ProvideAPIClient,
		),
		fx.Populate(target),
	)
}

// runPublic boots the runtime and executes [action] without
// any session requirement (login, registration).
func runPublic(c *cli.Context, action func(ctx context.Context, env *Env) error) error {
	return run(c, nil, action)
}

// runAs boots the runtime and executes [action] behind the
// role-authorization guard. Empty [required] set ⇒ any
// authenticated session passes.
func runAs(c *cli.Context, action func(ctx context.Context, env *Env) error, required ...model.Role) error {
	if required == nil {
		required = []model.Role{}
	}
	return run(c, required, action)
}

func run(c *cli.Context, required []model.Role, action func(ctx context.Context, env *Env) error) error {

	cfg, err := config.LoadConfig(c.String("config_file"))
	if err != nil {
		return err
	}

	var env Env
	app := NewApp(cfg, &env)
	if err = app.Err(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Start(ctx); err != nil {
		return err
	}
	defer app.Stop(context.Background())

	if required != nil {
		// routing guard: unauthenticated or under-privileged
		// sessions never reach the command action
		if err = auth.Authorize(env.Store.Session(), required...); err != nil {
			return exit(err)
		}
	}

	if err = action(ctx, &env); err != nil {
		return exit(err)
	}
	return nil
}

// exit shapes an operation error for terminal display.
func exit(err error) error {
	if e, ok := errors.FromError(err); ok && e != nil {
		return cli.Exit(e.String(), 1)
	}
	return err
}
