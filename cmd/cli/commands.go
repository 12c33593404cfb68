package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/alphaquantum/infra"
	"github.com/amirasaad/alphaquantum/infra/initializer"
	"github.com/amirasaad/alphaquantum/internal/migrations"
	"github.com/amirasaad/alphaquantum/pkg/app"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/service/jobs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// env holds what the commands need from the outside world.
type env struct {
	load         func(path string) (*config.App, error)
	initialize   func(cfg *config.App) (*initializer.Runtime, error)
	readPassword func(out io.Writer) (string, error)

	cfg *config.App
	rt  *initializer.Runtime
	app *app.App
}

// close releases the runtime. Cobra skips post-run hooks when a command
// fails, so callers also close after Execute.
func (e *env) close() error {
	if e.rt == nil {
		return nil
	}
	err := e.rt.Close()
	e.rt, e.app = nil, nil
	return err
}

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func newRootCmd(e *env) *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "alphaquantum",
		Short:         "AlphaQuantum maintenance and batch jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.load(envFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			rt, err := e.initialize(cfg)
			if err != nil {
				return fmt.Errorf("initialize dependencies: %w", err)
			}
			e.cfg, e.rt = cfg, rt
			e.app = app.New(rt.Deps, cfg)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return e.close()
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load")

	root.AddCommand(
		migrateCmd(e),
		createUserCmd(e),
		jobCmd(e, "snapshot", "Store today's portfolio snapshot for every user",
			func(ctx context.Context, r *jobs.Runner) (jobs.Report, error) { return r.Snapshot(ctx) }),
		backfillCmd(e),
		jobCmd(e, "refresh-prices", "Refresh position and watchlist prices and fire alarms",
			func(ctx context.Context, r *jobs.Runner) (jobs.Report, error) { return r.RefreshPrices(ctx) }),
		jobCmd(e, "refresh-events", "Import earnings and dividend events for watched tickers",
			func(ctx context.Context, r *jobs.Runner) (jobs.Report, error) { return r.RefreshEvents(ctx) }),
		jobCmd(e, "decrement-mortgages", "Count down one month on every active mortgage",
			func(ctx context.Context, r *jobs.Runner) (jobs.Report, error) { return r.DecrementMortgages(ctx) }),
	)
	return root
}

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if infra.IsSQLite(e.cfg.DB.Url) {
				if err := infra.AutoMigrate(e.rt.DB); err != nil {
					return err
				}
				okColor.Fprintln(out, "SQLite schema is up to date")
				return nil
			}
			sqlDB, err := e.rt.DB.DB()
			if err != nil {
				return err
			}
			if err := migrations.Up(sqlDB); err != nil {
				return err
			}
			version, dirty, err := migrations.Version(sqlDB)
			if err != nil {
				return err
			}
			okColor.Fprintf(out, "Database at version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}

func createUserCmd(e *env) *cobra.Command {
	var username, email, names, password string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if password == "" {
				p, err := e.readPassword(out)
				if err != nil {
					return err
				}
				password = p
			}
			u, err := e.app.UserService.CreateUser(cmd.Context(), username, email, password, names)
			if err != nil {
				return err
			}
			okColor.Fprintf(out, "Created user %s (%s)\n", u.Username, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&names, "names", "", "full name")
	cmd.Flags().StringVar(&password, "password", "", "password, prompted when empty")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func backfillCmd(e *env) *cobra.Command {
	var days int
	cmd := jobCmd(e, "backfill", "Write daily snapshots for past days",
		func(ctx context.Context, r *jobs.Runner) (jobs.Report, error) {
			if days == 0 {
				days = e.cfg.Jobs.BackfillDays
			}
			return r.Backfill(ctx, days)
		})
	cmd.Flags().IntVar(&days, "days", 0, "days to backfill, JOBS_BACKFILL_DAYS when zero")
	return cmd
}

type jobFunc func(ctx context.Context, r *jobs.Runner) (jobs.Report, error)

func jobCmd(e *env, name, short string, run jobFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := run(cmd.Context(), e.app.Jobs)
			infoColor.Fprintf(cmd.OutOrStdout(), "%s: users: %d, items: %d\n", name, report.Users, report.Items)
			return err
		},
	}
}

func promptPassword(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("password is required when stdin is not a terminal")
	}
	fmt.Fprint(out, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
