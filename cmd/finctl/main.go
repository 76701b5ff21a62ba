package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/collegefinance/internal/app/migrations"
	"github.com/yigit/collegefinance/internal/app/models"
	appRepos "github.com/yigit/collegefinance/internal/app/repositories"
	appServices "github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/bootstrap"
	"github.com/yigit/collegefinance/internal/config"
	"github.com/yigit/collegefinance/internal/db"
	"github.com/yigit/collegefinance/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("finctl failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "finctl",
		Usage: "operator tasks for the college finance database",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply pending schema migrations",
				Action: runMigrate,
			},
			{
				Name:  "reset",
				Usage: "delete all finance data and restore the default admin account",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "confirm the factory reset"},
				},
				Action: runReset,
			},
			{
				Name:  "purge",
				Usage: "delete the collections booked to one year and department",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "year", Usage: "academic year name", Required: true},
					&cli.StringFlag{Name: "dept", Usage: "department name", Required: true},
				},
				Action: runPurge,
			},
			{
				Name:   "report",
				Usage:  "print dashboard totals and the collection breakdown",
				Action: runReport,
			},
		},
	}
}

// env is what every command needs: configuration, a logger and a migrated database
type env struct {
	cfg   *config.Config
	lgr   zerolog.Logger
	pool  *pgxpool.Pool
	repos *appRepos.Repositories
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:   cfg,
		lgr:   lgr,
		pool:  database.Pool,
		repos: appRepos.NewRepositories(database.Pool),
	}, nil
}

func (e *env) close() {
	e.pool.Close()
}

func runMigrate(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return err
	}
	files, err := migrations.Files()
	if err != nil {
		return err
	}
	lgr.Info().Strs("files", files).Msg("Applying embedded migrations")
	return migrations.NewMigrator(cfg.GetPostgresConnectionString(), lgr).Up()
}

func runReset(c *cli.Context) error {
	if !c.Bool("yes") {
		return errors.New("factory reset deletes every transaction, student, year and department; rerun with --yes")
	}

	e, err := openEnv(c.Context)
	if err != nil {
		return err
	}
	defer e.close()

	svc := appServices.NewMaintenanceService(
		e.repos.MaintenanceRepository,
		e.repos.YearRepository,
		e.repos.DepartmentRepository,
		e.repos.TransactionRepository,
		e.lgr,
	)
	cleared, err := svc.FactoryReset(c.Context, e.cfg.Admin.Username, e.cfg.Admin.Password)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS DELETED")
	for _, table := range []string{"transactions", "students", "year_departments", "departments", "student_years", "app_settings"} {
		fmt.Fprintf(w, "%s\t%d\n", table, cleared[table])
	}
	fmt.Fprintf(w, "\nadmin reset to %q\n", e.cfg.Admin.Username)
	return w.Flush()
}

func runPurge(c *cli.Context) error {
	e, err := openEnv(c.Context)
	if err != nil {
		return err
	}
	defer e.close()

	svc := appServices.NewMaintenanceService(
		e.repos.MaintenanceRepository,
		e.repos.YearRepository,
		e.repos.DepartmentRepository,
		e.repos.TransactionRepository,
		e.lgr,
	)
	deleted, err := svc.PurgeCollections(c.Context, c.String("year"), c.String("dept"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted %d collection(s) for %s / %s\n", deleted, c.String("year"), c.String("dept"))
	return nil
}

func runReport(c *cli.Context) error {
	e, err := openEnv(c.Context)
	if err != nil {
		return err
	}
	defer e.close()

	svc := appServices.NewReportService(e.repos.ReportRepository)
	summary, err := svc.Dashboard(c.Context, models.DashboardFilter{})
	if err != nil {
		return err
	}
	breakdown, err := svc.Breakdown(c.Context)
	if err != nil {
		return err
	}
	return printReport(c.App.Writer, summary, breakdown)
}

func printReport(out io.Writer, summary *models.DashboardSummary, breakdown []models.BreakdownYear) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Collection\t%s\n", summary.Collection.StringFixed(2))
	fmt.Fprintf(w, "Expense\t%s\n", summary.Expense.StringFixed(2))
	fmt.Fprintf(w, "Balance\t%s\n", summary.Balance.StringFixed(2))
	fmt.Fprintf(w, "Cash / GPay\t%s / %s\n\n", summary.ModeStats.Cash.StringFixed(2), summary.ModeStats.Gpay.StringFixed(2))

	fmt.Fprintln(w, "YEAR\tDEPARTMENT\tCASH\tGPAY\tTOTAL")
	for _, year := range breakdown {
		for _, dept := range year.Departments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", year.YearName, dept.DeptName,
				dept.Cash.StringFixed(2), dept.Gpay.StringFixed(2), dept.Total.StringFixed(2))
		}
	}
	fmt.Fprintf(w, "\t\t\tGRAND TOTAL\t%s\n", appServices.BreakdownGrandTotal(breakdown).StringFixed(2))
	return w.Flush()
}
