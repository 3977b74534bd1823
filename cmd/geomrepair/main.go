package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"safemap/config"
	logs "safemap/internal/infra/log"
	"safemap/internal/infra/persistence/postgres"
	"safemap/internal/usecase"
	"safemap/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - scan:  Report stored geometry with swapped axes
// - apply: Rewrite repairable geometry in place

const startStopTimeout = 30 * time.Second

func main() {
	scanCmd := flag.NewFlagSet("scan", flag.ExitOnError)
	applyCmd := flag.NewFlagSet("apply", flag.ExitOnError)

	scanVerbose := scanCmd.Bool("verbose", false, "Print every correction")
	applyVerbose := applyCmd.Bool("verbose", false, "Print every correction")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := repairFlags{
		Scan: modeFlags{
			cmd:     scanCmd,
			verbose: scanVerbose,
		},
		Apply: modeFlags{
			cmd:     applyCmd,
			verbose: applyVerbose,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type repairFlags struct {
	Scan  modeFlags
	Apply modeFlags
}

type modeFlags struct {
	cmd     *flag.FlagSet
	verbose *bool
}

func runSubcommand(ctx context.Context, flags *repairFlags) error {
	switch os.Args[1] {
	case "scan":
		return handleMode(ctx, &flags.Scan, false)
	case "apply":
		return handleMode(ctx, &flags.Apply, true)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMode(ctx context.Context, flags *modeFlags, apply bool) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", flags.cmd.Name())
	}

	var repairer usecase.GeometryRepairUsecase
	app := fx.New(
		fx.NopLogger,
		injectRepair(),
		fx.Populate(&repairer),
	)

	startCtx, cancelStart := context.WithTimeout(ctx, startStopTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), startStopTimeout)
		defer cancelStop()
		_ = app.Stop(stopCtx)
	}()

	report, err := repairer.Repair(ctx, apply)
	if report != nil {
		printReport(report, *flags.verbose)
	}

	return err
}

func injectRepair() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
		postgres.NewPublishedEntityRepository,
		postgres.NewSubmissionRepository,
		impl.NewGeometryRepairService,
	)
}

func printReport(report *usecase.GeometryRepairReport, verbose bool) {
	verb := "repairable"
	if report.Applied {
		verb = "corrected"
	}

	fmt.Printf("scanned %d geometries: %d %s, %d unrepairable\n",
		report.Scanned, len(report.Corrections), verb, len(report.Unrepairable))

	if verbose && len(report.Corrections) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TARGET\tID\tSWAPPED\tBEFORE\tAFTER")
		for _, c := range report.Corrections {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", c.Target, c.ID, c.Swapped, c.Before, c.After)
		}
		_ = w.Flush()
	}

	for _, f := range report.Unrepairable {
		fmt.Printf("unrepairable %s %d: %s\n", f.Target, f.ID, f.Reason)
	}
}

func printUsage() {
	fmt.Println("safemap geometry repair tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  geomrepair <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan    Report pins, zones and submissions stored with latitude/longitude swapped")
	fmt.Println("  apply   Rewrite every repairable geometry")
	fmt.Println()
	fmt.Println("Database settings are read from the service config (config.yaml and environment).")
}
