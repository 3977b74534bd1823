package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"safemap/internal/client/moderation"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - list:    Show pending submissions
// - approve: Publish a pending submission
// - reject:  Close a pending submission

const tokenEnv = "SAFEMAP_TOKEN"

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	approveCmd := flag.NewFlagSet("approve", flag.ExitOnError)
	rejectCmd := flag.NewFlagSet("reject", flag.ExitOnError)

	listServer := listCmd.String("server", "http://localhost:8080", "safemap API base URL")
	listKind := listCmd.String("kind", "", "Submission kind (tip, pin, zone); all kinds when empty")
	listStatus := listCmd.String("status", "pending", "Status filter (pending, approved, rejected)")
	listLimit := listCmd.Int("limit", 50, "Maximum items per kind")

	approveServer := approveCmd.String("server", "http://localhost:8080", "safemap API base URL")
	approveKind := approveCmd.String("kind", "", "Submission kind (tip, pin, zone)")

	rejectServer := rejectCmd.String("server", "http://localhost:8080", "safemap API base URL")
	rejectKind := rejectCmd.String("kind", "", "Submission kind (tip, pin, zone)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := moderateFlags{
		List: listFlags{
			cmd:    listCmd,
			server: listServer,
			kind:   listKind,
			status: listStatus,
			limit:  listLimit,
		},
		Approve: decisionFlags{
			cmd:    approveCmd,
			server: approveServer,
			kind:   approveKind,
		},
		Reject: decisionFlags{
			cmd:    rejectCmd,
			server: rejectServer,
			kind:   rejectKind,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type moderateFlags struct {
	List    listFlags
	Approve decisionFlags
	Reject  decisionFlags
}

type listFlags struct {
	cmd    *flag.FlagSet
	server *string
	kind   *string
	status *string
	limit  *int
}

type decisionFlags struct {
	cmd    *flag.FlagSet
	server *string
	kind   *string
}

var allKinds = []string{"tip", "pin", "zone"}

func runSubcommand(ctx context.Context, flags *moderateFlags) error {
	switch os.Args[1] {
	case "list":
		return handleList(ctx, flags)
	case "approve":
		return handleDecision(ctx, &flags.Approve, moderation.CommandApprove)
	case "reject":
		return handleDecision(ctx, &flags.Reject, moderation.CommandReject)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleList(ctx context.Context, flags *moderateFlags) error {
	if err := flags.List.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse list flags")
	}

	client, err := newClient(*flags.List.server)
	if err != nil {
		return err
	}

	kinds := allKinds
	if *flags.List.kind != "" {
		kinds = []string{*flags.List.kind}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tCITY\tSTATUS\tTITLE\tSUBMITTED")
	for _, kind := range kinds {
		items, err := client.List(ctx, kind, *flags.List.status, *flags.List.limit)
		if err != nil {
			return errors.Wrapf(err, "failed to list %s submissions", kind)
		}
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\n",
				it.Kind, it.ID, it.CityID, it.Status, it.Title, it.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	return errors.Wrap(w.Flush(), "failed to write listing")
}

// handleDecision runs the command through a one-item queue so a refused
// decision reports whether the listing is stale.
func handleDecision(ctx context.Context, flags *decisionFlags, cmd moderation.Command) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", cmd)
	}

	if *flags.kind == "" {
		return errors.Errorf("--kind flag is required for %s command", cmd)
	}
	if flags.cmd.NArg() != 1 {
		return errors.Errorf("%s takes exactly one submission ID", cmd)
	}

	id, err := strconv.ParseInt(flags.cmd.Arg(0), 10, 64)
	if err != nil || id <= 0 {
		return errors.Errorf("invalid submission ID %q", flags.cmd.Arg(0))
	}

	client, err := newClient(*flags.server)
	if err != nil {
		return err
	}

	queue := moderation.NewQueue(client)
	queue.Track(moderation.Item{ID: id, Kind: *flags.kind})

	if err := queue.Act(ctx, id, cmd); err != nil {
		if queue.NeedsRefresh() {
			return errors.Wrapf(err, "%s %d was already handled", *flags.kind, id)
		}

		return errors.Wrapf(err, "failed to %s %s %d", cmd, *flags.kind, id)
	}

	fmt.Printf("%s %s %d: done\n", cmd, *flags.kind, id)

	return nil
}

func newClient(server string) (*moderation.Client, error) {
	token := os.Getenv(tokenEnv)
	if token == "" {
		return nil, errors.Errorf("%s must hold a guardian or admin token", tokenEnv)
	}

	return moderation.NewClient(server, token)
}

func printUsage() {
	fmt.Println("safemap moderation tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  moderate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  list      Show submissions awaiting review")
	fmt.Println("  approve   Publish a pending submission")
	fmt.Println("  reject    Close a pending submission")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  moderate list --kind pin")
	fmt.Println("  moderate approve --kind zone 42")
	fmt.Println("  moderate reject --kind tip --server https://safemap.example 7")
	fmt.Println()
	fmt.Printf("The bearer token is read from %s.\n", tokenEnv)
}
