package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing"
)

//go:generate mockgen -source=cli.go -destination=mocks/cli.go -package=mocks

// Syncer executa as sincronizações disparadas pela linha de comando
type Syncer interface {
	RunFullSync(ctx context.Context) (*domain.SyncResult, error)
	SyncHistorical(ctx context.Context, req syncing.HistoricalRequest) (*domain.HistoricalSyncResult, error)
}

// CampaignAssembler calcula as métricas exibidas de uma campanha
type CampaignAssembler interface {
	Assemble(ctx context.Context, campaign domain.Campaign) (*domain.CampaignResponse, error)
}

// Settings são exibidos nos modos dry-run
type Settings struct {
	PeachURL    string
	DatabaseURL string
	HoursBack   int
}

type CLI struct {
	Syncer    Syncer
	Vendor    syncing.VendorIntegrator
	Assembler CampaignAssembler

	Campaigns repository.CampaignRepository
	Hourly    repository.HourlyMetricRepository
	Hierarchy repository.HierarchyRepository
	History   repository.SyncHistoryRepository

	Settings Settings
	Out      io.Writer
}

var ErrUsage = errors.New("invalid usage")

const usage = `Usage: campaign-cli <command> [flags]

Commands:
  sync             synchronize campaigns, hourly metrics and hierarchies
  sync-historical  backfill hourly metrics for a date range
  status           show database statistics and recent sync history
  debug-campaign   show everything stored for one campaign
`

// Run interpreta os argumentos (sem o nome do binário) e executa o comando
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.Out, usage)
		return ErrUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "sync":
		fs := c.flagSet(command)
		dryRun := fs.Bool("dry-run", false, "show what would be synced without executing")
		if err := fs.Parse(rest); err != nil {
			return ErrUsage
		}
		return c.Sync(ctx, *dryRun)

	case "sync-historical":
		fs := c.flagSet(command)
		var opts HistoricalOptions
		fs.StringVar(&opts.StartDate, "start-date", "", "start date (YYYY-MM-DD)")
		fs.StringVar(&opts.EndDate, "end-date", "", "end date (YYYY-MM-DD)")
		fs.IntVar(&opts.BatchHours, "batch-hours", syncing.DefaultBatchHours, "hours per API batch (max 168)")
		fs.IntVar(&opts.TestBatches, "test-batches", 0, "limit to N batches")
		fs.BoolVar(&opts.DryRun, "dry-run", false, "show the batch plan without executing")
		if err := fs.Parse(rest); err != nil {
			return ErrUsage
		}
		if opts.StartDate == "" || opts.EndDate == "" {
			fmt.Fprintln(c.Out, "ERROR: -start-date and -end-date are required")
			return ErrUsage
		}
		return c.SyncHistorical(ctx, opts)

	case "status":
		fs := c.flagSet(command)
		detailed := fs.Bool("detailed", false, "show API connectivity and hierarchy coverage")
		if err := fs.Parse(rest); err != nil {
			return ErrUsage
		}
		return c.Status(ctx, *detailed)

	case "debug-campaign":
		fs := c.flagSet(command)
		if err := fs.Parse(rest); err != nil {
			return ErrUsage
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(c.Out, "ERROR: debug-campaign expects exactly one campaign id")
			return ErrUsage
		}
		id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			fmt.Fprintf(c.Out, "ERROR: invalid campaign id %q\n", fs.Arg(0))
			return ErrUsage
		}
		return c.DebugCampaign(ctx, id)

	default:
		fmt.Fprintf(c.Out, "ERROR: unknown command %q\n\n", command)
		fmt.Fprint(c.Out, usage)
		return ErrUsage
	}
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.Out)
	return fs
}
