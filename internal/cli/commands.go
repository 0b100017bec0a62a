package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

const (
	statusHistoryLimit  = 5
	errorListLimit      = 5
	unmappedListLimit   = 10
	debugRecentHours    = 5
	separatorWidth      = 60
	hourDisplayLayout   = "2006-01-02 15:00"
	windowDisplayLayout = "2006-01-02 15:04"
)

type HistoricalOptions struct {
	StartDate   string
	EndDate     string
	BatchHours  int
	TestBatches int
	DryRun      bool
}

func (c *CLI) Sync(ctx context.Context, dryRun bool) error {
	if dryRun {
		fmt.Fprintln(c.Out, "DRY RUN: would synchronize data from the Peach AI API")
		fmt.Fprintf(c.Out, "  API URL: %s\n", c.Settings.PeachURL)
		fmt.Fprintf(c.Out, "  Database: %s\n", c.Settings.DatabaseURL)
		fmt.Fprintf(c.Out, "  Hours back: %d\n", c.Settings.HoursBack)
		fmt.Fprintln(c.Out, "  Would sync: campaigns, hourly metrics, hierarchy mapping")
		return nil
	}

	fmt.Fprintln(c.Out, "Starting data synchronization...")
	c.separator()

	result, err := c.Syncer.RunFullSync(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: synchronization failed: %v\n", err)
		return err
	}

	fmt.Fprintf(c.Out, "SUCCESS: synchronization completed in %.2f seconds\n\n", result.DurationSeconds)
	fmt.Fprintln(c.Out, "Sync Results:")
	fmt.Fprintf(c.Out, "  Campaigns: %d inserted, %d updated\n", result.Campaigns.Inserted, result.Campaigns.Updated)
	fmt.Fprintf(c.Out, "  Hourly Metrics: %d processed, %d stored\n", result.Metrics.Processed, result.Metrics.Stored)
	fmt.Fprintf(c.Out, "  Hierarchies: %d mapped\n", result.Hierarchies.Mapped)
	fmt.Fprintf(c.Out, "  API calls: %d\n", result.APICalls)
	c.printErrors("Warnings", result.Errors)

	return nil
}

func (c *CLI) SyncHistorical(ctx context.Context, opts HistoricalOptions) error {
	req, err := syncing.NewHistoricalRequest(opts.StartDate, opts.EndDate, opts.BatchHours, opts.TestBatches)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: %v\n", err)
		return err
	}

	windows := req.Windows()
	if opts.TestBatches > 0 {
		fmt.Fprintf(c.Out, "TESTING MODE: limited to %d batches\n", opts.TestBatches)
	}

	if opts.DryRun {
		fmt.Fprintln(c.Out, "DRY RUN: would synchronize historical data")
		fmt.Fprintf(c.Out, "  Date Range: %s to %s\n", opts.StartDate, opts.EndDate)
		fmt.Fprintf(c.Out, "  Total Duration: %d hours\n", req.TotalHours())
		fmt.Fprintf(c.Out, "  Batch Size: %d hours per batch\n", req.BatchHours)
		fmt.Fprintf(c.Out, "  Total Batches: %d\n", len(windows))
		fmt.Fprintf(c.Out, "  API URL: %s\n", c.Settings.PeachURL)
		fmt.Fprintf(c.Out, "  Database: %s\n", c.Settings.DatabaseURL)
		return nil
	}

	fmt.Fprintln(c.Out, "Starting historical data synchronization...")
	c.separator()
	fmt.Fprintf(c.Out, "Date Range: %s to %s\n", opts.StartDate, opts.EndDate)
	fmt.Fprintf(c.Out, "Total Batches: %d (%d hours each)\n\n", len(windows), req.BatchHours)

	req.OnBatch = func(r syncing.BatchReport) {
		progress := float64(r.Index) / float64(r.Total) * 100
		fmt.Fprintf(c.Out, "Batch %3d/%d [%5.1f%%] | %s - %s\n", r.Index, r.Total, progress,
			r.Window.Start.Format(windowDisplayLayout), r.Window.End.Format(windowDisplayLayout))
		fmt.Fprintf(c.Out, "  + Stored %d records\n", r.Stored)
		for _, e := range r.Errors {
			fmt.Fprintf(c.Out, "  - %s\n", e)
		}
	}

	result, err := c.Syncer.SyncHistorical(ctx, req)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: historical sync failed: %v\n", err)
		return err
	}

	fmt.Fprintf(c.Out, "\nSUCCESS: historical sync completed in %.2f seconds\n", result.DurationSeconds)
	fmt.Fprintf(c.Out, "Processed %d records across %d/%d batches\n", result.TotalRecords, result.BatchesCompleted, result.TotalBatches)
	c.printErrors("Warnings", result.Errors)

	return nil
}

func (c *CLI) Status(ctx context.Context, detailed bool) error {
	total, err := c.Campaigns.GetCampaignsCount(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: failed to count campaigns: %v\n", err)
		return err
	}

	history, err := c.History.GetSyncHistory(ctx, statusHistoryLimit)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: failed to load sync history: %v\n", err)
		return err
	}

	fmt.Fprintln(c.Out, "Data Warehouse Status")
	c.separator()
	fmt.Fprintln(c.Out, "Database Statistics:")
	fmt.Fprintf(c.Out, "  Total Campaigns: %d\n", total)
	fmt.Fprintf(c.Out, "  Database: %s\n", c.Settings.DatabaseURL)

	fmt.Fprintln(c.Out, "\nRecent Sync History:")
	if len(history) == 0 {
		fmt.Fprintln(c.Out, "  No sync history found")
	}
	for _, h := range history {
		fmt.Fprintf(c.Out, "  [%s] %s - %s (%d records)\n", strings.ToUpper(h.Status), h.SyncType,
			utils.DisplayTimestamp(h.StartTime.UTC()), h.RecordsProcessed)
	}

	if !detailed {
		return nil
	}

	fmt.Fprintln(c.Out, "\nAPI Connectivity:")
	if campaigns, err := c.Vendor.FetchCampaigns(ctx); err != nil {
		fmt.Fprintf(c.Out, "  Peach AI: Unavailable (%v)\n", err)
	} else {
		fmt.Fprintf(c.Out, "  Peach AI: Healthy (%d campaigns)\n", len(campaigns))
	}

	rules, err := c.Hierarchy.GetHierarchyRules(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: failed to load hierarchy rules: %v\n", err)
		return err
	}
	fmt.Fprintln(c.Out, "\nHierarchy Mapping:")
	fmt.Fprintf(c.Out, "  Total Rules: %d\n", len(rules))

	unmapped, err := c.unmappedCampaigns(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: failed to load hierarchy mappings: %v\n", err)
		return err
	}
	fmt.Fprintf(c.Out, "\n  Unmapped Campaigns (%d):\n", len(unmapped))
	if len(unmapped) == 0 {
		fmt.Fprintln(c.Out, "    All campaigns are mapped!")
	}
	for i, campaign := range unmapped {
		if i == unmappedListLimit {
			fmt.Fprintf(c.Out, "    ... and %d more\n", len(unmapped)-unmappedListLimit)
			break
		}
		fmt.Fprintf(c.Out, "    - %s (ID: %d)\n", campaign.Name, campaign.ID)
	}

	return nil
}

// unmappedCampaigns retorna as campanhas sem mapeamento ou com rede desconhecida
func (c *CLI) unmappedCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := c.Campaigns.GetCampaigns(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	mappings, err := c.Hierarchy.GetAllHierarchies(ctx)
	if err != nil {
		return nil, err
	}

	mapped := make(map[int64]bool, len(mappings))
	for _, m := range mappings {
		mapped[m.CampaignID] = m.Network != "" && m.Network != domain.UnknownHierarchyValue
	}

	var unmapped []domain.Campaign
	for _, campaign := range campaigns {
		if !mapped[campaign.ID] {
			unmapped = append(unmapped, campaign)
		}
	}

	return unmapped, nil
}

func (c *CLI) DebugCampaign(ctx context.Context, id int64) error {
	campaign, err := c.Campaigns.GetCampaignByID(ctx, id)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: %v\n", err)
		return err
	}
	if campaign == nil {
		fmt.Fprintf(c.Out, "ERROR: campaign %d not found in database\n", id)
		return campaigning.ErrCampaignNotFound
	}

	fmt.Fprintf(c.Out, "DEBUGGING CAMPAIGN ID: %d\n", id)
	c.separator()

	description := "None"
	if campaign.Description != nil {
		description = *campaign.Description
	}
	fmt.Fprintln(c.Out, "BASIC CAMPAIGN INFO:")
	fmt.Fprintf(c.Out, "  ID: %d\n", campaign.ID)
	fmt.Fprintf(c.Out, "  Name: %s\n", campaign.Name)
	fmt.Fprintf(c.Out, "  Description: %s\n", description)
	fmt.Fprintf(c.Out, "  Is Serving: %t\n", campaign.IsServing)
	fmt.Fprintf(c.Out, "  Traffic Weight: %d\n", campaign.TrafficWeight)
	fmt.Fprintf(c.Out, "  Created: %s\n", campaign.CreatedAt)
	fmt.Fprintf(c.Out, "  Updated: %s\n", campaign.UpdatedAt)

	fmt.Fprintln(c.Out, "\nHIERARCHY MAPPING:")
	mapping, err := c.Hierarchy.GetCampaignHierarchy(ctx, id)
	switch {
	case err != nil:
		fmt.Fprintf(c.Out, "  ERROR: %v\n", err)
	case mapping == nil:
		fmt.Fprintln(c.Out, "  No hierarchy mapping found")
	default:
		fmt.Fprintf(c.Out, "  Network: %s\n", mapping.Network)
		fmt.Fprintf(c.Out, "  Domain: %s\n", mapping.Domain)
		fmt.Fprintf(c.Out, "  Placement: %s\n", mapping.Placement)
		fmt.Fprintf(c.Out, "  Targeting: %s\n", mapping.Targeting)
		fmt.Fprintf(c.Out, "  Special: %s\n", mapping.Special)
		fmt.Fprintf(c.Out, "  Confidence: %.2f\n", mapping.MappingConfidence)
		fmt.Fprintf(c.Out, "  Mapped At: %s\n", mapping.UpdatedAt)
	}

	rows, err := c.Hourly.GetHourlyData(ctx, id, domain.HourlyMetricFilters{})
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: failed to load hourly data: %v\n", err)
		return err
	}
	c.printHourlySummary(rows)

	fmt.Fprintln(c.Out, "\nCALCULATED PERFORMANCE:")
	response, err := c.Assembler.Assemble(ctx, *campaign)
	if err != nil {
		fmt.Fprintf(c.Out, "  ERROR: failed to calculate performance: %v\n", err)
		return nil
	}
	fmt.Fprintf(c.Out, "  Status: %s\n", response.Status)
	fmt.Fprintf(c.Out, "  Sessions: %d\n", response.Metrics.Sessions)
	fmt.Fprintf(c.Out, "  Registrations: %d\n", response.Metrics.Registrations)
	fmt.Fprintf(c.Out, "  Reg%%: %.2f%%\n", utils.RoundWithTwoDecimalPlace(response.Metrics.RegPercentage))
	fmt.Fprintf(c.Out, "  CC Conv%%: %.2f%%\n", utils.RoundWithTwoDecimalPlace(response.Metrics.CCConvPercentage))

	return nil
}

func (c *CLI) printHourlySummary(rows []domain.HourlyMetricRow) {
	fmt.Fprintln(c.Out, "\nMETRICS SUMMARY:")
	if len(rows) == 0 {
		fmt.Fprintln(c.Out, "  No hourly data found")
		return
	}

	var registrations, messages, media, paymentMethods, terms int64
	for _, row := range rows {
		registrations += row.Registrations
		messages += row.Messages
		media += row.Media
		paymentMethods += row.PaymentMethods
		terms += row.TermsAcceptances
	}
	fmt.Fprintf(c.Out, "  Total Registrations: %d\n", registrations)
	fmt.Fprintf(c.Out, "  Total Messages: %d\n", messages)
	fmt.Fprintf(c.Out, "  Total Media: %d\n", media)
	fmt.Fprintf(c.Out, "  Total Payment Methods: %d\n", paymentMethods)
	fmt.Fprintf(c.Out, "  Total Terms Acceptances: %d\n", terms)
	fmt.Fprintf(c.Out, "  Based on %d hourly records\n", len(rows))

	fmt.Fprintln(c.Out, "\nHOURLY DATA:")
	recent := rows
	if len(recent) > debugRecentHours {
		recent = recent[len(recent)-debugRecentHours:]
	}
	for i, row := range recent {
		hour := time.Unix(row.UnixHour*3600, 0).UTC()
		fmt.Fprintf(c.Out, "  Hour %d (%s):\n", i+1, hour.Format(hourDisplayLayout))
		fmt.Fprintf(c.Out, "    Sessions: %d\n", row.Sessions)
		fmt.Fprintf(c.Out, "    Registrations: %d\n", row.Registrations)
		fmt.Fprintf(c.Out, "    Credit Cards: %d\n", row.CreditCards)
		fmt.Fprintf(c.Out, "    Email Accounts: %d\n", row.EmailAccounts)
		fmt.Fprintf(c.Out, "    Google Accounts: %d\n", row.GoogleAccounts)
		fmt.Fprintf(c.Out, "    Total Accounts: %d\n", row.TotalAccounts)
		if row.Messages > 0 || row.TotalUserChats > 0 {
			fmt.Fprintf(c.Out, "    Messages: %d\n", row.Messages)
			fmt.Fprintf(c.Out, "    Total User Chats: %d\n", row.TotalUserChats)
		}
	}
	if len(rows) > debugRecentHours {
		fmt.Fprintf(c.Out, "  ... and %d older records\n", len(rows)-debugRecentHours)
	}
}

func (c *CLI) printErrors(title string, errs []string) {
	if len(errs) == 0 {
		return
	}

	fmt.Fprintf(c.Out, "\n%s (%d):\n", title, len(errs))
	for i, e := range errs {
		if i == errorListLimit {
			fmt.Fprintf(c.Out, "  ... and %d more\n", len(errs)-errorListLimit)
			break
		}
		fmt.Fprintf(c.Out, "  - %s\n", e)
	}
}

func (c *CLI) separator() {
	fmt.Fprintln(c.Out, strings.Repeat("=", separatorWidth))
}
