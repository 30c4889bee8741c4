package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/msc-hk/esg-reporter/pkg/config"
	"github.com/msc-hk/esg-reporter/pkg/payment"
	"github.com/msc-hk/esg-reporter/pkg/render"
	"github.com/msc-hk/esg-reporter/pkg/reportparse"
	"github.com/msc-hk/esg-reporter/pkg/scrape"
)

// newGenerateCmd creates the generate command: parse a results page and
// render the report.
func newGenerateCmd() *cobra.Command {
	var (
		input    string
		country  string
		industry string
		format   string
		output   string
		orderRef string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Parse a results page and render the report",
		Long: `Parse the scraped results page into the section model and render it.

The input comes from a local HTML file (--input) or is fetched from the
configured source for a --country/--industry pair. When --order is given,
the payment gate decides whether the full report or the paywall renders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			table, titles, err := loadTaxonomy(cfg)
			if err != nil {
				return err
			}

			raw, err := loadInput(cmd.Context(), cfg, input, country, industry)
			if err != nil {
				return err
			}

			parser := reportparse.New(table, titles, logrus.StandardLogger())
			sections := parser.Parse(raw)
			if len(sections) == 0 {
				return fmt.Errorf("no report sections found in input; the source page shape may have drifted")
			}

			unlocked := true
			if orderRef != "" {
				if cfg.Payment.BaseURL == "" {
					return fmt.Errorf("--order given but no payment provider configured")
				}
				client := payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.APIKey, cfg.Payment.Timeout())
				unlocked = payment.NewGate(client, logrus.StandardLogger()).Unlocked(cmd.Context(), orderRef)
			}

			if format == "" {
				format = cfg.Report.Format
			}
			reportFormat, err := parseFormat(format)
			if err != nil {
				return err
			}

			title := "ESG risk report"
			if country != "" && industry != "" {
				title = fmt.Sprintf("ESG risk report: %s in %s", industry, country)
			}

			content, err := render.NewGenerator().Generate(sections, &render.Options{
				Format:   reportFormat,
				Title:    title,
				Unlocked: unlocked,
			})
			if err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(content), 0644); err != nil {
					return fmt.Errorf("failed to write report to file: %w", err)
				}
				fmt.Printf("Report written to %s\n", output)
				return nil
			}
			fmt.Print(content)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to a saved results-page HTML file")
	cmd.Flags().StringVar(&country, "country", "", "Country name (fetches from the configured source)")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry name (fetches from the configured source)")
	cmd.Flags().StringVar(&format, "format", "", "Report format (html, print, json, text)")
	cmd.Flags().StringVar(&output, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&orderRef, "order", "", "Payment order reference to check before unlocking")

	return cmd
}

// loadInput returns the raw results-page HTML from the file or the
// configured external source.
func loadInput(ctx context.Context, cfg *config.Config, input, country, industry string) (string, error) {
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	if country == "" || industry == "" {
		return "", fmt.Errorf("either --input or both --country and --industry are required")
	}
	if cfg.Scrape.BaseURL == "" {
		return "", fmt.Errorf("no scrape source configured; set [scrape] base_url or use --input")
	}

	fetcher := scrape.NewFetcher(cfg.Scrape.BaseURL, cfg.Scrape.Timeout())
	return fetcher.Fetch(ctx, country, industry)
}

// parseFormat validates the requested report format.
func parseFormat(format string) (render.Format, error) {
	switch render.Format(format) {
	case render.HTMLFormat, render.PrintFormat, render.JSONFormat, render.TextFormat:
		return render.Format(format), nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
}
