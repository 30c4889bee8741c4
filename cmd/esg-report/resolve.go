package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msc-hk/esg-reporter/pkg/store"
)

// newResolveCmd creates the resolve command: the database-backed content
// path that bypasses HTML scraping and terminates in the same typed model.
func newResolveCmd() *cobra.Command {
	var (
		country  string
		industry string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve report content for a pair from the embedded store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.DSN == "" {
				return fmt.Errorf("no store configured; set [store] dsn")
			}

			table, _, err := loadTaxonomy(cfg)
			if err != nil {
				return err
			}

			s, err := store.Open(cfg.Store.DSN)
			if err != nil {
				return err
			}
			defer s.Close()

			categories, err := s.RiskCategories(cmd.Context(), country, industry, table)
			if err != nil {
				return fmt.Errorf("failed to resolve report content: %w", err)
			}

			data, err := json.MarshalIndent(categories, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Country name")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry name")
	cmd.MarkFlagRequired("country")
	cmd.MarkFlagRequired("industry")

	return cmd
}
