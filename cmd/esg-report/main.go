package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/msc-hk/esg-reporter/pkg/config"
	"github.com/msc-hk/esg-reporter/pkg/taxonomy"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "esg-report",
		Short: "Generate ESG risk reports for an industry/country pair",
		Long: `esg-report turns the externally scraped results page for an industry/country
pair into the typed report model and renders it to the delivery surfaces
(screen HTML, print HTML, JSON, text). The database-backed content path is
available through the resolve command.`,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to reporter TOML configuration")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newResolveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "esg-report: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return cfg, nil
}

// loadTaxonomy returns the classification tables: the knowledge file when
// configured, the built-in defaults otherwise.
func loadTaxonomy(cfg *config.Config) (*taxonomy.Table, *taxonomy.Normalizer, error) {
	if cfg.Report.TaxonomyPath == "" {
		return taxonomy.Default(), taxonomy.NewNormalizer(), nil
	}
	return taxonomy.Load(cfg.Report.TaxonomyPath)
}
