package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wodanio-group/bos/internal/config"
	"github.com/wodanio-group/bos/internal/daemon"
	"github.com/wodanio-group/bos/internal/logger"
)

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	migrateCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(migrateCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg     config.Config
	err     error
	devMode bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the bos database and seed the default option records",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				log.Error().Err(err).Msg("migration failed")
				return err
			}

			nextCustomer, err := d.Customers.NextAvailableID()
			if err != nil {
				return err
			}

			nextQuote, err := d.Quotes.NextAvailableID()
			if err != nil {
				return err
			}

			log.Info().
				Str("nextCustomerId", nextCustomer).
				Str("nextQuoteId", nextQuote).
				Msg("migration complete")

			return nil
		},
	}
)
