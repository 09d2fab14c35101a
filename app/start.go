package app

import (
	"github.com/spf13/cobra"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/daemon"
	"github.com/mcap-hotel/staffdesk/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration file

	cfg     config.Config
	err     error
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the StaffDesk web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			daemon := daemon.New(&cfg)
			if err := daemon.Start(); err != nil {
				return err
			}

			return nil
		},
	}
)
