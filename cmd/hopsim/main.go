// hopsim runs hopdrop headless.
//
// Usage:
//
//	hopsim run <script.yaml>   - Play a scripted input recording
//	hopsim levels              - List the embedded levels
//	hopsim scores [level]      - Show recorded scores
//
// Global flags:
//
//	--config <path>  - YAML config override
//	--db <path>      - Scores database (default: ~/.hopdrop/scores.db)
//	--debug          - Log every gameplay event
package main

import (
	"fmt"
	"os"

	"github.com/automoto/hopdrop/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDBPath string
	flagDebug  bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopsim",
	Short: "Run hopdrop without a window",
	Long: `hopsim drives the hopdrop simulation from scripted input and inspects
levels and recorded scores.

Examples:
  hopsim levels
  hopsim run scripts/climb.yaml --record
  hopsim scores 01_tower`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hopsim",
		})
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}

		path, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if path != "" {
			logger.Debug("config loaded", "path", path)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopdrop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every gameplay event")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}
