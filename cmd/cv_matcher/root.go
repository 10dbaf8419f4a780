package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/cv-matcher/internal/analyzer"
	"github.com/jonathan/cv-matcher/internal/config"
	"github.com/jonathan/cv-matcher/internal/observability"
)

const app = "cv_matcher"

// appState is the state shared by every subcommand, built before any of them runs
type appState struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	engine  *analyzer.Engine
}

func newRootCmd() *cobra.Command {
	rt := &appState{}

	rootCmd := &cobra.Command{
		Use:           app,
		Short:         "Score CVs against a catalog of French job positions",
		Long:          "cv_matcher scores résumés against job positions on keywords, experience, education and certifications, ranks batches of candidates and serves the engine over a REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return rt.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&rt.cfgFile, "config", "", "a config file (YAML, JSON or TOML); defaults and CVM_* environment variables apply without one")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	rootCmd.AddCommand(
		newPositionsCmd(rt),
		newAnalyzeCmd(rt),
		newBatchCmd(rt),
		newSimulateCmd(rt),
		newValidateCmd(rt),
		newServeCmd(rt),
	)
	return rootCmd
}

// init loads the configuration, builds the logger and the engine
func (rt *appState) init() error {
	cfg, err := config.Load(rt.cfgFile)
	if err != nil {
		return err
	}
	cfg.Log.Debug = cfg.Log.Debug || viper.GetBool("debug")
	cfg.Log.JSON = cfg.Log.JSON || viper.GetBool("json")

	logger, err := observability.NewLogger(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}

	// do not bother error since the config was decoded already
	pretty, _ := json.MarshalIndent(cfg, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	rt.cfg = cfg
	rt.logger = logger
	rt.engine = analyzer.New(
		analyzer.WithCalibration(cfg.Calibration),
		analyzer.WithObserver(observability.NewZapObserver(logger)),
	)
	return nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is "-"
func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "-" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
