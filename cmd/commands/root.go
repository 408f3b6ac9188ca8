package commands

// Root command for the Cobra CLI
// Takes exactly one chart type (line, bar, pie, scatter, heatmap, all)
// and an optional --title, then renders and displays the charts

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chart-demo/internal/charts"
	"chart-demo/internal/display"
	"chart-demo/internal/features/draw"
	"chart-demo/internal/infra/config"
	logging "chart-demo/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type drawFlags struct {
	title      string
	configFile string
}

func newRootCmd() *cobra.Command {
	var flags drawFlags

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("draw [--title TITLE] {%s}", strings.Join(charts.Names(), ",")),
		Short: "AI Plotting Tool Demo - render line, bar, pie, scatter and heatmap charts",
		Long: `Renders one of five demo charts (or all of them) from synthetic data
and hands each figure to a display backend.`,
		Version:       "1.0.0",
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     charts.Names(),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.title, "title", "", "Chart title")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Config file (default ./config.yaml if present)")
	cmd.Flags().String("display", config.BackendViewer, "Display backend: viewer or none (env: CHARTDEMO_DISPLAY)")
	cmd.Flags().String("viewer", "", "Image viewer command, OS default when empty (env: CHARTDEMO_VIEWER)")
	cmd.Flags().String("log-file", "", "Write logs to this file (env: CHARTDEMO_LOG_FILE)")
	cmd.Flags().Bool("verbose", false, "Log to stderr (env: CHARTDEMO_VERBOSE)")

	return cmd
}

func runDraw(cmd *cobra.Command, args []string, flags drawFlags) error {
	// arguments are valid from here on; later errors are not usage errors
	cmd.SilenceUsage = true

	kind, err := charts.ParseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(cmd.Flags(), flags.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Setup(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level, Verbose: cfg.Log.Verbose}); err != nil {
		return err
	}
	defer logging.Sync()

	sink, err := display.New(cfg.Display)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logging.LogWarn("Failed to clean up display", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.LogInfo("Drawing charts",
		zap.String("chart_type", kind.String()),
		zap.String("title", flags.title),
		zap.String("display", cfg.Display.Backend))

	runner := &draw.Runner{
		Sink: sink,
		Out:  cmd.OutOrStdout(),
		Options: charts.Options{
			FontPaths: cfg.Render.FontPaths,
			FontSize:  cfg.Render.FontSize,
		},
	}
	return runner.Run(ctx, draw.Request{Kind: kind, Title: flags.title})
}

func Execute() error {
	return newRootCmd().Execute()
}
