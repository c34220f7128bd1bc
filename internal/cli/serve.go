package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golovatskygroup/talos-mcp/internal/audit"
	"github.com/golovatskygroup/talos-mcp/internal/catalog"
	"github.com/golovatskygroup/talos-mcp/internal/config"
	"github.com/golovatskygroup/talos-mcp/internal/logging"
	"github.com/golovatskygroup/talos-mcp/internal/server"
	"github.com/golovatskygroup/talos-mcp/internal/talosctl"
	"github.com/golovatskygroup/talos-mcp/internal/tools"
)

// serveCmd is the explicit form of the default action.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(&cfg)

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := catalog.CompileAll(); err != nil {
		return fmt.Errorf("tool catalog: %w", err)
	}

	var store *audit.Store
	if cfg.Audit.Path != "" {
		store, err = audit.Open(cfg.Audit.Path)
		if err != nil {
			return fmt.Errorf("open audit store: %w", err)
		}
		defer store.Close()
	}

	runner := talosctl.NewExecRunner(cfg.Talosctl.Path, cfg.Talosctl.Talosconfig)
	dispatcher := tools.New(runner, logger.Named("dispatcher"), store)
	srv := server.New(os.Stdin, os.Stdout, dispatcher, logger.Named("server"))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting talos-mcp",
		zap.String("talosctl", cfg.Talosctl.Path),
		zap.Bool("talosconfig_set", cfg.Talosctl.Talosconfig != ""),
		zap.Bool("audit_enabled", store != nil),
	)
	return srv.Run(ctx)
}

// applyFlags lays explicit flag values over the loaded configuration,
// giving the order flag > file > environment.
func applyFlags(cfg *config.Config) {
	if flagTalosconfig != "" {
		cfg.Talosctl.Talosconfig = flagTalosconfig
	}
	if flagTalosctlPath != "" {
		cfg.Talosctl.Path = flagTalosctlPath
	}
	if flagAuditDB != "" {
		cfg.Audit.Path = flagAuditDB
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
