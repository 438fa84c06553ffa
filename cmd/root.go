package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/escan-mcp/internal/config"
	"github.com/Mohsinsiddi/escan-mcp/internal/etherscan"
	"github.com/Mohsinsiddi/escan-mcp/internal/logging"
	"github.com/Mohsinsiddi/escan-mcp/internal/server"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/escan-mcp/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command. Running it with no sub-command starts
// the MCP server on stdio.
var rootCmd = &cobra.Command{
	Use:   "escan-mcp",
	Short: "Etherscan MCP server",
	Long: `escan-mcp — MCP server exposing Etherscan-family explorer APIs as tools.

  Balances, transactions, token transfers, verified contract source and
  ABI, read-only contract execution with full call-data encoding and
  result decoding — across every chain the unified V2 API supports.

Requires an Etherscan API key via ETHERSCAN_API_KEY or the config file.
The server speaks MCP on stdin/stdout; logs go to stderr.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logging.Init(level)

	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []etherscan.Option{
		etherscan.WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
		etherscan.WithLogger(log),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, etherscan.WithBaseURL(cfg.BaseURL))
	}
	client, err := etherscan.NewClient(cfg.APIKey, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	srv := server.NewServer(client, cfg.DefaultChainID, Version, log)
	return srv.ServeStdio()
}

func init() {
	// ESCAN_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("ESCAN_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.escan-mcp)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		serveCmd,
		chainsCmd,
	)
}
