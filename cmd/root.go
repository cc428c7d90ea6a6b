// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/luxfi/anchor/cmd/contractcmd"
	"github.com/luxfi/anchor/cmd/networkcmd"
	"github.com/luxfi/anchor/pkg/application"
	"github.com/luxfi/anchor/pkg/config"
	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/contract"
	"github.com/luxfi/anchor/pkg/prompts"
	"github.com/luxfi/anchor/pkg/ux"
	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	app        *application.Anchor
	logFactory luxlog.Factory

	// dialer replaces ethclient in tests
	dialer contract.Dialer
	// homeDir overrides the user home directory in tests
	homeDir string

	Version        = "0.1.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Deploy compiled contracts to EVM networks",
		Long: `Anchor deploys compiled contract artifacts to an EVM network and prints
the address of the new contract.

Running anchor without a command deploys MetaAnchor to the selected network:

  anchor
  MetaAnchor deployed to: 0x5FbDB2315678afecb367f032d93F642f64180aa3

The deployer key is read from ANCHOR_PRIVATE_KEY, LUX_PRIVATE_KEY or the
accounts of the network in anchor.yaml, and prompted for on a terminal.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: createApp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return contractcmd.Deploy(cmd, constants.DefaultContractName, nil, contractcmd.OutputText)
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./anchor.yaml)")
	rootCmd.PersistentFlags().AddFlagSet(loggingFlags())
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().String(constants.ConfigNetwork, "", "network to deploy to (default localhost)")
	rootCmd.PersistentFlags().String(constants.ConfigArtifacts, "", "compiler artifacts directory (default ./artifacts)")
	_ = viper.BindPFlag(constants.ConfigNetwork, rootCmd.PersistentFlags().Lookup(constants.ConfigNetwork))
	_ = viper.BindPFlag(constants.ConfigArtifacts, rootCmd.PersistentFlags().Lookup(constants.ConfigArtifacts))
	_ = viper.BindPFlag(constants.ConfigLogLevel, rootCmd.PersistentFlags().Lookup(constants.ConfigLogLevel))

	// add sub commands
	rootCmd.AddCommand(contractcmd.NewCmd(app))
	rootCmd.AddCommand(networkcmd.NewCmd(app))

	return rootCmd
}

func loggingFlags() *pflag.FlagSet {
	set := pflag.NewFlagSet("logging", pflag.ContinueOnError)
	set.String(constants.ConfigLogLevel, "", "log level for the application")
	set.Bool("verbose", false, "Show verbose output (info level logs)")
	set.Bool("debug", false, "Show debug output (debug level logs)")
	set.Bool("quiet", false, "Show only errors (quiet mode)")
	return set
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cf := config.New()
	if err := cf.Load(cfgFile, "."); err != nil {
		return err
	}

	// --log-level may also come from ANCHOR_LOG_LEVEL or the config file
	switch {
	case cmd.Flags().Changed("debug"):
		logFactory.SetDisplayLevel(constants.CLIName, luxlog.Level(level.Debug))
	case cmd.Flags().Changed("verbose"):
		logFactory.SetDisplayLevel(constants.CLIName, luxlog.Level(level.Info))
	case cmd.Flags().Changed("quiet"):
		logFactory.SetDisplayLevel(constants.CLIName, luxlog.Level(level.Error))
	case cf.LogLevel() != "":
		lvl, err := luxlog.ToLevel(cf.LogLevel())
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cf.LogLevel(), err)
		}
		logFactory.SetDisplayLevel(constants.CLIName, lvl)
	}
	if cf.ConfigFileExists() {
		log.Debug("using config file", "config-file", cf.ConfigFileUsed())
	}

	// Interactive by default on TTY, non-interactive when:
	// ANCHOR_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompter := prompts.NewPrompterForMode(nonInteractive)
	app.Setup(baseDir, log, cf, prompter)
	app.Dial = dialer
	return nil
}

func setupEnv() (string, error) {
	home := homeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to get user home directory: %w", err)
		}
	}
	baseDir := filepath.Join(home, constants.BaseDirName)

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, perms.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}
	return baseDir, nil
}

func setupLogging(baseDir string, stdout io.Writer) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(level.Info)

	// Set default display level to WARN (quiet by default)
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/luxfi/anchor/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(constants.CLIName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// Store factory globally so we can adjust levels later
	logFactory = factory
	// User output goes to stdout, logs go to stderr
	ux.Logger = ux.NewUserLog(log, stdout)
	return log, nil
}

// run executes the command line [args] and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	viper.Reset()
	app = application.New()
	rootCmd := NewRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	defer func() {
		if logFactory != nil {
			logFactory.Close()
			logFactory = nil
		}
	}()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(), which exits with the returned code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
