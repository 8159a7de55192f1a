// Package main is the entry point for the jdedit editor.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/jdedit/internal/app"
	"github.com/dshills/jdedit/internal/config"
	"github.com/dshills/jdedit/internal/project/watcher"
	"github.com/dshills/jdedit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(edit)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// cliFlags holds the command-line overrides.
type cliFlags struct {
	configPath    string
	logFile       string
	logLevel      string
	noLineNumbers bool
}

// editFunc runs the editor with a loaded configuration.
type editFunc func(cfg *config.Config, files []string) error

func newRootCmd(run editFunc) *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:   "jdedit [files...]",
		Short: "A small terminal text editor",
		Long: `jdedit edits plain text files in the terminal, one buffer per file,
with syntax highlighting and incremental search.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg, args)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "",
		fmt.Sprintf("config file (default: %s)", config.DefaultPath()))
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write diagnostics to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.noLineNumbers, "no-line-numbers", false, "start with the line number gutter hidden")

	return cmd
}

// loadConfig layers the command-line flags over the configuration file
// and environment.
func loadConfig(cmd *cobra.Command, f cliFlags) (*config.Config, error) {
	path := f.configPath
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	} else {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if f.noLineNumbers {
		cfg.Editor.LineNumbers = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// edit runs the editor on the controlling terminal.
func edit(cfg *config.Config, files []string) error {
	logger, closer, err := app.OpenLogFile(cfg.Log.File, app.ParseLogLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer closer.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	watchLog := logger.WithComponent("watcher")
	var w watcher.Watcher
	fw, err := watcher.NewFSNotifyWatcher(watcher.WithErrorHandler(func(err error) {
		watchLog.Warn("%v", err)
	}))
	if err != nil {
		watchLog.Warn("file watching disabled: %v", err)
	} else {
		w = fw
		defer fw.Close()
	}

	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Shutdown()

	// Raw mode turns Ctrl-C into a key; only external signals land here.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		sig := <-signals
		term.Shutdown()
		logger.Warn("terminated by %s", sig)
		os.Exit(1)
	}()

	editor, err := app.New(term, app.Options{
		Config:  cfg,
		Files:   files,
		Logger:  logger,
		Watcher: w,
		Version: version,
	})
	if err != nil {
		return err
	}
	return editor.Run()
}
