package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shadcn-helper/internal/config"
	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/installer"
	"shadcn-helper/internal/logger"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	debug        bool
	projectDir   string
	settingsPath string

	// installerOpts are passed to installer.New; tests use them to swap out
	// subprocesses.
	installerOpts []installer.Option
}

// NewRootCommand builds the shadcn-helper command tree.
func NewRootCommand(opts ...installer.Option) *cobra.Command {
	g := &globalOptions{installerOpts: opts}

	root := &cobra.Command{
		Use:   "shadcn-helper [command]",
		Short: "Track, reinstall and edit shadcn UI components",
		Long: `shadcn-helper wraps the shadcn component generator (React, Vue or Svelte)
and records every added component in components/index.ini.

Generated components are git-ignored and can be regenerated at any time with
"install". Run "edit" on a component to detach it from regeneration and start
tracking your own changes in git.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		// Initialize logging before any subcommand runs.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(g.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return errors.UnsupportedCommand(args[0])
		},
	}

	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&g.projectDir, "dir", "C", "", "Project directory (default: current directory)")
	root.PersistentFlags().StringVarP(&g.settingsPath, "config", "c", "",
		"Settings file (default: "+config.DefaultConfigFile+" in the project directory)")

	root.AddCommand(
		newAddCommand(g),
		newEditCommand(g),
		newInstallCommand(g),
		newListCommand(g),
		newConfigCommand(g),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logger.Error("%s", errors.Format(err))
		os.Exit(1)
	}
}

// loadConfig resolves the project directory and builds the settings for it.
func (g *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir := g.projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFS, "failed to get working directory")
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFS, "failed to resolve project directory")
	}

	loader := config.NewLoader()
	if err := loader.BindFlag("debug", cmd.Root().PersistentFlags().Lookup("debug")); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to bind --debug")
	}

	cfg, err := loader.Load(dir, g.settingsPath)
	if err != nil {
		return nil, err
	}
	// The settings file or environment may turn debug on.
	logger.Init(cfg.Debug)
	return cfg, nil
}

// newInstaller loads settings and wires an Installer for the project.
func (g *globalOptions) newInstaller(cmd *cobra.Command) (*installer.Installer, error) {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return installer.New(cfg, g.installerOpts...)
}
