package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tinyrange/learnedgl/internal/app"
	"github.com/tinyrange/learnedgl/internal/config"
	"github.com/tinyrange/learnedgl/internal/logger"
)

// Runner starts the program once the config is resolved. Tests replace it.
type Runner func(ctx context.Context, a *app.App) error

func defaultRunner(ctx context.Context, a *app.App) error {
	return a.Run(ctx)
}

// InitCLI builds the root command. A nil run uses app.Run.
func InitCLI(run Runner) *cobra.Command {
	if run == nil {
		run = defaultRunner
	}

	rootCmd := &cobra.Command{
		Use:           "learnedgl",
		Short:         "learnedgl opens an OpenGL window and clears it until Escape is pressed",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initConfig, _ := cmd.Flags().GetBool("init-config"); initConfig {
				configPath, err := config.InitConfigFile("")
				if err != nil {
					return errors.Wrap(err, "initialize config")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Config file created at: %s\n", configPath)
				return nil
			}

			cfg, v, err := config.InitConfig(cmd)
			if err != nil {
				return errors.Wrap(err, "initialize config")
			}
			if err := logger.Setup(cfg.LogLevel); err != nil {
				return err
			}
			logrus.WithField("config", v.ConfigFileUsed()).Debug("config resolved")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, app.New(cfg, v))
		},
	}

	config.BindFlags(rootCmd)
	rootCmd.AddCommand(newInfoCmd())

	return rootCmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, v, err := config.InitConfig(cmd)
			if err != nil {
				return errors.Wrap(err, "initialize config")
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if used := v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "# config file: %s\n", used)
			}
			_, err = out.Write(data)
			return err
		},
	}
}
