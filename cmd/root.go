package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/larynjahor/pushpop/internal/config"
	"github.com/larynjahor/pushpop/logging"
	"github.com/larynjahor/pushpop/pkg"
	"github.com/larynjahor/pushpop/pkg/driver"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usage = `USAGE: pushpop [filename="test.txt"]`

// Execute runs the root command against os.Args and reports any failure on
// stderr. This is called by main.main().
func Execute() error {
	return execute(context.Background(), NewRootCmd(viper.New()))
}

func execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)

	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s\n\n%s\n", err, usage)
	}

	return err
}

// reportedError has already been shown to the user.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// NewRootCmd builds the command tree around v. Each call gets its own flag
// set so tests can run it repeatedly.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "pushpop [filename]",
		Short: "Sum a file of integers through a stack and a queue",
		Long: `pushpop reads whitespace separated integers from a file onto a stack
and a queue, prints both in the order they drain, and prints their sum.
It fails if the file holds a non-integer or if the sum is negative.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("file", args[0])
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.config/pushpop/pushpop.yaml)")

	rootCmd.Flags().StringP("output", "o", config.DefaultOutput, "Output format: text, json or yaml")
	rootCmd.Flags().Bool("debug", false, "Log at debug level")
	rootCmd.Flags().String("log-file", "", "Append logs to this file instead of stderr")

	v.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	v.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
	v.BindPFlag("log-file", rootCmd.Flags().Lookup("log-file"))

	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config/pushpop"))
		}

		v.SetConfigType("yaml")
		v.SetConfigName("pushpop")
	}

	v.SetEnvPrefix("pushpop")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// it's ok if we don't have a config file, we can fall back to defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func run(cmd *cobra.Command, cfg config.Config) error {
	c, err := logging.Auto(cfg)
	if err != nil {
		return err
	}

	defer c.Close()

	ctx := cmd.Context()

	slog.DebugContext(ctx, "started pushpop", slog.String("file", cfg.File), slog.String("output", string(cfg.Format)))
	defer slog.DebugContext(ctx, "exited pushpop")

	fsys, name, err := source(cfg.File)
	if err != nil {
		return err
	}

	resp, err := driver.New(fsys).Do(ctx, &driver.Request{Name: name})
	if resp != nil {
		if err := driver.WriteResponse(cmd.OutOrStdout(), cfg.Format, resp); err != nil {
			return err
		}
	}

	if err != nil {
		slog.DebugContext(ctx, "failed to sum file", slog.String("file", cfg.File), slog.Any("err", err))
		report(cmd.ErrOrStderr(), cfg.File, err)

		return reportedError{err}
	}

	return nil
}

// source splits a path into a filesystem rooted at its directory and the
// file name within it.
func source(file string) (fs.FS, string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, "", err
	}

	return os.DirFS(filepath.Dir(abs)), filepath.Base(abs), nil
}

func report(w io.Writer, file string, err error) {
	var pathErr *fs.PathError

	switch {
	case errors.Is(err, pkg.ErrInvalidInteger):
		fmt.Fprintf(w, "invalid integer in file: %s\n\n%s\n", file, usage)
	case errors.Is(err, pkg.ErrSourceNotFound), errors.As(err, &pathErr):
		fmt.Fprintf(w, "failed to open file: %s\n\n%s\n", file, usage)
	default:
		fmt.Fprintln(w, err)
	}
}
