// Package main provides the sdx binary entry point.
// sdx compiles SHACL shapes into a GraphQL schema and, optionally, a gqlgen
// SDK for it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/sdx/compiler"
	"github.com/syssam/sdx/compiler/gen"
	"github.com/syssam/sdx/config"
	"github.com/syssam/sdx/contrib/graphql"
)

const (
	Version = "0.1.0"
	appName = "sdx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags shared by every command.
type flags struct {
	dir      string
	logLevel string
}

func rootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Compile SHACL shapes into a GraphQL schema",
		Long: `sdx reads SHACL node shapes from Turtle or N-Triples documents and
prints a GraphQL schema with query and mutation types for them.

Configuration is read from sdx.yaml in the project directory or one of its
parents, layered over the built-in defaults.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&f.dir, "dir", "C", ".", "Project directory to search for sdx.yaml")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(generateCmd(&f), sdkCmd(&f), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func generateCmd(f *flags) *cobra.Command {
	var (
		watch bool
		sdk   bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the GraphQL schema from the shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts, err := compilerOptions(cfg, logger)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if !watch {
				if _, err := compiler.Generate(ctx, opts); err != nil {
					return err
				}
				if sdk {
					return generateSDK(cfg, logger)
				}
				return nil
			}
			err = compiler.Watch(ctx, opts, func(res *compiler.Result, err error) {
				if err != nil {
					logger.Error("generate failed", slog.String("error", err.Error()))
					return
				}
				if sdk && !res.Removed {
					if err := generateSDK(cfg, logger); err != nil {
						logger.Error("sdk generation failed", slog.String("error", err.Error()))
					}
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever a shape document changes")
	cmd.Flags().BoolVar(&sdk, "sdk", false, "Run gqlgen after the schema was generated")
	return cmd
}

func sdkCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "sdk",
		Short: "Generate the gqlgen SDK from the printed schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return generateSDK(cfg, logger)
		},
	}
}

// setup loads the configuration and builds the logger for a command.
func setup(f *flags, w io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, _, err := config.NewLoader(newLogger(w, slog.LevelWarn)).In(f.dir).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(w, level), nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// compilerOptions maps the configuration onto a generate run.
func compilerOptions(cfg *config.Config, logger *slog.Logger) (compiler.Options, error) {
	opts := compiler.Options{
		Source:         cfg.Source,
		Schema:         cfg.Schema,
		Ignore:         cfg.Ignore,
		IgnorePatterns: cfg.IgnorePatterns,
		Logger:         logger,
	}
	if cfg.PluralCollections {
		opts.Gen = append(opts.Gen, gen.WithPluralCollections())
	}
	if len(cfg.Datatypes) > 0 {
		opts.Gen = append(opts.Gen, gen.WithDatatypes(cfg.Datatypes))
	}
	if len(cfg.FieldOrder) > 0 {
		opts.Print = append(opts.Print, graphql.WithFieldOrder(cfg.FieldOrder...))
	}
	// Surface every option error before the first run.
	if _, err := gen.NewConfig(opts.Gen...); err != nil {
		return compiler.Options{}, err
	}
	return opts, nil
}

// generateSDK runs gqlgen for the printed schema. A missing schema is
// reported and skipped.
func generateSDK(cfg *config.Config, logger *slog.Logger) error {
	if _, err := os.Stat(cfg.Schema); errors.Is(err, fs.ErrNotExist) {
		logger.Warn("no GraphQL schema found, skipping sdk generation", slog.String("path", cfg.Schema))
		return nil
	}
	return graphql.GenerateSDK(sdkOptions(cfg, logger))
}

func sdkOptions(cfg *config.Config, logger *slog.Logger) graphql.SDKOptions {
	return graphql.SDKOptions{
		ConfigPath: cfg.GQLGen,
		SchemaPath: cfg.Schema,
		Documents:  cfg.Documents,
		Autobind:   cfg.Autobind,
		Models:     cfg.Models,
		Logger:     logger,
	}
}
