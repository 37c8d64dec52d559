package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jorge-barreto/nasdeck/internal/analysis"
	"github.com/jorge-barreto/nasdeck/internal/config"
	"github.com/jorge-barreto/nasdeck/internal/deck"
	"github.com/jorge-barreto/nasdeck/internal/docs"
	"github.com/jorge-barreto/nasdeck/internal/importer"
	"github.com/jorge-barreto/nasdeck/internal/logging"
	"github.com/jorge-barreto/nasdeck/internal/runner"
	"github.com/jorge-barreto/nasdeck/internal/scaffold"
	"github.com/jorge-barreto/nasdeck/internal/state"
	"github.com/jorge-barreto/nasdeck/internal/ux"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	app := &cli.Command{
		Name:        "nasdeck",
		Usage:       "Build and merge Nastran input decks",
		Description: "Run 'nasdeck docs' for documentation on the analysis file, imports, and builds.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Enable debug logging"},
		},
		Commands: []*cli.Command{
			initCmd(),
			buildCmd(),
			mergeCmd(),
			statsCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	return logging.New(cmd.Bool("verbose"))
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build a deck from an analysis file",
		ArgsUsage: "[analysis.yaml]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output deck path"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the build plan without executing"},
			&cli.BoolFlag{Name: "atomic", Usage: "Roll back an import that fails part way"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configPath := cmd.Args().First()
			if configPath == "" {
				configPath = scaffold.ConfigFile
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading analysis: %w", err)
			}

			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			model := analysis.New(nil)
			model.Logger = log
			r := &runner.Runner{
				Config:     cfg,
				ConfigPath: configPath,
				Model:      model,
				Output:     outputPath(cmd.String("output"), cfg, configPath),
				Atomic:     cmd.Bool("atomic"),
				Logger:     log,
			}

			if cmd.Bool("dry-run") {
				r.DryRunPrint()
				return nil
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return r.Run(ctx)
		},
	}
}

// outputPath picks the -o flag, then the analysis file's output field, then
// the analysis file name with a .bdf extension.
func outputPath(flag string, cfg *config.Config, configPath string) string {
	switch {
	case flag != "":
		return flag
	case cfg.Output != "":
		return cfg.Resolve(cfg.Output)
	}
	base := strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath))
	return filepath.Join(cfg.Dir, base+".bdf")
}

func mergeCmd() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "Merge the bulk data of one deck into another",
		ArgsUsage: "<source> <target>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output deck path", Required: true},
			&cli.BoolFlag{Name: "no-sanitize", Usage: "Keep every record type of the source"},
			&cli.StringSliceFlag{Name: "block", Usage: "Record type to drop (repeatable; replaces the default list)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("source and target arguments are required")
			}
			srcPath, dstPath := cmd.Args().Get(0), cmd.Args().Get(1)

			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			src, err := deck.ReadFile(srcPath)
			if err != nil {
				return fmt.Errorf("loading source: %w", err)
			}
			dst, err := deck.ReadFile(dstPath)
			if err != nil {
				return fmt.Errorf("loading target: %w", err)
			}

			blocks := cmd.StringSlice("block")
			if len(blocks) == 0 {
				blocks = config.DefaultBlockList()
			}
			model := analysis.New(dst)
			model.Logger = log
			res, err := model.Import(src, importer.Options{
				Sanitize:  !cmd.Bool("no-sanitize"),
				BlockList: blocks,
			})
			if res != nil {
				ux.ImportSummary(res.Added, res.Skipped)
			}
			if err != nil {
				return err
			}

			out := cmd.String("output")
			if err := model.Export(out); err != nil {
				return err
			}
			ux.Success(1, out)
			return nil
		},
	}
}

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Summarize a deck and its build manifest",
		ArgsUsage: "<deck>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("deck argument is required")
			}
			doc, err := deck.ReadFile(path)
			if err != nil {
				return err
			}
			m, err := state.Load(state.ManifestPath(path))
			if err != nil {
				return fmt.Errorf("loading manifest: %w", err)
			}
			ux.RenderStats(path, doc, m)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write an example analysis file and model decks",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				var err error
				if dir, err = os.Getwd(); err != nil {
					return err
				}
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				docs.WriteIndex(os.Stdout)
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
