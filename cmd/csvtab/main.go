// Command csvtab filters rows and projects columns out of a delimited text
// file, using one of three engines: sequential, file-part concurrent, or
// in-memory batch concurrent. Grounded on johndauphine-dmt's cmd/migrate
// main.go for the urfave/cli/v2 app shape.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"csvtab/internal/concurrent/memory"
	"csvtab/internal/concurrent/parts"
	"csvtab/internal/config"
	"csvtab/internal/history"
	"csvtab/internal/prompt"
	"csvtab/internal/sequential"
)

func main() {
	app := &cli.App{
		Name:    "csvtab",
		Usage:   "filter rows and project columns from a delimited text file",
		Version: "0.1.0",
		Commands: []*cli.Command{
			runCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "process a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "csvtab.yaml", Usage: "path to a YAML defaults file"},
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "input CSV path"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output CSV path"},
			&cli.StringFlag{Name: "columns", Usage: `column selection: "*" or comma-separated 1-based numbers`},
			&cli.StringFlag{Name: "filter", Usage: "filter expression"},
			&cli.IntFlag{Name: "parts", Usage: "number of parallel parts/workers (default: logical CPUs)"},
			&cli.StringFlag{Name: "mode", Value: "", Usage: "sequential | concurrent-parts | concurrent-memory"},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	defaults, err := config.LoadDefaults(c.String("config"))
	if err != nil {
		return err
	}

	cfg := config.Config{
		InputPath:        c.String("input"),
		OutputPath:       c.String("output"),
		ColumnsSpec:      c.String("columns"),
		FilterExpression: c.String("filter"),
		Mode:             config.Mode(c.String("mode")),
	}
	if c.IsSet("parts") {
		p := c.Int("parts")
		cfg.Parts = &p
	}

	if cfg.InputPath == "" || cfg.OutputPath == "" {
		flow := prompt.NewStdFlow()
		promptedCfg, err := flow.Run()
		if err != nil {
			return err
		}
		if cfg.InputPath == "" {
			cfg.InputPath = promptedCfg.InputPath
		}
		if cfg.OutputPath == "" {
			cfg.OutputPath = promptedCfg.OutputPath
		}
		if cfg.ColumnsSpec == "" {
			cfg.ColumnsSpec = promptedCfg.ColumnsSpec
		}
		if cfg.FilterExpression == "" {
			cfg.FilterExpression = promptedCfg.FilterExpression
		}
		if cfg.Mode == "" {
			cfg.Mode = promptedCfg.Mode
		}
	}

	cfg = config.ApplyDefaults(cfg, defaults)
	logPath := cfg.OutputPath + ".log"

	runID := history.NewRunID()
	start := time.Now()

	var runErr error
	switch cfg.Mode {
	case config.ModeSequential:
		_, _, runErr = sequential.Run(sequential.Options{
			InputPath:        cfg.InputPath,
			OutputPath:       cfg.OutputPath,
			LogPath:          logPath,
			ColumnsSpec:      cfg.ColumnsSpec,
			FilterExpression: cfg.FilterExpression,
			Separator:        cfg.Separator,
		})
	case config.ModeConcurrentParts:
		_, runErr = parts.Run(parts.Options{
			InputPath:        cfg.InputPath,
			OutputPath:       cfg.OutputPath,
			LogPath:          logPath,
			ColumnsSpec:      cfg.ColumnsSpec,
			FilterExpression: cfg.FilterExpression,
			Separator:        cfg.Separator,
			Parts:            cfg.Parts,
		})
	case config.ModeConcurrentMemory:
		_, runErr = memory.Run(memory.Options{
			InputPath:        cfg.InputPath,
			OutputPath:       cfg.OutputPath,
			LogPath:          logPath,
			ColumnsSpec:      cfg.ColumnsSpec,
			FilterExpression: cfg.FilterExpression,
			Separator:        cfg.Separator,
			Parts:            cfg.Parts,
		})
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	end := time.Now()

	histLogger := history.New(history.DefaultPath)
	elapsed := end.Sub(start)
	if err := histLogger.Append(history.Record{
		RunID:      runID,
		Timestamp:  end,
		Mode:       string(cfg.Mode),
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Millis:     float64(elapsed.Microseconds()) / 1000.0,
		Seconds:    elapsed.Seconds(),
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	return runErr
}
