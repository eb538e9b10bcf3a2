package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"masterylint/internal/config"
	"masterylint/internal/duckdb"
	"masterylint/internal/report"
)

// runIngest builds the handler for the ingest command.
func runIngest(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .masterylint/config.yml)")
		runRef := flags.String("run", "HEAD", "Run to ingest: a git ref or a run id")
		dbPath := flags.String("db", "", "DuckDB database path (default: db.duckdb in the results folder)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolvedSpec, err := resolveSpecPath(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed:\n%s\n", err.Error())
			return ExitError
		}
		repoRoot := config.RepoRootFromConfigPath(resolvedSpec)
		outputDir := resolveOutputDir(repoRoot, cfg.Output.Dir)

		results, _, err := report.ResolveRun(outputDir, repoRoot, *runRef)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}

		target := *dbPath
		if target == "" {
			target = filepath.Join(outputDir, config.DefaultDBName)
		}
		db, err := duckdb.Open(target)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed: open database: %v\n", err)
			return ExitError
		}
		defer db.Close()

		if err := duckdb.IngestResults(context.Background(), db, results); err != nil {
			if errors.Is(err, duckdb.ErrRunExists) {
				fmt.Fprintf(stderr, "Ingest failed: run %s is already in %s\n", results.RunID, target)
				return ExitError
			}
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Ingested run %s into %s\n", results.RunID, target)
		return ExitOK
	}
}
