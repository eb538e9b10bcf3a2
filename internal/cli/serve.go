package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"masterylint/internal/config"
	"masterylint/internal/reportserver"
)

// serveReport is a test seam for starting the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		addr := flags.String("addr", "127.0.0.1:4800", "Address to listen on")
		specPath := flags.String("spec", "", "Path to config file (default: search for .masterylint/config.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		dbPath := flags.Arg(0)
		if dbPath == "" {
			resolvedSpec, err := resolveSpecPath(*specPath)
			if err != nil {
				fmt.Fprintf(stderr, "Serve failed: %v\n", err)
				return ExitError
			}
			cfg, err := config.Load(resolvedSpec)
			if err != nil {
				fmt.Fprintf(stderr, "Serve failed:\n%s\n", err.Error())
				return ExitError
			}
			repoRoot := config.RepoRootFromConfigPath(resolvedSpec)
			dbPath = filepath.Join(resolveOutputDir(repoRoot, cfg.Output.Dir), config.DefaultDBName)
		}
		if _, err := os.Stat(dbPath); err != nil {
			fmt.Fprintf(stderr, "Serve failed: database %q: %v\n", dbPath, err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Fprintf(stdout, "Serving %s on http://%s\n", dbPath, *addr)
		if err := serveReport(ctx, reportserver.Config{Addr: *addr, DBPath: dbPath}); err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
