package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"masterylint/internal/config"
	"masterylint/internal/report"
)

// buildReportHTML is a test seam for report rendering.
var buildReportHTML = report.BuildReportHTML

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .masterylint/config.yml)")
		runRef := flags.String("run", "HEAD", "Run to report on: a git ref or a run id")
		outputPath := flags.String("output", "", "Report file path (default: report.html in the run directory)")
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
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed:\n%s\n", err.Error())
			return ExitError
		}
		repoRoot := config.RepoRootFromConfigPath(resolvedSpec)
		outputDir := resolveOutputDir(repoRoot, cfg.Output.Dir)

		results, runDir, err := report.ResolveRun(outputDir, repoRoot, *runRef)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}

		target := *outputPath
		if target == "" {
			target = filepath.Join(runDir, "report.html")
		}
		html, err := buildReportHTML(results)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: render report: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Report failed: write report: %v\n", err)
			return ExitError
		}

		summary := results.Summary
		fmt.Fprintf(stdout, "Run %s: %d file(s), %d block(s), %d finding(s)\n",
			results.RunID, summary.FilesTotal, summary.BlocksTotal, summary.FindingsTotal)
		fmt.Fprintf(stdout, "Report written to %s\n", target)
		return ExitOK
	}
}
