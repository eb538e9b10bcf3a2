package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"masterylint/internal/config"
	"masterylint/internal/lint"
	"masterylint/internal/report"
	"masterylint/internal/spec"
	"masterylint/internal/ui/live"
)

// runLintCorpus is a test seam for executing lint runs.
var runLintCorpus = lint.Run

// runLint builds the handler for the lint command.
func runLint(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .masterylint/config.yml)")
		workers := flags.Int("workers", 0, "Scan worker count (default: from config)")
		idScope := flags.String("id-scope", "", "Id uniqueness scope: corpus or file (default: from config)")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Print per-file progress")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		switch *idScope {
		case "", spec.IDScopeCorpus, spec.IDScopeFile:
		default:
			fmt.Fprintf(stderr, "invalid id scope %q (expected corpus or file)\n", *idScope)
			return ExitUsage
		}

		resolvedSpec, err := resolveSpecPath(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Lint failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Lint failed:\n%s\n", err.Error())
			return ExitError
		}
		repoRoot := config.RepoRootFromConfigPath(resolvedSpec)
		outputDir := resolveOutputDir(repoRoot, cfg.Output.Dir)

		// Positional paths narrow the corpus to the named files or dirs.
		if flags.NArg() > 0 {
			roots := make([]string, 0, flags.NArg())
			for _, arg := range flags.Args() {
				abs, err := filepath.Abs(arg)
				if err != nil {
					fmt.Fprintf(stderr, "Lint failed: resolve path %q: %v\n", arg, err)
					return ExitError
				}
				roots = append(roots, abs)
			}
			cfg.Corpus.Roots = roots
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var observer lint.RunObserver
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			observer = controller
		} else if *verbose {
			observer = &plainObserver{out: stdout}
		}

		results, runErr := runLintCorpus(context.Background(), lint.Options{
			RepoRoot: repoRoot,
			Config:   cfg,
			Workers:  *workers,
			IDScope:  *idScope,
			Observer: observer,
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if runErr != nil {
			fmt.Fprintf(stderr, "Lint failed: %v\n", runErr)
			return ExitError
		}

		paths, err := lint.WriteRunOutputs(results, outputDir)
		if err != nil {
			fmt.Fprintf(stderr, "Lint failed: %v\n", err)
			return ExitError
		}
		html, err := report.BuildReportHTML(results)
		if err != nil {
			fmt.Fprintf(stderr, "Lint failed: render report: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(paths.ReportPath(), []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Lint failed: write report: %v\n", err)
			return ExitError
		}

		printFindings(stdout, results)
		printRunSummary(stdout, results, paths)
		if results.Summary.FindingsTotal > 0 || results.Summary.FilesErrored > 0 {
			return ExitError
		}
		return ExitOK
	}
}

// resolveOutputDir resolves relative output paths against the repo root.
func resolveOutputDir(repoRoot, outputDir string) string {
	if outputDir == "" || filepath.IsAbs(outputDir) {
		return outputDir
	}
	return filepath.Join(repoRoot, outputDir)
}

// printFindings writes one line per finding in path:line form.
func printFindings(out io.Writer, results lint.Results) {
	for _, file := range results.Files {
		if file.ReadErr != "" {
			fmt.Fprintf(out, "%s: read error: %s\n", file.Path, file.ReadErr)
		}
		for _, finding := range file.Findings {
			fmt.Fprintf(out, "%s:%d: %s: %s\n", file.Path, finding.Line, finding.Kind, finding.Message)
		}
	}
}

// printRunSummary writes the closing summary lines.
func printRunSummary(out io.Writer, results lint.Results, paths lint.OutputPaths) {
	summary := results.Summary
	fmt.Fprintf(out, "Checked %d file(s), %d block(s): %d finding(s)\n",
		summary.FilesTotal, summary.BlocksTotal, summary.FindingsTotal)
	fmt.Fprintf(out, "Results written to %s\n", paths.RunDir())
}

// plainObserver prints file progress without the live UI. Events can
// arrive from scan workers, so writes are serialized.
type plainObserver struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *plainObserver) OnRunStart(runID string, repo string, fileTotal int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "Lint %s: %d file(s) in %s\n", runID, fileTotal, repo)
}

func (p *plainObserver) OnFileEvent(event lint.FileEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch event.Type {
	case lint.FileClean:
		fmt.Fprintf(p.out, "  %s: clean (%d block(s))\n", event.Path, event.Blocks)
	case lint.FileFindings:
		fmt.Fprintf(p.out, "  %s: %d finding(s)\n", event.Path, event.Findings)
	case lint.FileError:
		fmt.Fprintf(p.out, "  %s: read error: %s\n", event.Path, event.Error)
	}
}

func (p *plainObserver) OnRunEnd(lint.Results) {}
