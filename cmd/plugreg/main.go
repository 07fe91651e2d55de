package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"

	"github.com/unbound-force/plugreg/internal/checker"
	"github.com/unbound-force/plugreg/internal/complexity"
	"github.com/unbound-force/plugreg/internal/config"
	"github.com/unbound-force/plugreg/internal/host"
	"github.com/unbound-force/plugreg/internal/loader"
	"github.com/unbound-force/plugreg/internal/registry"
	"github.com/unbound-force/plugreg/internal/report"
	"github.com/unbound-force/plugreg/internal/scaffold"
	"github.com/unbound-force/plugreg/internal/taxonomy"
	"github.com/unbound-force/plugreg/internal/watch"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "plugreg",
		Short: "plugreg checks processor plugins and writes their service registry",
		Long: `plugreg finds types marked with //plugreg:processor, verifies that
each one has the shape of the processor contract, and writes the
service registry file listing them when every marked type conforms.`,
		Version: version,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(charmlog.DebugLevel)
		}
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checkParams holds the parsed flags for the check command.
type checkParams struct {
	dir         string
	patterns    []string
	out         string
	format      string
	rounds      string
	configPath  string
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runCheck is the extracted, testable body of the check command.
func runCheck(p checkParams) error {
	start := time.Now()

	cfg, err := resolveConfig(p.dir, p.configPath)
	if err != nil {
		return err
	}
	if p.out != "" {
		cfg.Output = p.out
	}
	if p.format != "" {
		cfg.Format = p.format
	}
	if p.rounds != "" {
		cfg.Rounds = p.rounds
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	patterns := p.patterns
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	logger.Info("loading packages", "patterns", patterns)
	loaded, err := loader.Load(p.dir, patterns...)
	if err != nil {
		return err
	}
	pkgs := filterPackages(loaded.Pkgs, p.dir, cfg)
	if len(pkgs) == 0 {
		logger.Warn("no packages left to check after include/exclude filters")
	}

	chk := checker.New(checker.Options{Logger: logger})
	res, err := host.New(pkgs, host.Options{
		OutputRoot: outputRoot(p.dir, cfg.Output),
		Rounds:     host.RoundMode(cfg.Rounds),
		Logger:     logger,
	}).Run(chk)
	if err != nil {
		return err
	}

	regs := chk.Registrations()
	complexity.Annotate(pkgs, regs)

	rpt := &taxonomy.Report{
		RegistryPath:    res.RegistryPath,
		RegistryWritten: chk.Written(),
		Registrations:   regs,
		Diagnostics:     append(res.Diagnostics, complexityWarnings(regs, cfg.Complexity.MaxProcess)...),
		Metadata: taxonomy.Metadata{
			PlugregVersion: version,
			GoVersion:      runtime.Version(),
			Rounds:         res.Rounds,
			Timestamp:      start,
			Duration:       time.Since(start),
			Warnings:       res.Warnings,
		},
	}

	logger.Info("check complete",
		"registered", len(rpt.Registrations),
		"diagnostics", len(rpt.Diagnostics),
		"written", rpt.RegistryWritten)

	if cfg.Format == "json" && p.stderr != nil {
		for _, d := range rpt.Diagnostics {
			fmt.Fprintln(p.stderr, d)
		}
	}

	if p.interactive {
		if err := runInteractiveCheck(rpt); err != nil {
			return err
		}
	} else if err := writeCheckReport(p.stdout, cfg.Format, rpt); err != nil {
		return err
	}

	if n := taxonomy.CountSeverity(rpt.Diagnostics, taxonomy.SeverityError); n > 0 {
		return fmt.Errorf("%d conformance error(s)", n)
	}
	return nil
}

// runWatch runs the check once, then again after every change to the
// sources of the checked packages, until ctx is done. Check failures
// are logged and do not stop the loop.
func runWatch(ctx context.Context, p checkParams) error {
	if p.interactive {
		return errors.New("--watch cannot be combined with --interactive")
	}

	cfg, err := resolveConfig(p.dir, p.configPath)
	if err != nil {
		return err
	}
	patterns := p.patterns
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}
	dirs, err := loader.Dirs(p.dir, patterns...)
	if err != nil {
		return err
	}
	if p.dir != "" {
		dirs = append(dirs, p.dir)
	}

	w, err := watch.New(watch.Options{Dirs: dirs, Logger: logger})
	if err != nil {
		return err
	}

	// Packages may appear while watching; pick up their directories
	// after every check.
	check := func() {
		if err := runCheck(p); err != nil {
			logger.Error("check failed", "err", err)
		}
		if dirs, err := loader.Dirs(p.dir, patterns...); err == nil {
			if err := w.Add(dirs...); err != nil {
				logger.Warn("watching new packages", "err", err)
			}
		}
	}
	check()
	logger.Info("watching for changes", "dirs", len(dirs))
	return w.Run(ctx, check)
}

// resolveConfig loads the explicit config file, or the one found in
// dir, or the defaults.
func resolveConfig(dir, path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	root := dir
	if root == "" {
		root = "."
	}
	cfg, found, err := config.LoadDir(root)
	if err != nil {
		return nil, err
	}
	if found != "" {
		logger.Debug("using config", "path", found)
	}
	return cfg, nil
}

// outputRoot resolves out against dir unless it is absolute.
func outputRoot(dir, out string) string {
	if filepath.IsAbs(out) || dir == "" {
		return out
	}
	return filepath.Join(dir, out)
}

// filterPackages drops root packages whose directory, relative to
// dir, is filtered out by cfg.
func filterPackages(pkgs []*packages.Package, dir string, cfg *config.Config) []*packages.Package {
	base, err := filepath.Abs(dir)
	if err != nil {
		return pkgs
	}

	var kept []*packages.Package
	for _, p := range pkgs {
		if len(p.GoFiles) == 0 {
			continue
		}
		rel, err := filepath.Rel(base, filepath.Dir(p.GoFiles[0]))
		if err != nil {
			rel = p.PkgPath
		}
		if !cfg.Included(rel) {
			logger.Debug("skipping filtered package", "pkg", p.PkgPath, "dir", rel)
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// complexityWarnings flags registrations whose Process method is more
// complex than limit. A zero limit disables the check.
func complexityWarnings(regs []taxonomy.Registration, limit int) []taxonomy.Diagnostic {
	if limit <= 0 {
		return nil
	}
	var diags []taxonomy.Diagnostic
	for _, r := range regs {
		if r.ProcessComplexity <= limit {
			continue
		}
		msg := fmt.Sprintf("%s#Process has cyclomatic complexity %d (max %d).",
			r.Name, r.ProcessComplexity, limit)
		diags = append(diags, taxonomy.Diagnostic{
			ID:        taxonomy.GenerateID(r.Name, "Process", msg),
			Severity:  taxonomy.SeverityWarning,
			Type:      r.Name,
			Operation: "Process",
			Message:   msg,
			Location:  r.Location,
		})
	}
	return diags
}

// writeCheckReport outputs the report in the requested format.
func writeCheckReport(w io.Writer, format string, rpt *taxonomy.Report) error {
	switch format {
	case "json":
		return report.WriteJSON(w, rpt, version)
	default:
		return report.WriteText(w, rpt)
	}
}

func newCheckCmd() *cobra.Command {
	var (
		out         string
		format      string
		rounds      string
		configPath  string
		interactive bool
		watchMode   bool
	)

	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Verify marked processors and write the service registry",
		Long: `Load the given packages (default: the packages listed in
.plugreg.yaml, else ./...), verify every type marked with
//plugreg:processor against the processor contract, and write
META-INF/services/<contract> under the output root when all of them
conform. Exits non-zero when any type does not conform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			p := checkParams{
				dir:         dir,
				patterns:    args,
				out:         out,
				format:      format,
				rounds:      rounds,
				configPath:  configPath,
				interactive: interactive,
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			}
			if watchMode {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				return runWatch(ctx, p)
			}
			return runCheck(p)
		},
	}

	cmd.Flags().StringVar(&out, "out", "",
		"output root for the registry (default: config output, else .)")
	cmd.Flags().StringVar(&format, "format", "",
		"output format: text or json (default: config format, else text)")
	cmd.Flags().StringVar(&rounds, "rounds", "",
		"round split: package or single (default: config rounds, else package)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: .plugreg.yaml in the working directory)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"re-run the check when sources of the checked packages change")

	return cmd
}

// listParams holds the parsed flags for the list command.
type listParams struct {
	dir        string
	out        string
	configPath string
	stdout     io.Writer
}

// runList prints the entries of an existing registry file.
func runList(p listParams) error {
	out := p.out
	if out == "" {
		cfg, err := resolveConfig(p.dir, p.configPath)
		if err != nil {
			return err
		}
		out = cfg.Output
	}
	root := outputRoot(p.dir, out)

	names, err := registry.Read(root, checker.ContractName)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no registry at %s: run plugreg check first", registry.File(root, checker.ContractName))
	}
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(p.stdout, n); err != nil {
			return err
		}
	}
	return nil
}

func newListCmd() *cobra.Command {
	var out, configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the processors listed in the service registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			return runList(listParams{
				dir:        dir,
				out:        out,
				configPath: configPath,
				stdout:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "",
		"output root the registry was written under (default: config output, else .)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: .plugreg.yaml in the working directory)")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for plugreg check output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of plugreg check --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .plugreg.yaml and example processor",
		Long: `Scaffold .plugreg.yaml and plugins/example/example.go in the
current directory. Existing files are skipped unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Run(scaffold.Options{
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}
