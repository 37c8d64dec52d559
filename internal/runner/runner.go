package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jorge-barreto/nasdeck/internal/analysis"
	"github.com/jorge-barreto/nasdeck/internal/config"
	"github.com/jorge-barreto/nasdeck/internal/importer"
	"github.com/jorge-barreto/nasdeck/internal/logging"
	"github.com/jorge-barreto/nasdeck/internal/state"
	"github.com/jorge-barreto/nasdeck/internal/ux"
	"go.uber.org/zap"
)

// Step kinds.
const (
	KindImport     = "import"
	KindSynthesize = "synthesize"
	KindExport     = "export"
)

// Step is one unit of a build.
type Step struct {
	Name   string
	Kind   string
	Import *config.ImportSpec
}

// Plan returns the build steps for cfg: imports staged before synthesis,
// synthesis, imports staged after it, and export.
func Plan(cfg *config.Config) []Step {
	var steps []Step
	add := func(stage string) {
		for i := range cfg.Imports {
			imp := &cfg.Imports[i]
			if imp.Stage == stage {
				steps = append(steps, Step{Name: "import " + imp.Path, Kind: KindImport, Import: imp})
			}
		}
	}
	add(config.StageBefore)
	steps = append(steps, Step{Name: "synthesize", Kind: KindSynthesize})
	add(config.StageAfter)
	steps = append(steps, Step{Name: "export", Kind: KindExport})
	return steps
}

// Runner drives a build from a loaded config to an exported deck.
type Runner struct {
	Config     *config.Config
	ConfigPath string
	Model      *analysis.Model
	Output     string
	// Atomic makes each import all-or-nothing.
	Atomic   bool
	Logger   *zap.Logger
	Manifest *state.Manifest
}

// failAndHint sets the failure status, saves the manifest (warning on
// error), prints a hint, and returns the given error.
func (r *Runner) failAndHint(status string, err error) error {
	r.Manifest.Fail(status, err)
	if saveErr := r.Manifest.Save(state.ManifestPath(r.Output)); saveErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save manifest: %v\n", saveErr)
	}
	ux.RetryHint(r.ConfigPath)
	return err
}

// Run executes every step of the plan in order.
func (r *Runner) Run(ctx context.Context) error {
	if r.Output == "" {
		return fmt.Errorf("runner: no output path")
	}
	if err := state.EnsureDir(r.Output); err != nil {
		return err
	}
	if r.Model.Logger == nil {
		r.Model.Logger = r.Logger
	}
	if r.Manifest == nil {
		r.Manifest = state.NewManifest(r.Model.ID, r.Output)
	}
	r.Manifest.Name = r.Config.Name
	r.Manifest.Config = r.ConfigPath
	r.Manifest.Sol = r.Config.Sol
	log := logging.OrNop(r.Logger)

	if err := r.Model.LoadConfig(r.Config); err != nil {
		return r.failAndHint(state.StatusFailed, fmt.Errorf("loading analysis: %w", err))
	}
	r.Manifest.Subcases = r.Model.Cases.Len()

	steps := Plan(r.Config)
	total := len(steps)
	for i, step := range steps {
		if ctx.Err() != nil {
			return r.failAndHint(state.StatusInterrupted, ctx.Err())
		}

		ux.StepHeader(i, total, step.Name)
		r.Manifest.Timing.AddStart(step.Name)
		start := time.Now()

		if err := r.runStep(step); err != nil {
			ux.StepFail(i, step.Name, err.Error())
			return r.failAndHint(state.StatusFailed, fmt.Errorf("step %q: %w", step.Name, err))
		}

		r.Manifest.Timing.AddEnd(step.Name)
		log.Debug("step complete", zap.String("step", step.Name), zap.Duration("elapsed", time.Since(start)))
		ux.StepComplete(i, time.Since(start))
	}

	r.Manifest.Status = state.StatusCompleted
	r.Manifest.Records = r.Model.Doc.CardCount()
	if err := r.Manifest.Save(state.ManifestPath(r.Output)); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	ux.Success(total, r.Output)
	return nil
}

func (r *Runner) runStep(step Step) error {
	switch step.Kind {
	case KindImport:
		return r.runImport(step.Import)
	case KindSynthesize:
		return r.Model.Synthesizer().WriteAllObserved(func(name string, done bool) {
			key := step.Name + "/" + name
			if done {
				r.Manifest.Timing.AddEnd(key)
			} else {
				r.Manifest.Timing.AddStart(key)
			}
		})
	case KindExport:
		return r.Model.Export(r.Output)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (r *Runner) runImport(imp *config.ImportSpec) error {
	opts := importer.Options{
		Sanitize:  imp.Sanitized(),
		BlockList: imp.BlockList,
		Logger:    r.Logger,
	}
	res, err := r.Model.ImportFile(r.Config.Resolve(imp.Path), opts, r.Atomic)
	if res != nil {
		r.Manifest.Imports = append(r.Manifest.Imports, state.ImportRecord{
			Path:    imp.Path,
			Stage:   imp.Stage,
			Added:   res.Added,
			Skipped: res.Skipped,
		})
		ux.ImportSummary(res.Added, res.Skipped)
	}
	return err
}

// DryRunPrint prints the build plan without executing.
func (r *Runner) DryRunPrint() {
	steps := Plan(r.Config)
	fmt.Printf("\n%sDry run — %d steps:%s\n\n", ux.Bold, len(steps), ux.Reset)
	for i, s := range steps {
		fmt.Printf("  %s%d.%s %s%s%s (%s)\n", ux.Cyan, i+1, ux.Reset, ux.Bold, s.Name, ux.Reset, s.Kind)
		switch s.Kind {
		case KindImport:
			fmt.Printf("     path: %s\n", r.Config.Resolve(s.Import.Path))
			if s.Import.Sanitized() {
				fmt.Printf("     block-list: %v\n", s.Import.BlockList)
			} else {
				fmt.Printf("     sanitize: off\n")
			}
		case KindSynthesize:
			if r.Config.Sol != 0 {
				fmt.Printf("     sol: %d\n", r.Config.Sol)
			}
			fmt.Printf("     subcases: %d, params: %d\n", len(r.Config.Subcases), len(r.Config.Params))
			if len(r.Config.Diags) > 0 {
				fmt.Printf("     diags: %v (not written)\n", r.Config.Diags)
			}
		case KindExport:
			fmt.Printf("     output: %s\n", r.Output)
		}
	}
	fmt.Println()
}
