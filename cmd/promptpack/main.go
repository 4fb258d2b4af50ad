// cmd/promptpack/main.go
//
// Entry point for the promptpack CLI.
//
// Flow:
// 1. Resolve the project directory and initialize .promptpack/
// 2. Load configuration (defaults + optional .promptpack/config.yaml + flags)
// 3. Run the consolidation, or launch the interactive preview with -interactive

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ig4e/awesome-coding-prompts/internal/config"
	"github.com/ig4e/awesome-coding-prompts/internal/consolidate"
	"github.com/ig4e/awesome-coding-prompts/internal/document"
	"github.com/ig4e/awesome-coding-prompts/internal/logging"
	"github.com/ig4e/awesome-coding-prompts/internal/tui"
)

func main() {
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	instructions := flag.String("instructions", "", "override the instructions document path")
	prompts := flag.String("prompts", "", "override the prompt directory")
	out := flag.String("out", "", "override the output path")
	interactive := flag.Bool("interactive", false, "browse prompts and build from a terminal UI")
	flag.Parse()

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}
	if err := config.InitDir(absoluteProject); err != nil {
		die("init %s: %v", config.PromptpackDir, err)
	}
	cfg, err := config.New(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}
	applyOverride(&cfg.InstructionsPath, *instructions, absoluteProject)
	applyOverride(&cfg.PromptsDir, *prompts, absoluteProject)
	applyOverride(&cfg.OutputPath, *out, absoluteProject)

	log, err := logging.New(absoluteProject)
	if err != nil {
		die("open log: %v", err)
	}
	defer log.Close()
	runID := uuid.NewString()
	log.Printf("run %s starting · prompts=%s output=%s", runID, cfg.PromptsDir, cfg.OutputPath)

	if *interactive {
		p := tea.NewProgram(tui.NewApp(cfg, log), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Printf("run %s: tui error: %v", runID, err)
			die("run tui: %v", err)
		}
		return
	}

	report, err := consolidate.Run(cfg, consolidate.WithLogger(log))
	if err != nil {
		log.Printf("run %s failed: %v", runID, err)
		fmt.Fprintf(os.Stderr, "FAILED: %s\n", failureMessage(err))
		os.Exit(1)
	}
	log.Printf("run %s finished", runID)

	fmt.Fprintf(os.Stderr, "Found %d prompt documents", report.Found)
	if report.Skipped > 0 {
		fmt.Fprintf(os.Stderr, " (%d skipped, see %s)", report.Skipped, filepath.Join(cfg.LogsDir(), "promptpack.log"))
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes, %d lines)\n", report.OutputPath, report.Bytes, report.Lines)
	fmt.Fprintln(os.Stderr, "OK")
}

// applyOverride replaces a configured path with a flag value, resolving
// relative values against the project directory.
func applyOverride(target *string, value, projectDir string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	if filepath.IsAbs(trimmed) {
		*target = filepath.Clean(trimmed)
		return
	}
	*target = filepath.Clean(filepath.Join(projectDir, trimmed))
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, document.ErrMissingPromptDir):
		return fmt.Sprintf("prompt directory not found: %v", err)
	case errors.Is(err, consolidate.ErrMissingInstructions):
		return fmt.Sprintf("instructions document not readable: %v", err)
	default:
		return err.Error()
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
