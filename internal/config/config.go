// internal/config/config.go
//
// This package handles configuration and the .promptpack directory structure.
// Every project that uses promptpack gets a .promptpack/ folder in its root
// holding the optional config.yaml and the run log.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// PromptpackDir is the name of the directory we create in each project
	PromptpackDir = ".promptpack"

	defaultInstructionsPath = "instructions.md"
	defaultPromptsDir       = "prompts"
	defaultOutputPath       = "dist/awesome-coding-prompts.md"
)

// DefaultPriority is the authoritative ordering of prompt filenames that are
// emitted first in the consolidated output. The last two entries are
// forward-compatible placeholders for prompts that may not exist yet; names
// absent from the prompts directory emit nothing.
var DefaultPriority = []string{
	"clean-code-typescript.md",
	"clean-architecture.md",
	"typescript-wizard.md",
	"feature-development.md",
	"frontend-react-shadcn.md",
	"frontend-design.md",
	"nextjs-app-router.md",
}

const defaultProjectConfigYAML = `# promptpack project configuration
version: 1

# Paths are resolved relative to the project directory unless absolute.
instructions: instructions.md
prompts_dir: prompts
output: dist/awesome-coding-prompts.md

# Prompt filenames emitted first, in this order. Names that do not exist in
# the prompts directory are skipped; everything else follows alphabetically.
# Leave unset to use the built-in ordering.
# priority:
#   - clean-code-typescript.md
#   - clean-architecture.md
`

// ProjectConfig models .promptpack/config.yaml.
type ProjectConfig struct {
	Version      int      `yaml:"version"`
	Instructions string   `yaml:"instructions"`
	PromptsDir   string   `yaml:"prompts_dir"`
	Output       string   `yaml:"output"`
	Priority     []string `yaml:"priority,omitempty"`
}

// Config holds the runtime configuration for promptpack.
type Config struct {
	// ProjectDir is the directory where the user ran `promptpack` from
	ProjectDir string

	// PackDir is ProjectDir/.promptpack
	PackDir string

	// InstructionsPath is the absolute path of the instructions document
	InstructionsPath string

	// PromptsDir is the absolute path of the prompt-document directory
	PromptsDir string

	// OutputPath is the absolute path the consolidated document is written to
	OutputPath string

	// Priority is the ordered list of prompt filenames emitted first
	Priority []string
}

// InitDir creates the .promptpack directory structure in the given project
// directory and seeds a commented default config.yaml when none exists.
func InitDir(projectDir string) error {
	packDir := filepath.Join(projectDir, PromptpackDir)
	if err := os.MkdirAll(filepath.Join(packDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: ensure %s: %w", PromptpackDir, err)
	}
	return ensureProjectConfig(filepath.Join(packDir, "config.yaml"))
}

// New creates a Config for the project directory: built-in defaults, then an
// optional config.yaml overlay, then normalization and validation.
func New(projectDir string) (*Config, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("config: resolve project dir: %w", err)
	}
	cfg := &Config{
		ProjectDir:       abs,
		PackDir:          filepath.Join(abs, PromptpackDir),
		InstructionsPath: defaultInstructionsPath,
		PromptsDir:       defaultPromptsDir,
		OutputPath:       defaultOutputPath,
		Priority:         append([]string{}, DefaultPriority...),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.PackDir, "logs")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.PackDir, "config.yaml")
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	if v := strings.TrimSpace(parsed.Instructions); v != "" {
		c.InstructionsPath = v
	}
	if v := strings.TrimSpace(parsed.PromptsDir); v != "" {
		c.PromptsDir = v
	}
	if v := strings.TrimSpace(parsed.Output); v != "" {
		c.OutputPath = v
	}
	if len(parsed.Priority) > 0 {
		c.Priority = normalizeNames(parsed.Priority)
	}
	return nil
}

func (c *Config) normalize() {
	c.InstructionsPath = resolvePath(c.ProjectDir, c.InstructionsPath)
	c.PromptsDir = resolvePath(c.ProjectDir, c.PromptsDir)
	c.OutputPath = resolvePath(c.ProjectDir, c.OutputPath)
	c.Priority = normalizeNames(c.Priority)
}

func (c *Config) validate() error {
	if c.InstructionsPath == "" {
		return fmt.Errorf("config: instructions path is required")
	}
	if c.PromptsDir == "" {
		return fmt.Errorf("config: prompts directory is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("config: output path is required")
	}
	for i, name := range c.Priority {
		if strings.ContainsRune(name, os.PathSeparator) {
			return fmt.Errorf("config: priority[%d]: %q must be a bare filename", i, name)
		}
	}
	return nil
}

func (pc ProjectConfig) validate() error {
	if pc.Version != 0 && pc.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	return nil
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}
