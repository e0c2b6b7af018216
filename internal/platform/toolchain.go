package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Tool defaults
const (
	DefaultToolName       = "yt-dlp"
	DefaultToolPackage    = "yt-dlp"
	VersionFlag           = "--version"
	DefaultVersionTimeout = 15 * time.Second
	DefaultInstallTimeout = 5 * time.Minute
)

// Python launchers used for the pip install
const (
	PythonCommand        = "python3"
	WindowsPythonCommand = "py"
)

// ErrToolUnavailable is returned when the tool is missing and could not be installed
var ErrToolUnavailable = errors.New("extraction tool unavailable")

// Toolchain checks that the extraction tool is runnable and installs it on
// demand with pip into the user's site-packages
type Toolchain struct {
	runner      CommandRunner
	out         io.Writer
	logger      *slog.Logger
	tool        string
	pkg         string
	python      string
	skipInstall bool

	versionTimeout time.Duration
	installTimeout time.Duration
}

// NewToolchain creates a toolchain for tool, printing progress to out
func NewToolchain(runner CommandRunner, tool string, out io.Writer, logger *slog.Logger) *Toolchain {
	if tool == "" {
		tool = DefaultToolName
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Toolchain{
		runner:         runner,
		out:            out,
		logger:         logger,
		tool:           tool,
		pkg:            DefaultToolPackage,
		python:         DefaultPythonCommand(),
		versionTimeout: DefaultVersionTimeout,
		installTimeout: DefaultInstallTimeout,
	}
}

// DefaultPythonCommand returns the python launcher for the current OS. A Go
// binary has no running interpreter to reuse, so the launcher on PATH is
// used; SetPython overrides it.
func DefaultPythonCommand() string {
	if IsWindows() {
		return WindowsPythonCommand
	}
	return PythonCommand
}

// Tool returns the name of the extraction tool
func (t *Toolchain) Tool() string {
	return t.tool
}

// SetSkipInstall disables the on-demand install
func (t *Toolchain) SetSkipInstall(skip bool) {
	t.skipInstall = skip
}

// InstallSkipped reports whether a missing tool is left uninstalled
func (t *Toolchain) InstallSkipped() bool {
	return t.skipInstall
}

// SetPython overrides the python launcher used for the install
func (t *Toolchain) SetPython(python string) {
	if python != "" {
		t.python = python
	}
}

// ManualInstallHint returns the instruction printed when the install fails
func (t *Toolchain) ManualInstallHint() string {
	return fmt.Sprintf("Please install manually: pip3 install %s", t.pkg)
}

// Version returns the trimmed output of "<tool> --version"
func (t *Toolchain) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.versionTimeout)
	defer cancel()

	out, err := t.runner.Run(ctx, t.tool, VersionFlag)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", t.tool, VersionFlag, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Install runs a single user-scoped pip install of the tool package
func (t *Toolchain) Install(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.installTimeout)
	defer cancel()

	args := []string{"-m", "pip", "install", "--user", t.pkg}
	t.logger.Debug("installing extraction tool", "python", t.python, "args", strings.Join(args, " "))

	out, err := t.runner.Run(ctx, t.python, args...)
	if err != nil {
		t.logger.Warn("install failed", "tool", t.tool, "err", err, "output", strings.TrimSpace(string(out)))
		return fmt.Errorf("pip install %s: %w", t.pkg, err)
	}
	return nil
}

// EnsureAvailable checks the tool and installs it when missing. It returns
// true if the tool was already runnable or the install command succeeded;
// the installed tool is not re-checked.
func (t *Toolchain) EnsureAvailable(ctx context.Context) bool {
	version, err := t.Version(ctx)
	if err == nil {
		t.logger.Debug("extraction tool found", "tool", t.tool, "version", version)
		return true
	}
	t.logger.Debug("extraction tool check failed", "tool", t.tool, "err", err)

	if t.skipInstall {
		return false
	}

	fmt.Fprintf(t.out, "%s not found. Installing...\n", t.tool)
	fmt.Fprintf(t.out, "📦 Installing %s...\n", t.pkg)
	if err := t.Install(ctx); err != nil {
		return false
	}
	fmt.Fprintf(t.out, "✅ %s installed successfully\n\n", t.tool)
	return true
}
