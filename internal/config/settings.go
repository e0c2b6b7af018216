package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/yt-thumbnails/internal/model"
	"github.com/ytget/yt-thumbnails/internal/platform"
)

// Settings keys, shared by flags, environment variables and the config file
const (
	KeyOutputDir   = "output-dir"
	KeyTimeout     = "timeout"
	KeyTool        = "tool"
	KeyPython      = "python"
	KeySkipInstall = "skip-install"
	KeyVerbose     = "verbose"
	KeyItems       = "items"
)

// Default values
const (
	DefaultTimeout = 30 * time.Second
	DefaultTool    = platform.DefaultToolName
	EnvPrefix      = "YTTHUMBS"
	ConfigName     = ".yt-thumbnails"
	ConfigType     = "yaml"
)

// Settings holds the resolved configuration of one run
type Settings struct {
	OutputDir   string
	Timeout     time.Duration
	Tool        string
	Python      string
	SkipInstall bool
	Verbose     bool
	Items       []model.WorkItem
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyTool, DefaultTool)
	v.SetDefault(KeyPython, platform.DefaultPythonCommand())
	v.SetDefault(KeySkipInstall, false)
	v.SetDefault(KeyVerbose, false)
}

// Load reads settings from v and validates them. Without an items list the
// compiled-in catalog is used.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		OutputDir:   v.GetString(KeyOutputDir),
		Timeout:     v.GetDuration(KeyTimeout),
		Tool:        v.GetString(KeyTool),
		Python:      v.GetString(KeyPython),
		SkipInstall: v.GetBool(KeySkipInstall),
		Verbose:     v.GetBool(KeyVerbose),
	}

	if v.IsSet(KeyItems) {
		var items []model.WorkItem
		if err := v.UnmarshalKey(KeyItems, &items); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", KeyItems, err)
		}
		s.Items = items
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate fills defaults and checks the settings
func (s *Settings) Validate() error {
	if s.Items == nil {
		s.Items = DefaultItems()
	}
	if err := model.NewCatalog(s.Items).Validate(); err != nil {
		return fmt.Errorf("invalid items: %w", err)
	}

	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", s.Timeout)
	}
	if s.Timeout == 0 {
		s.Timeout = DefaultTimeout
	}

	if s.Tool == "" {
		s.Tool = DefaultTool
	}
	if s.Python == "" {
		s.Python = platform.DefaultPythonCommand()
	}

	if s.OutputDir == "" {
		dir, err := platform.DefaultImagesDir()
		if err != nil {
			return err
		}
		s.OutputDir = dir
	}

	return nil
}
