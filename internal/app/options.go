package app

import (
	"github.com/spf13/pflag"

	"github.com/gajzzs/rearm-upload/internal/config"
	"github.com/gajzzs/rearm-upload/internal/platform"
	"github.com/gajzzs/rearm-upload/internal/resolver"
)

// Options are the persistent flags shared by every subcommand.
type Options struct {
	ConfigPath string
	Label      string
	Filename   string
	HostOS     string
	MediaRoot  string
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "Path to JSON configuration file")
	fs.StringVar(&o.Label, "label", "", "Target volume label (overrides config)")
	fs.StringVar(&o.Filename, "file", "", "Target marker filename (overrides config)")
	fs.StringVar(&o.HostOS, "os", "", "Host OS strategy: windows, linux or darwin (default: detected)")
	fs.StringVar(&o.MediaRoot, "media-root", "", "Removable media root on Linux, volumes root on macOS (overrides config)")
}

// Load builds the validated configuration with flag overrides applied.
func (o *Options) Load() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.Label != "" {
		cfg.TargetLabel = o.Label
	}
	if o.Filename != "" {
		cfg.TargetFilename = o.Filename
	}
	if o.MediaRoot != "" {
		cfg.MediaRoot = o.MediaRoot
		cfg.VolumesRoot = o.MediaRoot
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *Options) Host() platform.HostOS {
	if o.HostOS != "" {
		return platform.ParseHost(o.HostOS)
	}
	return platform.DetectHost()
}

// Enumerator selects the drive enumeration strategy for the host.
func (o *Options) Enumerator(cfg *config.Config) resolver.DriveEnumerator {
	return resolver.New(o.Host(), cfg.Deps())
}
