package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/gajzzs/rearm-upload/internal/platform"
	"github.com/gajzzs/rearm-upload/internal/resolver"
)

const (
	DefaultLabel       = "REARM"
	DefaultFilename    = "FIRMWARE.CUR"
	DefaultVolumesRoot = "/Volumes"
	DefaultUploadFlags = "-P$UPLOAD_PORT"
	DefaultBuildDir    = ".pio/build"
)

// Config holds the fixed inputs of one resolution run.
type Config struct {
	TargetLabel    string `json:"target_label"`
	TargetFilename string `json:"target_filename"`
	MediaRoot      string `json:"media_root"`
	VolumesRoot    string `json:"volumes_root"`
	UploadFlags    string `json:"upload_flags"`
	BuildDir       string `json:"build_dir"`
}

// DefaultMediaRoot is /media/<user>, where desktop Linux automounts
// removable drives. It is empty when the user cannot be determined.
func DefaultMediaRoot() string {
	name, err := platform.CurrentUser()
	if err != nil {
		glog.V(1).Infof("no default media root: %v", err)
		return ""
	}
	return filepath.Join("/", "media", name)
}

func Default() *Config {
	return &Config{
		TargetLabel:    DefaultLabel,
		TargetFilename: DefaultFilename,
		MediaRoot:      DefaultMediaRoot(),
		VolumesRoot:    DefaultVolumesRoot,
		UploadFlags:    DefaultUploadFlags,
		BuildDir:       DefaultBuildDir,
	}
}

// Load reads path over the defaults. Fields missing from the file keep
// their default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Annotatef(err, "parse config %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.TargetLabel) == "" {
		return errors.NotValidf("empty target label")
	}
	if strings.TrimSpace(c.TargetFilename) == "" {
		return errors.NotValidf("empty target filename")
	}
	if strings.ContainsAny(c.TargetFilename, `/\`) {
		return errors.NotValidf("target filename %q with a path separator", c.TargetFilename)
	}
	return nil
}

func (c *Config) Target() resolver.Target {
	return resolver.Target{Label: c.TargetLabel, Filename: c.TargetFilename}
}

// Deps returns the resolver dependencies for the configured roots.
func (c *Config) Deps() resolver.Deps {
	return resolver.Deps{MediaRoot: c.MediaRoot, VolumesRoot: c.VolumesRoot}
}
