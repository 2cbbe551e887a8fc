package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/logging"
	"github.com/arthur-debert/st7735-setup/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "ST7735_SETUP_"

// LoadOptions controls where configuration comes from
type LoadOptions struct {
	// File is an explicit config file. When empty the XDG location is used
	// if it exists. An explicit file that does not exist is an error.
	File string

	// Overrides are applied last, keyed by dotted path ("workspace.root")
	Overrides map[string]interface{}
}

// Load resolves the layered configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	configPath := opts.File
	if configPath == "" {
		configPath = paths.ConfigFile()
	}
	configPath = paths.ExpandHome(configPath)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	} else if opts.File != "" {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", configPath)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps ST7735_SETUP_TOOLS_PIP_ARGS to tools.pip_args
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + rest
}

func postProcess(cfg *Config) error {
	cfg.Workspace.Root = paths.ExpandHome(cfg.Workspace.Root)
	cfg.Samples.Dir = paths.ExpandHome(cfg.Samples.Dir)

	var problems []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(cfg.Workspace.Root != "", "workspace.root is empty")
	check(cfg.Workspace.Dir != "" && !strings.ContainsAny(cfg.Workspace.Dir, `/\`) &&
		cfg.Workspace.Dir != "." && cfg.Workspace.Dir != "..",
		"workspace.dir %q must be a plain directory name", cfg.Workspace.Dir)
	check(cfg.Repository.URL != "", "repository.url is empty")
	check(cfg.Repository.Depth >= 0, "repository.depth must not be negative")
	check(cfg.Tools.Git != "", "tools.git is empty")
	check(cfg.Tools.Pip != "", "tools.pip is empty")
	check(cfg.Install.Manifest != "" && !filepath.IsAbs(cfg.Install.Manifest),
		"install.manifest must be a path relative to the checkout")
	check(cfg.Install.Target != "", "install.target is empty")
	check(cfg.Timeouts.Clone >= 0 && cfg.Timeouts.Install >= 0, "timeouts must not be negative")
	if cfg.Samples.Enabled {
		check(cfg.Samples.Dir != "", "samples.dir is empty")
		check(cfg.Display.Width > 0 && cfg.Display.Height > 0, "display width and height must be positive")
	}

	if len(problems) > 0 {
		return errors.New(errors.ErrConfigValid, strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}
	return nil
}
