package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"accessor-generator/internal/gen"
)

const (
	configName = ".accessor-generator"
	envPrefix  = "ACCESSORGEN"
)

// settings is the tool configuration, merged from defaults, the config
// file, ACCESSORGEN_* variables and flags (later wins).
type settings struct {
	Output       string   `mapstructure:"output"`
	Tags         []string `mapstructure:"tags"`
	Tests        bool     `mapstructure:"tests"`
	Options      string   `mapstructure:"options"`
	Workers      int      `mapstructure:"workers"`
	PointerDeref bool     `mapstructure:"pointer_deref"`
	Verbose      bool     `mapstructure:"verbose"`
	NoColor      bool     `mapstructure:"no_color"`
	DryRun       bool     `mapstructure:"dry_run"`
}

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"output":        "output",
	"tags":          "tags",
	"tests":         "tests",
	"options":       "options",
	"workers":       "workers",
	"pointer-deref": "pointer_deref",
	"verbose":       "verbose",
	"no-color":      "no_color",
	"dry-run":       "dry_run",
}

func newViper() *viper.Viper {
	def := gen.DefaultConfig()

	v := viper.New()
	v.SetDefault("output", def.Output)
	v.SetDefault("tags", []string{})
	v.SetDefault("tests", false)
	v.SetDefault("options", "")
	v.SetDefault("workers", def.Workers)
	v.SetDefault("pointer_deref", def.PointerDeref)
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)
	v.SetDefault("dry_run", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func addConfigFlags(cmd *cobra.Command) {
	def := gen.DefaultConfig()
	flags := cmd.PersistentFlags()

	flags.String("config", "", "Config file (default ./"+configName+".yaml)")
	flags.StringP("output", "o", def.Output, "Generated file name in each package directory")
	flags.StringSlice("tags", nil, "Build tags used when loading packages")
	flags.Bool("tests", false, "Also generate for structs declared in _test.go files")
	flags.String("options", "", "YAML options file configuring types without directives")
	flags.Int("workers", def.Workers, "Packages generated concurrently")
	flags.Bool("pointer-deref", def.PointerDeref, "Allow accessors that dereference pointer fields")
	flags.BoolP("verbose", "v", false, "Verbose logging")
	flags.Bool("no-color", false, "Disable coloured diagnostics")
	flags.Bool("dry-run", false, "Render files without writing them")
}

// loadSettings reads the config file (if any) and binds cmd's flags.
func loadSettings(v *viper.Viper, cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if s.Workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", s.Workers)
	}

	return &s, nil
}

// genConfig converts settings into a generator configuration.
func (s *settings) genConfig(log *zap.Logger) gen.Config {
	cfg := gen.DefaultConfig()
	cfg.Output = s.Output
	cfg.PointerDeref = s.PointerDeref
	cfg.Workers = s.Workers
	cfg.DryRun = s.DryRun
	cfg.Logger = log

	return cfg
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
