package config

import (
	"fmt"
	"runtime"

	"github.com/jinzhu/copier"
	"github.com/spf13/viper"

	"github.com/harlequix/hammify/internal/format"
	"github.com/harlequix/hammify/internal/stream"
)

type Config struct {
	MessageBits uint   `mapstructure:"buffer"`
	Workers     int    `mapstructure:"workers"`
	Batch       int    `mapstructure:"batch"`
	Verbose     bool   `mapstructure:"verbose"`
	Trace       string `mapstructure:"trace"`
	Profile     string `mapstructure:"profile"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("buffer", 8)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("batch", 256)
	v.SetDefault("verbose", false)
	v.SetDefault("trace", "")
	v.SetDefault("profile", "")
	v.SetEnvPrefix("HAMMIFY")
	v.AutomaticEnv()
}

// SetConfigFile reads configFile into the global viper instance. An empty
// name leaves the defaults and flags in place.
func SetConfigFile(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return nil
}

// Load builds the configuration from the global viper instance.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := format.NewLayout(c.MessageBits); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Batch < 1 {
		return fmt.Errorf("batch must be at least 1, got %d", c.Batch)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", c.Profile)
	}
	return nil
}

// StreamOptions returns the pipeline settings carried by c.
func (c Config) StreamOptions() (stream.Options, error) {
	var opts stream.Options
	if err := copier.Copy(&opts, &c); err != nil {
		return stream.Options{}, err
	}
	return opts, nil
}
