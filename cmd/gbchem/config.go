/*
 * config.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"strings"

	"github.com/rmera/gbchem/biotype"
	"github.com/rmera/gbchem/gbsa"
	"github.com/rmera/gbchem/top"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "GBCHEM"

// LogConfig selects the level and the encoding (console or json) of the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Config contains all the settings for the gbchem commands.
type Config struct {
	ForceField        string    `mapstructure:"force_field" yaml:"force_field"`
	BiotypeFile       string    `mapstructure:"biotype_file" yaml:"biotype_file"` //replaces the built-in table
	RadiusFile        string    `mapstructure:"radius_file" yaml:"radius_file"`
	RadiusScale       float64   `mapstructure:"radius_scale" yaml:"radius_scale"`
	SoluteDielectric  float64   `mapstructure:"solute_dielectric" yaml:"solute_dielectric"`
	SolventDielectric float64   `mapstructure:"solvent_dielectric" yaml:"solvent_dielectric"`
	IncludeACE        bool      `mapstructure:"include_ace" yaml:"include_ace"`
	Defines           []string  `mapstructure:"defines" yaml:"defines"`
	FollowIncludes    bool      `mapstructure:"follow_includes" yaml:"follow_includes"`
	Log               LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() *Config {
	o := gbsa.DefaultOptions()
	return &Config{
		ForceField:        biotype.Amber.String(),
		RadiusScale:       o.RadiusScale,
		SoluteDielectric:  o.SoluteDielectric,
		SolventDielectric: o.SolventDielectric,
		IncludeACE:        o.IncludeACE,
		Defines:           []string{},
		Log:               LogConfig{Level: "info", Format: "console"},
	}
}

// Validate checks the values that can't be fixed later on.
func (C *Config) Validate() error {
	if _, err := biotype.ParseForceField(C.ForceField); err != nil {
		return err
	}
	if C.RadiusScale <= 0 {
		return fmt.Errorf("radius_scale must be positive, got %g", C.RadiusScale)
	}
	if _, err := zapcore.ParseLevel(C.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", C.Log.Level, err)
	}
	switch C.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log format must be console or json, got %q", C.Log.Format)
	}
	return nil
}

// GBOptions returns the implicit-solvent options in C.
func (C *Config) GBOptions() gbsa.Options {
	return gbsa.Options{
		RadiusFile:        C.RadiusFile,
		RadiusScale:       C.RadiusScale,
		SoluteDielectric:  C.SoluteDielectric,
		SolventDielectric: C.SolventDielectric,
		IncludeACE:        C.IncludeACE,
	}
}

// TopOptions returns the options to read topologies, logging to lg.
func (C *Config) TopOptions(lg *zap.Logger) top.Options {
	return top.Options{Defines: C.Defines, FollowIncludes: C.FollowIncludes, Log: lg}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	d := DefaultConfig()
	v.SetDefault("force_field", d.ForceField)
	v.SetDefault("biotype_file", d.BiotypeFile)
	v.SetDefault("radius_file", d.RadiusFile)
	v.SetDefault("radius_scale", d.RadiusScale)
	v.SetDefault("solute_dielectric", d.SoluteDielectric)
	v.SetDefault("solvent_dielectric", d.SolventDielectric)
	v.SetDefault("include_ace", d.IncludeACE)
	v.SetDefault("defines", d.Defines)
	v.SetDefault("follow_includes", d.FollowIncludes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	return v
}

// flag name -> config key
var flagKeys = map[string]string{
	"force-field":        "force_field",
	"biotype-file":       "biotype_file",
	"radius-file":        "radius_file",
	"radius-scale":       "radius_scale",
	"solute-dielectric":  "solute_dielectric",
	"solvent-dielectric": "solvent_dielectric",
	"ace":                "include_ace",
	"define":             "defines",
	"follow-includes":    "follow_includes",
	"log-level":          "log.level",
	"log-format":         "log.format",
}

// LoadConfig builds the configuration from the defaults, the YAML file path (if not empty),
// GBCHEM_ environment variables and the flags of cmd that were set, in increasing order of priority.
func LoadConfig(path string, cmd *cobra.Command) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}
	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: can't bind flag %s: %w", name, err)
				}
			}
		}
	}
	C := &Config{}
	if err := v.Unmarshal(C); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := C.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return C, nil
}

// NewLogger builds the logger described by L. Logs go to stderr.
func NewLogger(L LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(L.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = L.Format
	zc.DisableStacktrace = true
	if L.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zc.Build()
}
