// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

const (
	// RejectionThreshold is the mean badness above which a probe set is
	// discarded no matter how many probes it holds
	RejectionThreshold = 1e6

	// MinProbeLength is the shortest window the thermodynamic model covers
	MinProbeLength = 4

	// MaxProbeLength is the longest window the thermodynamic model covers
	MaxProbeLength = 60
)

// ProbesConfig is settings about the probe windows and their placement
type ProbesConfig struct {
	// probe length in bp when every probe is the same length
	Length int `mapstructure:"length"`

	// the minimum probe length of a mixed-length design (0 = fixed length)
	MinLength int `mapstructure:"min-length"`

	// the maximum probe length of a mixed-length design (0 = fixed length)
	MaxLength int `mapstructure:"max-length"`

	// the minimum gap in bp between the end of one probe and the start of the next
	Spacer int `mapstructure:"spacer"`

	// the number of probes to aim for; fewer are kept when fewer fit
	MaxCount int `mapstructure:"max-probes"`
}

// ThermoConfig is settings for the probe-target duplex model
type ThermoConfig struct {
	// the Gibbs free energy (kcal/mol) every probe is pulled toward
	TargetGibbs float64 `mapstructure:"target-gibbs"`

	// the most negative allowable Gibbs free energy (kcal/mol)
	MinGibbs float64 `mapstructure:"min-gibbs"`

	// the least negative allowable Gibbs free energy (kcal/mol)
	MaxGibbs float64 `mapstructure:"max-gibbs"`

	// total probe strand concentration (mol/L) for the Tm estimate
	ProbeConc float64 `mapstructure:"probe-conc"`

	// monovalent cation concentration (mol/L) for the Tm salt correction
	SodiumConc float64 `mapstructure:"sodium-conc"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Probes is window length and placement settings
	Probes ProbesConfig `mapstructure:"probes"`

	// Thermo is duplex model settings
	Thermo ThermoConfig `mapstructure:"thermo"`
}

// New returns a new Config struct populated by
// Viper settings (either from a settings file)
// and/or command line arguments
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into config: %v", err)
	}

	return &c
}

// setDefaults fills in settings no flag or settings file supplied
func setDefaults() {
	viper.SetDefault("probes.length", 20)
	viper.SetDefault("probes.spacer", 2)
	viper.SetDefault("probes.max-probes", 48)
	viper.SetDefault("thermo.target-gibbs", -23.0)
	viper.SetDefault("thermo.min-gibbs", -26.0)
	viper.SetDefault("thermo.max-gibbs", -20.0)
	viper.SetDefault("thermo.probe-conc", 5e-5)
	viper.SetDefault("thermo.sodium-conc", 0.33)
}

// LengthRange returns the inclusive range of probe lengths to design with.
// mixed is true when min-length/max-length were set and the mixed-length
// optimizer should run, even if the range holds a single length
func (c *Config) LengthRange() (min, max int, mixed bool) {
	if c.Probes.MinLength > 0 || c.Probes.MaxLength > 0 {
		return c.Probes.MinLength, c.Probes.MaxLength, true
	}
	return c.Probes.Length, c.Probes.Length, false
}

// Validate rejects settings no design run should start with.
// It runs before any scoring or placement work
func (c *Config) Validate() error {
	min, max, mixed := c.LengthRange()

	if min < MinProbeLength || max > MaxProbeLength {
		return fmt.Errorf("probe lengths must be between %d and %d bp, got %d-%d", MinProbeLength, MaxProbeLength, min, max)
	}
	if mixed && min > max {
		return fmt.Errorf("min-length (%d) is greater than max-length (%d)", min, max)
	}
	if c.Probes.Spacer < 0 {
		return fmt.Errorf("spacer must be zero or more bp, got %d", c.Probes.Spacer)
	}
	if c.Probes.MaxCount < 1 {
		return fmt.Errorf("max-probes must be at least 1, got %d", c.Probes.MaxCount)
	}
	if c.Thermo.MinGibbs > c.Thermo.MaxGibbs {
		return fmt.Errorf("min-gibbs (%.1f) is greater than max-gibbs (%.1f)", c.Thermo.MinGibbs, c.Thermo.MaxGibbs)
	}
	if c.Thermo.ProbeConc <= 0 {
		return fmt.Errorf("probe-conc must be positive, got %g", c.Thermo.ProbeConc)
	}
	if c.Thermo.SodiumConc <= 0 {
		return fmt.Errorf("sodium-conc must be positive, got %g", c.Thermo.SodiumConc)
	}

	return nil
}
