// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	"io/ioutil"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/templexxx/rsecc/faultmodel"
)

// Trial modes.
const (
	ModeRandom     = "random"
	ModeExhaustive = "exhaustive"
	ModeFaultModel = "fault-model"
)

// Settings describes one simulation run.
type Settings struct {
	Mode       string   `yaml:"mode"`
	Trials     int      `yaml:"trials"`
	Seed       *int64   `yaml:"seed"` // nil picks one from the clock.
	Errors     int      `yaml:"errors"`
	ReuseEvery int      `yaml:"reuse_every"`
	CSVOut     string   `yaml:"csv_out"`
	Codes      []string `yaml:"rs_codes"`
	Dist       string   `yaml:"dist"`
	Correlated bool     `yaml:"correlated"`
	Contiguous bool     `yaml:"contiguous"`
	LogLevel   string   `yaml:"log_level"`
}

// DefaultSettings returns fault model mode with 10000 trials per code.
func DefaultSettings() *Settings {
	return &Settings{
		Mode:       ModeFaultModel,
		Trials:     10000,
		Errors:     1,
		ReuseEvery: 13,
		CSVOut:     "-",
		Dist:       faultmodel.DefaultDistribution.String(),
		LogLevel:   "WARNING",
	}
}

// LoadSettings overlays the YAML file at path onto s.
func LoadSettings(path string, s *Settings) error {
	d, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err = yaml.Unmarshal(d, s); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate checks s, clamps Errors and ReuseEvery to at least 1
// and fixes an unset Seed from the clock.
func (s *Settings) Validate() error {
	switch s.Mode {
	case ModeRandom, ModeFaultModel:
		if s.Trials < 0 {
			return errors.Errorf("trials must be non-negative, got: %d", s.Trials)
		}
	case ModeExhaustive:
		if s.Errors != 1 {
			return errors.New("exhaustive mode supports only errors=1")
		}
	default:
		return errors.Errorf("unknown mode: %q", s.Mode)
	}
	if s.Errors < 1 {
		s.Errors = 1
	}
	if s.ReuseEvery < 1 {
		s.ReuseEvery = 1
	}
	if _, err := s.Distribution(); err != nil {
		return err
	}
	if _, err := logging.LogLevel(s.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	if _, err := SelectCodes(s.Codes); err != nil {
		return err
	}
	if s.Seed == nil {
		seed := time.Now().UnixNano()
		s.Seed = &seed
	}
	return nil
}

// SeedValue returns the seed, 0 if unset.
func (s *Settings) SeedValue() int64 {
	if s.Seed == nil {
		return 0
	}
	return *s.Seed
}

// Distribution parses Dist, empty means the default distribution.
func (s *Settings) Distribution() (faultmodel.Distribution, error) {
	if s.Dist == "" {
		return faultmodel.DefaultDistribution, nil
	}
	d, err := faultmodel.ParseDistribution(s.Dist)
	return d, errors.Wrap(err, "dist")
}
