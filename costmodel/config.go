// Package costmodel assembles the shave sub-packages into CostModel, the
// facade a caller actually queries: check the cache, sanitise on a miss,
// fall through to the provider chain, cache the result, and optionally log
// the query.
package costmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// HardwareConfig is one device generation's profile-time clock pair, loaded
// from a JSON file keyed by device name.
type HardwareConfig struct {
	DPUFreqMHz   float64 `json:"dpu_freq_mhz"`
	ShaveFreqMHz float64 `json:"shave_freq_mhz"`
}

func parseHardwareConfig(path string) (map[string]HardwareConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hardware config %q: %w", path, err)
	}
	var cfg map[string]HardwareConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse hardware config JSON: %w", err)
	}
	return cfg, nil
}

// GetHardwareConfig returns the calibrated clock pair for device, or an
// error listing the devices the file does carry.
func GetHardwareConfig(path, device string) (HardwareConfig, error) {
	cfg, err := parseHardwareConfig(path)
	if err != nil {
		return HardwareConfig{}, fmt.Errorf("get hardware config: %w", err)
	}
	c, ok := cfg[device]
	if !ok {
		available := make([]string, 0, len(cfg))
		for k := range cfg {
			available = append(available, k)
		}
		sort.Strings(available)
		return HardwareConfig{}, fmt.Errorf("device %q not found in hardware config (available: %v)", device, available)
	}
	return c, nil
}

// CoefficientsFile is the top-level shape of a kernel-coefficient override
// file: a speed-up factor table per device generation, keyed by kernel name.
type CoefficientsFile struct {
	Version string                        `yaml:"version"`
	Factors map[string]map[string]float32 `yaml:"factors"` // device -> kernel -> speed_up
}

func parseCoefficientsFile(path string) (*CoefficientsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coefficients config %q: %w", path, err)
	}
	var cfg CoefficientsFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse coefficients config YAML: %w", err)
	}
	return &cfg, nil
}

// GetFactors returns the kernel->speed_up map for device, or an error
// listing the devices the file does carry.
func GetFactors(path, device string) (map[string]float32, error) {
	cfg, err := parseCoefficientsFile(path)
	if err != nil {
		return nil, fmt.Errorf("get factors: %w", err)
	}
	factors, ok := cfg.Factors[device]
	if !ok {
		available := make([]string, 0, len(cfg.Factors))
		for k := range cfg.Factors {
			available = append(available, k)
		}
		sort.Strings(available)
		return nil, fmt.Errorf("device %q not found in coefficients config (available: %v)", device, available)
	}
	return factors, nil
}

// ValidateCoefficientsFile parses path and reports any malformed entries:
// an empty device name, a kernel with a non-positive speed-up factor, or an
// unparseable file.
func ValidateCoefficientsFile(path string) error {
	cfg, err := parseCoefficientsFile(path)
	if err != nil {
		return err
	}
	for device, kernels := range cfg.Factors {
		if device == "" {
			return fmt.Errorf("coefficients config: empty device name")
		}
		for kernel, factor := range kernels {
			if factor <= 0 {
				return fmt.Errorf("coefficients config: device %q kernel %q has non-positive speed-up factor %g", device, kernel, factor)
			}
		}
	}
	return nil
}
