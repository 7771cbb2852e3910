package costmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetHardwareConfig_ReturnsMatchingDevice(t *testing.T) {
	path := writeTempFile(t, "hw.json", `{"NPU27.0": {"dpu_freq_mhz": 975, "shave_freq_mhz": 975}}`)
	cfg, err := GetHardwareConfig(path, "NPU27.0")
	require.NoError(t, err)
	assert.Equal(t, 975.0, cfg.DPUFreqMHz)
	assert.Equal(t, 975.0, cfg.ShaveFreqMHz)
}

func TestGetHardwareConfig_ErrorListsAvailableDevices(t *testing.T) {
	path := writeTempFile(t, "hw.json", `{"NPU27.0": {"dpu_freq_mhz": 975, "shave_freq_mhz": 975}}`)
	_, err := GetHardwareConfig(path, "NPU99.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NPU27.0")
}

func TestGetHardwareConfig_ErrorsOnUnreadableFile(t *testing.T) {
	_, err := GetHardwareConfig(filepath.Join(t.TempDir(), "missing.json"), "NPU27.0")
	assert.Error(t, err)
}

func TestGetFactors_ReturnsPerDeviceKernelMap(t *testing.T) {
	path := writeTempFile(t, "coeffs.yaml", "version: \"1\"\nfactors:\n  NPU40.0:\n    sigmoid: 1.5\n")
	factors, err := GetFactors(path, "NPU40.0")
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), factors["sigmoid"])
}

func TestGetFactors_ErrorListsAvailableDevices(t *testing.T) {
	path := writeTempFile(t, "coeffs.yaml", "version: \"1\"\nfactors:\n  NPU40.0:\n    sigmoid: 1.5\n")
	_, err := GetFactors(path, "NPU99.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NPU40.0")
}

func TestValidateCoefficientsFile_RejectsNonPositiveFactor(t *testing.T) {
	path := writeTempFile(t, "coeffs.yaml", "version: \"1\"\nfactors:\n  NPU40.0:\n    sigmoid: 0\n")
	err := ValidateCoefficientsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive")
}

func TestValidateCoefficientsFile_AcceptsWellFormedFile(t *testing.T) {
	path := writeTempFile(t, "coeffs.yaml", "version: \"1\"\nfactors:\n  NPU40.0:\n    sigmoid: 1.2\n")
	assert.NoError(t, ValidateCoefficientsFile(path))
}
