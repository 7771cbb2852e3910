package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorsLookUpTable_DefaultsToNeutralFactor(t *testing.T) {
	tbl := NewFactorsLookUpTable(nil)
	assert.Equal(t, float32(1.0), tbl.OperatorFactor("sigmoid"))
	assert.False(t, tbl.IsPopulated())
}

func TestFactorsLookUpTable_ReturnsPreseededFactor(t *testing.T) {
	tbl := NewFactorsLookUpTable(map[string]float32{"sigmoid": 2.5})
	assert.Equal(t, float32(2.5), tbl.OperatorFactor("sigmoid"))
	assert.True(t, tbl.IsPopulated())
}

func TestFactorsLookUpTable_AddOverwritesExistingValue(t *testing.T) {
	tbl := NewFactorsLookUpTable(nil)
	tbl.Add("gather", 1.5)
	tbl.Add("gather", 3.0)
	assert.Equal(t, float32(3.0), tbl.OperatorFactor("gather"))
}
