package device

// FactorsLookUpTable maps a kernel name to a speed-up multiplier used when
// synthesizing a new device's catalogue from an existing one. A kernel name
// absent from the table carries a neutral factor of 1.0.
type FactorsLookUpTable struct {
	factors map[string]float32
}

// NewFactorsLookUpTable builds a lookup table pre-populated from factors.
// A nil or empty map is valid: every lookup then returns the default 1.0.
func NewFactorsLookUpTable(factors map[string]float32) FactorsLookUpTable {
	t := FactorsLookUpTable{factors: make(map[string]float32, len(factors))}
	for k, v := range factors {
		t.factors[k] = v
	}
	return t
}

// Add sets the speed-up factor for name, overwriting any existing value.
func (t *FactorsLookUpTable) Add(name string, speedUp float32) {
	if t.factors == nil {
		t.factors = map[string]float32{}
	}
	t.factors[name] = speedUp
}

// OperatorFactor returns the speed-up factor for name, or the neutral
// default of 1.0 if name is not present.
func (t FactorsLookUpTable) OperatorFactor(name string) float32 {
	if v, ok := t.factors[name]; ok {
		return v
	}
	return 1.0
}

// IsPopulated reports whether any factor has been added.
func (t FactorsLookUpTable) IsPopulated() bool {
	return len(t.factors) > 0
}
