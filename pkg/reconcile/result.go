package reconcile

// FieldVerdict is the per-field outcome: the field name and whether both
// sides denote the same real-world value.
type FieldVerdict struct {
	Name      string `json:"name" yaml:"name"`
	Identical bool   `json:"identical" yaml:"identical"`
}

// Verdicts is an ordered verdict list, one entry per union key.
type Verdicts []FieldVerdict

// Map reduces the list to a name -> identical mapping.
func (v Verdicts) Map() map[string]bool {
	m := make(map[string]bool, len(v))
	for _, fv := range v {
		m[fv.Name] = fv.Identical
	}
	return m
}

// Different returns the names of fields judged not identical, in verdict
// order.
func (v Verdicts) Different() []string {
	var names []string
	for _, fv := range v {
		if !fv.Identical {
			names = append(names, fv.Name)
		}
	}
	return names
}

// AllIdentical reports whether every field matched.
func (v Verdicts) AllIdentical() bool {
	for _, fv := range v {
		if !fv.Identical {
			return false
		}
	}
	return true
}
