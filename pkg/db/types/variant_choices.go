package types

// VariantChoices maps a variant dimension (size, color, design) to the label
// the shopper picked. Stored as jsonb alongside each order line.
type VariantChoices map[string]string

// Get returns the chosen label for a dimension, or "" when none was picked.
func (v VariantChoices) Get(dimension string) string {
	if v == nil {
		return ""
	}
	return v[dimension]
}

// IsZero reports whether no choice was recorded at all.
func (v VariantChoices) IsZero() bool {
	return len(v) == 0
}
