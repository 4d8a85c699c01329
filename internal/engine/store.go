package engine

import "skyline/internal/skyline"

// ColumnStore holds buildings in Struct-of-Arrays format
type ColumnStore struct {
	Lefts   []float64
	Rights  []float64
	Heights []float64
}

func (cs *ColumnStore) Len() int { return len(cs.Lefts) }

// Buildings materializes the columns as row values.
func (cs *ColumnStore) Buildings() []skyline.Building {
	out := make([]skyline.Building, cs.Len())
	for i := range out {
		out[i] = skyline.Building{Left: cs.Lefts[i], Right: cs.Rights[i], Height: cs.Heights[i]}
	}
	return out
}
