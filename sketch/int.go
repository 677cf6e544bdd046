package sketch

import "melodraw"

type (
	Int struct {
		IntData
	}

	IntData interface {
		Value() int
		Range() intRange
		setValue(int)
	}

	intRange struct {
		Min, Max int
	}

	PaletteIndex Model
)

func (v Int) Add(delta int) (ok bool) {
	return v.Set(v.Value() + delta)
}

func (v Int) Set(value int) (ok bool) {
	r := v.Range()
	value = r.Clamp(value)
	if value == v.Value() || value < r.Min || value > r.Max {
		return false
	}
	v.setValue(value)
	return true
}

func (r intRange) Clamp(value int) int {
	return max(min(value, r.Max), r.Min)
}

// Model methods

func (m *Model) PaletteIndex() *PaletteIndex { return (*PaletteIndex)(m) }

// PaletteIndex selects which palette entry new strokes are drawn with.

func (v *PaletteIndex) Int() Int           { return Int{v} }
func (v *PaletteIndex) Value() int         { return v.d.PaletteIndex }
func (v *PaletteIndex) setValue(value int) { v.d.PaletteIndex = value }
func (v *PaletteIndex) Range() intRange    { return intRange{0, melodraw.PaletteSize - 1} }
