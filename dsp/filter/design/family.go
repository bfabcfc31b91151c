package design

import (
	"fmt"
	"strings"
)

// Family selects the coefficient formula used by [Design].
type Family int

const (
	LowPass Family = iota
	HighPass
	BandPass
	Notch
	PeakingEQ
	LowShelf
	HighShelf
)

var familyNames = [...]string{
	LowPass:   "lowpass",
	HighPass:  "highpass",
	BandPass:  "bandpass",
	Notch:     "notch",
	PeakingEQ: "peaking",
	LowShelf:  "lowshelf",
	HighShelf: "highshelf",
}

// short names used by the device control interface
var familyAliases = map[string]Family{
	"lpf":   LowPass,
	"hpf":   HighPass,
	"bpf":   BandPass,
	"notch": Notch,
	"peq":   PeakingEQ,
	"lsh":   LowShelf,
	"hsh":   HighShelf,
}

// Families returns all supported families in enumeration order.
func Families() []Family {
	return []Family{LowPass, HighPass, BandPass, Notch, PeakingEQ, LowShelf, HighShelf}
}

// Valid reports whether f is one of the defined families.
func (f Family) Valid() bool {
	return f >= LowPass && f <= HighShelf
}

// String returns the lower-case family name.
func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// HasGain reports whether the family uses the peak gain parameter.
func (f Family) HasGain() bool {
	return f == PeakingEQ || f == LowShelf || f == HighShelf
}

// ParseFamily resolves a family from its name or short alias
// (lpf, hpf, bpf, notch, peq, lsh, hsh). Matching is case-insensitive.
func ParseFamily(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range familyNames {
		if n == key {
			return Family(i), nil
		}
	}
	if f, ok := familyAliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("design: %w: %q", ErrUnsupportedFamily, name)
}
