package domain

import (
	"fmt"
	"strings"
)

// CalculatorKind selects which calculator a scenario runs. Names are
// resolved once when a configuration is parsed, never looked up per run.
type CalculatorKind int

const (
	KindUnknown CalculatorKind = iota
	KindTraditionalFIRE
	KindBaristaFIRE
	KindCoastFIRE
	KindSideHustleFIRE
	KindBusiness
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindTraditionalFIRE: "traditional_fire",
	KindBaristaFIRE:     "barista_fire",
	KindCoastFIRE:       "coast_fire",
	KindSideHustleFIRE:  "side_hustle_fire",
	KindBusiness:        "business",
}

var kindTitles = [...]string{
	KindUnknown:         "Unknown",
	KindTraditionalFIRE: "Traditional FIRE",
	KindBaristaFIRE:     "Barista FIRE",
	KindCoastFIRE:       "Coast FIRE",
	KindSideHustleFIRE:  "Side-Hustle FIRE",
	KindBusiness:        "Business Break-Even",
}

// AllCalculatorKinds lists every runnable kind in display order.
func AllCalculatorKinds() []CalculatorKind {
	return []CalculatorKind{KindTraditionalFIRE, KindBaristaFIRE, KindCoastFIRE, KindSideHustleFIRE, KindBusiness}
}

// ParseCalculatorKind resolves a configuration name such as "coast_fire".
// Hyphens and case are ignored.
func ParseCalculatorKind(name string) (CalculatorKind, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, k := range AllCalculatorKinds() {
		if kindNames[k] == n {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown calculator kind %q", name)
}

func (k CalculatorKind) valid() bool {
	return k > KindUnknown && int(k) < len(kindNames)
}

func (k CalculatorKind) String() string {
	if !k.valid() {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Title is the human readable calculator name.
func (k CalculatorKind) Title() string {
	if !k.valid() {
		return kindTitles[KindUnknown]
	}
	return kindTitles[k]
}

// IsFIRE reports whether the kind runs the balance projection engine.
func (k CalculatorKind) IsFIRE() bool {
	switch k {
	case KindTraditionalFIRE, KindBaristaFIRE, KindCoastFIRE, KindSideHustleFIRE:
		return true
	}
	return false
}

func (k CalculatorKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("cannot marshal calculator kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *CalculatorKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCalculatorKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
