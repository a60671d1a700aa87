package domain

import "github.com/shopspring/decimal"

// Ratio is the result of a division that may have no meaningful value,
// such as a margin over zero revenue.
type Ratio struct {
	Defined bool            `json:"defined" yaml:"defined"`
	Value   decimal.Decimal `json:"value" yaml:"value"`
	Reason  string          `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// DefinedRatio wraps a computed value.
func DefinedRatio(v decimal.Decimal) Ratio {
	return Ratio{Defined: true, Value: v}
}

// UndefinedRatio records why no value could be computed.
func UndefinedRatio(reason string) Ratio {
	return Ratio{Reason: reason}
}
