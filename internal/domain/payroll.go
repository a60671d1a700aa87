package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OvertimeRule selects how worked hours split into regular, overtime and
// double-time hours.
type OvertimeRule int

const (
	RuleNone OvertimeRule = iota
	RuleWeekly40
	RuleDaily8
	RuleCalifornia
)

var overtimeRuleNames = [...]string{
	RuleNone:       "none",
	RuleWeekly40:   "weekly_40",
	RuleDaily8:     "daily_8",
	RuleCalifornia: "california",
}

// ParseOvertimeRule resolves a rule name such as "weekly_40".
func ParseOvertimeRule(name string) (OvertimeRule, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, s := range overtimeRuleNames {
		if s == n {
			return OvertimeRule(i), nil
		}
	}
	return RuleNone, fmt.Errorf("unknown overtime rule %q", name)
}

func (r OvertimeRule) String() string {
	if r < 0 || int(r) >= len(overtimeRuleNames) {
		return fmt.Sprintf("OvertimeRule(%d)", int(r))
	}
	return overtimeRuleNames[r]
}

func (r OvertimeRule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *OvertimeRule) UnmarshalText(text []byte) error {
	parsed, err := ParseOvertimeRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// PayBreakdown is a week of hours and gross pay split by pay multiplier.
type PayBreakdown struct {
	Rule            OvertimeRule    `json:"rule"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	DoubleTimeHours decimal.Decimal `json:"double_time_hours"`
	RegularPay      decimal.Decimal `json:"regular_pay"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	DoubleTimePay   decimal.Decimal `json:"double_time_pay"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
}

// TotalHours sums every category of hours.
func (p PayBreakdown) TotalHours() decimal.Decimal {
	return p.RegularHours.Add(p.OvertimeHours).Add(p.DoubleTimeHours)
}
