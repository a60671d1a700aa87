package output

import (
	"sort"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	GoalAge      int
	FinalBalance decimal.Decimal
	// YearsAhead is how much sooner the recommended scenario reaches its
	// goal than the slowest scenario that reaches one at all.
	YearsAhead int
}

// AnalyzeScenarios picks the FIRE scenario that reaches its goal earliest,
// breaking ties on the larger final balance. Business scenarios are ranked
// separately through Highlights.
func AnalyzeScenarios(report *domain.Report) Recommendation {
	type ranked struct {
		name    string
		age     int
		balance decimal.Decimal
	}
	var ranks []ranked
	for _, sc := range report.Scenarios {
		if !sc.Kind.IsFIRE() || !sc.Goal.Reached {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, *sc.Goal.Period, sc.FinalBalance})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].age != ranks[j].age {
			return ranks[i].age < ranks[j].age
		}
		return ranks[i].balance.GreaterThan(ranks[j].balance)
	})
	best, slowest := ranks[0], ranks[len(ranks)-1]
	return Recommendation{
		ScenarioName: best.name,
		GoalAge:      best.age,
		FinalBalance: best.balance,
		YearsAhead:   slowest.age - best.age,
	}
}
