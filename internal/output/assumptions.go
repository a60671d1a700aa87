package output

import "github.com/napkincalc/napkin/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when a report carries none of its own.
var DefaultAssumptions = func() []string {
	ga := domain.DefaultAssumptions()
	return ga.GenerateAssumptions()
}()

func reportAssumptions(assumptions []string) []string {
	if len(assumptions) == 0 {
		return DefaultAssumptions
	}
	return assumptions
}
