package calculation

import "time"

// nowFunc dates report timestamps and resolves ages from birth dates.
var nowFunc = time.Now

// SetNowFunc pins the clock used for ages and report timestamps. Tests only.
func SetNowFunc(f func() time.Time) { nowFunc = f }
