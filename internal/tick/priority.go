package tick

import "github.com/pumpkin-go/blockcore/internal/worldstate"

// Priority re-exports worldstate.Priority so scheduler.go's own API
// reads naturally as tick.Priority/tick.Normal, while staying the exact
// same type worldstate.TickScheduler's interface expects from
// *Scheduler.Schedule.
type Priority = worldstate.Priority

const (
	ExtremelyHigh = worldstate.ExtremelyHigh
	High          = worldstate.High
	Normal        = worldstate.Normal
	Low           = worldstate.Low
	ExtremelyLow  = worldstate.ExtremelyLow
)
