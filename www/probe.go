package www

import (
	"fmt"
	"net/http"
	"time"

	"marnewatch/engine/liveness"
)

// staleThresholdMinutes is how far the last poll attempt may lag before the
// probe reports unhealthy. Deliberately not derived from the poll interval.
const staleThresholdMinutes = 5

// ProbeHandler answers health checks with the number of minutes since the
// last poll attempt, 503 once that exceeds the threshold.
func (router *Router) ProbeHandler(w http.ResponseWriter, r *http.Request) {
	elapsed := router.Tracker.MinutesSince(liveness.EpochMinute(time.Now()))
	if elapsed > staleThresholdMinutes {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	fmt.Fprintf(w, "%d", elapsed)
}
