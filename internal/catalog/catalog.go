// Package catalog talks to a TAP (Table Access Protocol) service and
// turns its CSV output into stellar state sets. It owns the row-level
// quality filtering: stars that reach the rest of the pipeline always
// carry a positive distance and complete kinematics.
package catalog

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// DefaultEndpoint is the ESA Gaia archive synchronous TAP endpoint.
	DefaultEndpoint = "https://gea.esac.esa.int/tap-server/tap/sync"

	// DefaultTable is the Gaia DR3 main source table.
	DefaultTable = "gaiadr3.gaia_source"

	// DefaultEpochYear is the reference epoch of DR3 astrometry, J2016.0.
	DefaultEpochYear = 2016.0
)

const j2000JD = 2451545.0

// EpochTime converts a Julian epoch year such as 2016.0 to an instant.
func EpochTime(year float64) time.Time {
	return julian.JDToTime(j2000JD + (year-2000.0)*365.25)
}
