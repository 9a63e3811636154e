package app

// Phase is a step of the startup sequence.
type Phase int32

const (
	PhaseCreated Phase = iota
	PhaseRelations
	PhaseMiddlewareRegistered
	PhaseDatabaseAuthenticated
	PhaseSchemaSynced
	PhaseListening
	PhaseStopped
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseCreated:               "created",
	PhaseRelations:             "relations",
	PhaseMiddlewareRegistered:  "middleware_registered",
	PhaseDatabaseAuthenticated: "database_authenticated",
	PhaseSchemaSynced:          "schema_synced",
	PhaseListening:             "listening",
	PhaseStopped:               "stopped",
	PhaseFailed:                "failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// DatabaseState is the last known reachability of the datastore.
type DatabaseState int32

const (
	DatabaseUnknown DatabaseState = iota
	DatabaseReady
	DatabaseUnavailable
)

func (s DatabaseState) String() string {
	switch s {
	case DatabaseReady:
		return "ready"
	case DatabaseUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}
