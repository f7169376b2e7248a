package domain

// StoreState is the lifecycle state of the retrieval store.
//
// Transitions are one-way for the process lifetime:
//
//	StateUninitialized -> StateReady     (index built or loaded)
//	StateUninitialized -> StateDegraded  (embedding backend failed)
//	StateReady         -> StateDegraded  (runtime failure during add/query)
//
// StateDegraded is terminal; there is no automatic path back.
type StoreState int

const (
	// StateUninitialized means no index has been built or loaded yet.
	StateUninitialized StoreState = iota

	// StateReady means the vector index is built and persisted.
	StateReady

	// StateDegraded means semantic retrieval is disabled for the rest of
	// the process lifetime and reads are served by the fallback generator.
	StateDegraded
)

// String returns a human-readable state name.
func (s StoreState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}
