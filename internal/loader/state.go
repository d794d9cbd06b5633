package loader

import "brewing-items/internal/common"

// State is the phase of the loader.
type State int32

const (
	Idle State = iota
	Bootstrapping
	LoadingTier
	LoadingItems
	Ready
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Bootstrapping:
		return "bootstrapping"
	case LoadingTier:
		return "loading-tier"
	case LoadingItems:
		return "loading-items"
	case Ready:
		return "ready"
	default:
		return common.UnknownStr
	}
}
