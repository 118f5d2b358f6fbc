package screen

// State is the load state of a single screen
type State string

const (
	// StateUnloaded means the screen has never been built, or is not registered
	StateUnloaded State = "Unloaded"

	// StateLoading means the constructor is running
	StateLoading State = "Loading"

	// StateLoaded means the screen is built and attached. This state is final.
	StateLoaded State = "Loaded"

	// StateFailed means the last load attempt failed. The next load retries.
	StateFailed State = "Failed"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// CanLoad returns true if a load attempt may start from this state
func (s State) CanLoad() bool {
	return s == StateUnloaded || s == StateFailed
}
