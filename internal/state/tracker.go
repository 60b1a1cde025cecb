package state

// Category groups commands that share one tracker slot
type Category int

const (
	CategoryProfileRead Category = iota
	CategoryProfileWrite
	CategoryPhotoRead
	CategoryPhotoWrite

	categoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryProfileRead:
		return "profile-read"
	case CategoryProfileWrite:
		return "profile-write"
	case CategoryPhotoRead:
		return "photo-read"
	case CategoryPhotoWrite:
		return "photo-write"
	default:
		return "unknown"
	}
}

// Status is the lifecycle stage of the latest command in a category
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RequestState is the tracker slot of one category
type RequestState struct {
	Status Status
	Err    error
}

// Tracker records the request lifecycle per category.
// Every call overwrites the slot; categories never affect each other.
type Tracker struct {
	states [categoryCount]RequestState
}

// NewTracker returns a tracker with every category idle
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Begin(c Category) {
	t.set(c, RequestState{Status: StatusPending})
}

func (t *Tracker) Succeed(c Category) {
	t.set(c, RequestState{Status: StatusSucceeded})
}

func (t *Tracker) Fail(c Category, err error) {
	t.set(c, RequestState{Status: StatusFailed, Err: err})
}

// State returns the slot of c; unknown categories read as idle
func (t *Tracker) State(c Category) RequestState {
	if c < 0 || c >= categoryCount {
		return RequestState{}
	}
	return t.states[c]
}

// Loading reports whether the latest command of c is in flight
func (t *Tracker) Loading(c Category) bool {
	return t.State(c).Status == StatusPending
}

// Err returns the failure detail of c, nil unless the latest command failed
func (t *Tracker) Err(c Category) error {
	return t.State(c).Err
}

func (t *Tracker) set(c Category, s RequestState) {
	if c < 0 || c >= categoryCount {
		return
	}
	t.states[c] = s
}
