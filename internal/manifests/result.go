package manifests

// Status tells whether a Result carries data.
type Status int

const (
	StatusUnavailable Status = iota
	StatusOK
)

func (s Status) String() string {
	if s == StatusOK {
		return "ok"
	}
	return "unavailable"
}

// Result is the outcome of a read that degrades instead of failing.
// Err is only set when Status is StatusUnavailable.
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

// OK reports whether Value holds data.
func (r Result[T]) OK() bool {
	return r.Status == StatusOK
}

func ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Status: StatusOK}
}

func unavailable[T any](err error) Result[T] {
	return Result[T]{Status: StatusUnavailable, Err: err}
}
