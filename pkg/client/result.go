package client

// Result reports the outcome of an operation that returns no value.
type Result struct {
	Err error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// ResultOf carries a value alongside the failure, if any.
// On failure Value holds the benign default documented by the operation.
type ResultOf[T any] struct {
	Value T
	Err   error
}

// OK reports whether the operation succeeded.
func (r ResultOf[T]) OK() bool {
	return r.Err == nil
}
