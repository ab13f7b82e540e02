package cluster

import "errors"

// ErrNilFunction is returned when a required function of a Config is nil.
// The error is wrapped with the name of the missing field.
var ErrNilFunction = errors.New("cluster: required function is nil")
