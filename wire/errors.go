package wire

import "errors"

// ErrUnavailable reports that the store could not gather enough replica
// acknowledgments for the requested consistency level. Transports wrap it so
// callers can test with errors.Is.
var ErrUnavailable = errors.New("not enough replicas available for requested consistency")
