// File: /repositories/errors.go
package repositories

import "errors"

// ErrAlreadyResponded is returned when a conditional state transition
// finds the row no longer PENDING. Transitions out of PENDING are final,
// so a lost race must not overwrite the earlier response.
var ErrAlreadyResponded = errors.New("already responded")
