package aggregate

import (
	"errors"
	"fmt"
)

var ErrEmptyResultSet = errors.New("empty result set")

// EmptyGroupError reports a group with nothing to aggregate. Failed counts
// results that were present but excluded because retrieval failed.
type EmptyGroupError struct {
	Group  string
	Failed int
}

func (e *EmptyGroupError) Error() string {
	msg := fmt.Sprintf("%s for group %q", ErrEmptyResultSet, e.Group)
	if e.Failed > 0 {
		msg += fmt.Sprintf(" (%d failed retrievals)", e.Failed)
	}
	return msg
}

func (e *EmptyGroupError) Is(target error) bool {
	return target == ErrEmptyResultSet
}
