package common

import "errors"

var (
	// Session lifecycle errors.
	ErrNoToken        = errors.New("authentication failed: no token received")
	ErrNoUser         = errors.New("authentication failed: no user received")
	ErrCorruptSession = errors.New("stored session is corrupt")
)
