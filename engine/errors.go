// SPDX-License-Identifier: MIT

package engine

import "errors"

var (
	// ErrAlreadyCommitted is returned by ResolveAndCommit once a resolution
	// has been committed and neither ValidateDiagram nor ApplyMove ran since.
	ErrAlreadyCommitted = errors.New("engine: resolution already committed")
	// ErrNotCommitted is returned by ApplyMove without a committed resolution.
	ErrNotCommitted = errors.New("engine: no committed resolution")
)
