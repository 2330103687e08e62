package domain

import "errors"

// ErrDuplicateMember is returned in strict mode when a source supplies a
// member name the target already holds and no policy was configured.
var ErrDuplicateMember = errors.New("duplicate member")

// ErrMemberNotFound is returned when a named member is looked up on a table
// that does not hold it.
var ErrMemberNotFound = errors.New("member not found")

// ErrNotCallable is returned when a data member is invoked as a method.
var ErrNotCallable = errors.New("member is not callable")

// ErrFieldNotInitialized is returned when a method asks its receiver for a
// field that no initialization hook has set.
var ErrFieldNotInitialized = errors.New("field not initialized")
