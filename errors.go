package glide

import "errors"

var (
	// ErrUnknownProperty is returned by AddTween when a string property name
	// matches neither a shortcut nor a named strategy. It is the only
	// construction error surfaced to the caller.
	ErrUnknownProperty = errors.New("glide: unknown property")

	// ErrNotPropertyTarget means a strategy needed PropertyTarget access and
	// the target does not implement it.
	ErrNotPropertyTarget = errors.New("glide: target does not implement PropertyTarget")

	ErrNoValue             = errors.New("glide: property has no value")
	ErrValueType           = errors.New("glide: value has the wrong type")
	ErrDuplicateKey        = errors.New("glide: key already registered")
	ErrTargetNotComparable = errors.New("glide: target is not comparable")
	ErrMismatchedValues    = errors.New("glide: property and end value counts differ")
	ErrUnknownPreset       = errors.New("glide: unknown preset")
)
