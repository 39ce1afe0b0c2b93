package container

import "errors"

var (
	// ErrIndexOutOfRange is returned for a token index outside the
	// valid range of a Doc or Span.
	ErrIndexOutOfRange = errors.New("token index out of range")

	// ErrInvalidSpan is returned for span bounds that do not satisfy
	// 0 <= start <= end <= Len.
	ErrInvalidSpan = errors.New("invalid span range")

	// ErrTokenOrder is returned by Validate for records that break the
	// producer contract.
	ErrTokenOrder = errors.New("token records out of order")
)
