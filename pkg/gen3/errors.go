package gen3

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when a buffer is too short for a region.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrUnknownSectionID is returned by schema lookups for ids outside 0-13.
	ErrUnknownSectionID = errors.New("unknown section id")
	// ErrInvalidDataSize is returned when replacement bytes do not match the region size.
	ErrInvalidDataSize = errors.New("invalid data size")
	// ErrOffsetOutOfRange is returned when a patch falls outside a section payload.
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrInvalidWindow is returned for validation windows that are not a positive
	// multiple of 4 within the payload.
	ErrInvalidWindow = errors.New("invalid validation window")
)

// TruncatedInputError reports the region that did not fit in the input buffer.
type TruncatedInputError struct {
	Region string
	Want   int
	Have   int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input: %s needs %d bytes, have %d", e.Region, e.Want, e.Have)
}

// Is makes errors.Is(err, ErrTruncatedInput) match.
func (e *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

func truncated(region string, want, have int) error {
	return &TruncatedInputError{Region: region, Want: want, Have: have}
}

func unknownSectionID(id uint16) error {
	return fmt.Errorf("%w: %d", ErrUnknownSectionID, id)
}
