package dusk

import (
	"errors"
	"fmt"
)

// ErrShaderUnavailable is returned by a Device when a named technique cannot
// be loaded or compiled. The pipeline recovers by falling back to the Solid
// passthrough technique.
var ErrShaderUnavailable = errors.New("dusk: shader technique unavailable")

// ErrInvalidTargetSize is returned when a render target resize is requested
// with a non-positive dimension. The target keeps its last valid size.
var ErrInvalidTargetSize = errors.New("dusk: invalid render target size")

// DeviceError reports a failed backend call. It is not recovered inside the
// pipeline; the frame that hit it is abandoned.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("dusk: device %s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// deviceErr wraps err as a *DeviceError unless it already is one, so the
// innermost operation name is the one reported.
func deviceErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *DeviceError
	if errors.As(err, &de) {
		return err
	}
	return &DeviceError{Op: op, Err: err}
}
