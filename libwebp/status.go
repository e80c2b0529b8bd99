package libwebp

import (
	"errors"
	"fmt"
)

// Status mirrors libwebp's VP8StatusCode. The numeric values match the C
// enum, so a Status can be constructed directly from a VP8StatusCode return.
type Status int

const (
	StatusOK Status = iota
	StatusOutOfMemory
	StatusInvalidParam
	StatusBitstreamError
	StatusUnsupportedFeature
	StatusSuspended
	StatusUserAbort
	StatusNotEnoughData
)

var statusNames = [...]string{
	StatusOK:                 "VP8_STATUS_OK",
	StatusOutOfMemory:        "VP8_STATUS_OUT_OF_MEMORY",
	StatusInvalidParam:       "VP8_STATUS_INVALID_PARAM",
	StatusBitstreamError:     "VP8_STATUS_BITSTREAM_ERROR",
	StatusUnsupportedFeature: "VP8_STATUS_UNSUPPORTED_FEATURE",
	StatusSuspended:          "VP8_STATUS_SUSPENDED",
	StatusUserAbort:          "VP8_STATUS_USER_ABORT",
	StatusNotEnoughData:      "VP8_STATUS_NOT_ENOUGH_DATA",
}

// String returns the VP8StatusCode constant name, verbatim
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("VP8_STATUS_UNKNOWN(%d)", int(s))
}

// StatusError is a probe failure reported by libwebp. Error() renders the
// status tag name so diagnostics stay matchable on the exact discriminant.
type StatusError struct {
	Status Status
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return e.Status.String()
}

// ErrDemuxFailed is returned when an animated container passes the feature
// probe but the demuxer rejects its frame chunks.
var ErrDemuxFailed = errors.New("WEBP_DEMUX_PARSE_ERROR")

// IsStatus checks if an error is a StatusError with the given status
func IsStatus(err error, status Status) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status == status
	}
	return false
}
