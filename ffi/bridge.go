package main

/*
#cgo CFLAGS: -I${SRCDIR}/../include
#include <stdlib.h>
#include "webpkit.h"
*/
import "C"

import "unsafe"

// result is a pure-Go mirror of webp_validation_result so that test files,
// which cannot import "C", can inspect FFI outcomes.
type result struct {
	IsValid      bool
	Width        uint32
	Height       uint32
	HasAlpha     bool
	IsAnimated   bool
	NumFrames    uint32
	ErrorMessage string

	// HadErrorMessage records whether error_message was non-NULL before it
	// was released, distinguishing an absent message from an empty one.
	HadErrorMessage bool
}

// callValidate invokes validate_webp_ffi with a NUL-terminated C copy of
// pathBytes. The bytes are copied verbatim, so invalid UTF-8 reaches the
// boundary intact. Every allocation is released before returning.
func callValidate(pathBytes []byte) result {
	cPath := C.CString(string(pathBytes))
	defer C.free(unsafe.Pointer(cPath))
	return collect(validate_webp_ffi(cPath))
}

// callValidateNull invokes validate_webp_ffi with a NULL path pointer
func callValidateNull() result {
	return collect(validate_webp_ffi(nil))
}

// releaseNull exercises free_error_message's NULL no-op path
func releaseNull() {
	free_error_message(nil)
}

// collect copies a C result into its Go mirror and releases the error
// message exactly once, per the header contract.
func collect(res C.webp_validation_result) result {
	out := result{
		IsValid:    bool(res.is_valid),
		Width:      uint32(res.width),
		Height:     uint32(res.height),
		HasAlpha:   bool(res.has_alpha),
		IsAnimated: bool(res.is_animated),
		NumFrames:  uint32(res.num_frames),
	}
	if res.error_message != nil {
		out.HadErrorMessage = true
		out.ErrorMessage = C.GoString(res.error_message)
		free_error_message(res.error_message)
	}
	return out
}
