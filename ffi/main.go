// The ffi package builds as a C shared library exposing webpkit validation
// to non-Go callers:
//
//	go build -buildmode=c-shared -o libwebpkit.so ./ffi
//
// The exported surface is two functions, validate_webp_ffi and
// free_error_message, declared in include/webpkit.h together with the result
// struct layout and the ownership contract for the error-message pointer.
// Both functions are stateless; concurrent calls are safe.
package main

/*
#cgo CFLAGS: -I${SRCDIR}/../include
#include <stdlib.h>
#include "webpkit.h"
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	"github.com/gobeaver/webpkit"
)

//export validate_webp_ffi
func validate_webp_ffi(path *C.char) C.webp_validation_result {
	// The path pointer is untrusted: check for NULL and for valid UTF-8
	// before any filesystem access.
	if path == nil {
		return failure("path is null")
	}

	goPath := C.GoString(path)
	if !utf8.ValidString(goPath) {
		return failure("invalid utf-8 in path")
	}

	info, err := webpkit.Validate(goPath)
	if err != nil {
		return failure(webpkit.GetErrorMessage(err))
	}

	var res C.webp_validation_result
	res.is_valid = true
	res.width = C.uint32_t(info.Width)
	res.height = C.uint32_t(info.Height)
	res.has_alpha = C.bool(info.HasAlpha)
	res.is_animated = C.bool(info.IsAnimated)
	res.num_frames = C.uint32_t(info.NumFrames)
	res.error_message = nil
	return res
}

//export free_error_message
func free_error_message(errorMessage *C.char) {
	if errorMessage != nil {
		C.free(unsafe.Pointer(errorMessage))
	}
}

// failure builds a failure-shaped result with zeroed metadata. The message
// copy lives on the C heap; ownership transfers to the caller, who must
// release it with free_error_message exactly once.
func failure(message string) C.webp_validation_result {
	var res C.webp_validation_result
	res.error_message = C.CString(message)
	return res
}

func main() {}
