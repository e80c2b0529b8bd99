// Package webpkit validates WebP image containers and reports their structural
// metadata: pixel dimensions, alpha-channel presence, animation flag, and
// declared frame count.
//
// WebPKit is a sibling library to [FileKit]. Where filekit's validators answer
// "is this file the type it claims to be", webpkit answers a narrower question
// in depth: is this byte stream a well-formed WebP container, and what does its
// header declare. Chunk and header parsing is delegated to the system libwebp
// library through the [github.com/gobeaver/webpkit/libwebp] binding; webpkit
// never parses container bytes itself and never decodes pixel data.
//
// [FileKit]: https://github.com/gobeaver/filekit
//
// # Quick Start
//
//	info, err := webpkit.Validate("photo.webp")
//	if err != nil {
//	    // err.Error() describes the failure, e.g.
//	    //   "failed to open file: ..." or
//	    //   "webp format validation failed: VP8_STATUS_BITSTREAM_ERROR"
//	    return err
//	}
//	fmt.Printf("%dx%d animated=%v frames=%d\n",
//	    info.Width, info.Height, info.IsAnimated, info.NumFrames)
//
// # Constraints
//
// The package-level [Validate] accepts any well-formed WebP. A [Validator]
// built with constraints additionally enforces size, dimension, and frame
// limits:
//
//	validator := webpkit.NewBuilder().
//	    MaxSize(10 * webpkit.MB).
//	    MaxDimensions(10000, 10000).
//	    MaxFrames(1000).
//	    Build()
//
//	info, err := validator.Validate("upload.webp")
//
// # Error Handling
//
// Validation failures are typed for programmatic handling:
//
//	_, err := webpkit.Validate(path)
//	if err != nil {
//	    switch {
//	    case webpkit.IsErrorOfType(err, webpkit.ErrorTypeIO):
//	        // file missing or unreadable
//	    case webpkit.IsErrorOfType(err, webpkit.ErrorTypeFormat):
//	        // not a well-formed WebP container
//	    case webpkit.IsErrorOfType(err, webpkit.ErrorTypeSize):
//	        // file size outside configured bounds
//	    }
//	}
//
// # C-Callable Boundary
//
// The ffi directory builds as a C shared library (go build -buildmode=c-shared)
// exporting validate_webp_ffi and free_error_message so non-Go callers can
// invoke validation. See include/webpkit.h for the struct layout and the
// ownership contract of the error-message pointer.
//
// # Concurrency
//
// Validators hold no mutable state. Each call opens its own file handle and
// allocates its own buffers, so concurrent calls from multiple goroutines are
// independently safe without locking.
package webpkit
