// Package libwebp probes WebP byte streams using the system libwebp and
// libwebpdemux C libraries.
//
// The probe validates container structure (RIFF signature, chunk headers,
// declared sizes) and extracts the header-declared metadata without decoding
// pixel data. All byte parsing happens inside libwebp; this package is a thin
// cgo binding over WebPGetFeatures and the demuxer.
//
// Probe failures carry libwebp's own status discriminant, rendered verbatim
// as the VP8StatusCode constant name (for example VP8_STATUS_BITSTREAM_ERROR),
// so callers can tell a malformed bitstream from a truncated one.
//
// Building requires the libwebp development headers (libwebp-dev on Debian,
// libwebp on Homebrew).
package libwebp
