package libwebp

/*
#cgo LDFLAGS: -lwebp -lwebpdemux
#include <stddef.h>
#include <stdint.h>
#include <webp/decode.h>
#include <webp/demux.h>

// WebPGetFeatures is a static inline and WebPDemux is a macro; both need a
// plain function for cgo to call.
static VP8StatusCode webpkitFeatures(const uint8_t* data, size_t size, WebPBitstreamFeatures* out) {
	return WebPGetFeatures(data, size, out);
}

static int webpkitFrameCount(const uint8_t* data, size_t size, uint32_t* frames) {
	WebPData d;
	WebPDemuxer* dmux;
	d.bytes = data;
	d.size = size;
	dmux = WebPDemux(&d);
	if (dmux == NULL) {
		return 0;
	}
	*frames = WebPDemuxGetI(dmux, WEBP_FF_FRAME_COUNT);
	WebPDemuxDelete(dmux);
	return 1;
}
*/
import "C"

import (
	"fmt"
	"io"
	"unsafe"
)

// Decoder is the handle produced by a successful probe. It exposes the
// header-declared metadata of the validated container and nothing else; no
// pixel decoding has happened.
type Decoder struct {
	width      uint32
	height     uint32
	hasAlpha   bool
	isAnimated bool
	numFrames  uint32
}

// Probe reads the byte stream to its end and validates it as a WebP
// container. It returns a *StatusError (or ErrDemuxFailed) when libwebp
// rejects the bytes, and a read error when the stream itself fails.
func Probe(r io.Reader) (*Decoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}
	return ProbeBytes(data)
}

// ProbeBytes validates an in-memory WebP byte stream
func ProbeBytes(data []byte) (*Decoder, error) {
	if len(data) == 0 {
		return nil, &StatusError{Status: StatusNotEnoughData}
	}

	var features C.WebPBitstreamFeatures
	code := C.webpkitFeatures(
		(*C.uint8_t)(unsafe.Pointer(&data[0])),
		C.size_t(len(data)),
		&features,
	)
	if code != C.VP8_STATUS_OK {
		return nil, &StatusError{Status: Status(code)}
	}

	dec := &Decoder{
		width:      uint32(features.width),
		height:     uint32(features.height),
		hasAlpha:   features.has_alpha != 0,
		isAnimated: features.has_animation != 0,
	}

	// The feature probe reads the animation flag from VP8X but not the
	// frames; those come from the demuxer, which re-walks every chunk.
	if dec.isAnimated {
		var frames C.uint32_t
		ok := C.webpkitFrameCount(
			(*C.uint8_t)(unsafe.Pointer(&data[0])),
			C.size_t(len(data)),
			&frames,
		)
		if ok == 0 {
			return nil, ErrDemuxFailed
		}
		dec.numFrames = uint32(frames)
	}

	return dec, nil
}

// Dimensions returns the canvas width and height in pixels
func (d *Decoder) Dimensions() (width, height uint32) {
	return d.width, d.height
}

// HasAlpha reports whether the container declares an alpha channel
func (d *Decoder) HasAlpha() bool {
	return d.hasAlpha
}

// IsAnimated reports whether the container declares an animation
func (d *Decoder) IsAnimated() bool {
	return d.isAnimated
}

// NumFrames returns the declared frame count: 0 for static images, the
// number of ANMF frames for animated ones.
func (d *Decoder) NumFrames() uint32 {
	return d.numFrames
}
