// Package webptest fabricates minimal WebP byte streams for tests, the same
// way filekit's validator tests fabricate in-memory multipart files instead
// of shipping binary fixtures.
//
// The streams carry just enough header data for a probe: a lossless (VP8L)
// bitstream header for static images, and a VP8X/ANIM/ANMF chunk sequence for
// animations. No pixel data is ever generated, so these fixtures validate but
// do not decode.
package webptest

import "encoding/binary"

// Lossless returns a static VP8L image stream with the given canvas size.
// alpha sets the alpha-hint bit in the bitstream header, which is what a
// feature probe reports as alpha presence for lossless images.
func Lossless(width, height int, alpha bool) []byte {
	return riff(chunk("VP8L", losslessHeader(width, height, alpha)))
}

// Animated returns an animated stream with the given canvas size and frame
// count. Every frame covers the full canvas and embeds a minimal lossless
// bitstream.
func Animated(width, height, frames int) []byte {
	vp8x := make([]byte, 0, 10)
	vp8x = append(vp8x, 0x02, 0, 0, 0) // flags: ANIMATION_FLAG
	vp8x = append(vp8x, le24(uint32(width-1))...)
	vp8x = append(vp8x, le24(uint32(height-1))...)

	anim := make([]byte, 6) // background color 0, loop count 0

	chunks := [][]byte{chunk("VP8X", vp8x), chunk("ANIM", anim)}

	sub := chunk("VP8L", losslessHeader(width, height, false))
	for i := 0; i < frames; i++ {
		frame := make([]byte, 0, 16+len(sub))
		frame = append(frame, le24(0)...) // x offset / 2
		frame = append(frame, le24(0)...) // y offset / 2
		frame = append(frame, le24(uint32(width-1))...)
		frame = append(frame, le24(uint32(height-1))...)
		frame = append(frame, le24(100)...) // duration in ms
		frame = append(frame, 0)            // blending and disposal flags
		frame = append(frame, sub...)
		chunks = append(chunks, chunk("ANMF", frame))
	}

	return riff(chunks...)
}

// Truncated returns a stream whose chunk header declares far more payload
// than is present, so a probe runs out of data mid-chunk.
func Truncated() []byte {
	out := []byte("RIFF")
	out = append(out, le32(4+8+1024)...)
	out = append(out, "WEBP"...)
	out = append(out, "VP8 "...)
	out = append(out, le32(1024)...)
	out = append(out, 0, 0, 0, 0) // stream cut off here
	return out
}

// NotWebP returns the opening bytes of a JPEG file, the classic
// renamed-extension case.
func NotWebP() []byte {
	return []byte{
		0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10,
		'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x00,
		0x00, 0x48, 0x00, 0x48, 0x00, 0x00,
		0xff, 0xd9,
	}
}

// losslessHeader builds the 5-byte VP8L bitstream header: the 0x2f signature
// followed by a little-endian bitfield of 14-bit width-1, 14-bit height-1,
// the alpha hint, and a 3-bit version of zero.
func losslessHeader(width, height int, alpha bool) []byte {
	bits := uint32(width-1) | uint32(height-1)<<14
	if alpha {
		bits |= 1 << 28
	}
	header := make([]byte, 5)
	header[0] = 0x2f
	binary.LittleEndian.PutUint32(header[1:], bits)
	return header
}

// chunk wraps a payload in a RIFF chunk: fourCC, little-endian size, payload,
// and a padding byte when the payload length is odd.
func chunk(fourCC string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload)+1)
	out = append(out, fourCC...)
	out = append(out, le32(uint32(len(payload)))...)
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

// riff assembles chunks into a RIFF container with the WEBP form type
func riff(chunks ...[]byte) []byte {
	size := 4
	for _, c := range chunks {
		size += len(c)
	}
	out := make([]byte, 0, 8+size)
	out = append(out, "RIFF"...)
	out = append(out, le32(uint32(size))...)
	out = append(out, "WEBP"...)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le24(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
}
