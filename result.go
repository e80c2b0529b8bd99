package webpkit

import "fmt"

// Info contains the structural metadata of a validated WebP file.
// It is constructed once from a successful probe and never mutated.
type Info struct {
	// Width is the canvas width in pixels. Greater than zero for valid images.
	Width uint32

	// Height is the canvas height in pixels. Greater than zero for valid images.
	Height uint32

	// HasAlpha reports whether the container declares an alpha channel.
	HasAlpha bool

	// IsAnimated reports whether the container declares an animation.
	IsAnimated bool

	// NumFrames is the declared frame count: 0 for static images, the
	// number of ANMF frames for animated ones.
	NumFrames uint32
}

// Summary returns a one-line human-readable description of the metadata
func (i *Info) Summary() string {
	if i.IsAnimated {
		return fmt.Sprintf("%dx%d animated webp, %d frames, alpha=%v",
			i.Width, i.Height, i.NumFrames, i.HasAlpha)
	}
	return fmt.Sprintf("%dx%d static webp, alpha=%v", i.Width, i.Height, i.HasAlpha)
}
