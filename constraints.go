package webpkit

// Size constants for easier file size configuration
const (
	KB = int64(1024)
	MB = KB * 1024
	GB = MB * 1024
)

// Constraints defines optional limits applied on top of container validation.
// A zero value in any field disables that check, so the zero Constraints
// accepts every well-formed WebP file.
type Constraints struct {
	// MaxFileSize is the maximum allowed file size in bytes
	// Use the provided constants for readable configuration, e.g., 10 * MB for 10 megabytes
	MaxFileSize int64

	// MinFileSize is the minimum allowed file size in bytes
	MinFileSize int64

	// MaxWidth is the maximum allowed canvas width in pixels
	MaxWidth uint32

	// MaxHeight is the maximum allowed canvas height in pixels
	MaxHeight uint32

	// MaxPixels is the maximum allowed total pixel count (width * height).
	// This is the decompression-bomb guard: a tiny file can declare an
	// enormous canvas.
	MaxPixels uint64

	// MaxFrames is the maximum allowed declared frame count for animations
	MaxFrames uint32
}

// DefaultConstraints creates an unconstrained set of constraints. Container
// well-formedness is always checked; limits are opt-in.
func DefaultConstraints() Constraints {
	return Constraints{}
}

// UploadConstraints creates constraints suitable for user-submitted files:
// bounded size, bounded canvas, bounded animation length.
func UploadConstraints() Constraints {
	return Constraints{
		MaxFileSize: 10 * MB,
		MinFileSize: 1,
		MaxWidth:    10000,
		MaxHeight:   10000,
		MaxPixels:   50000000, // 50 megapixels
		MaxFrames:   1000,
	}
}
