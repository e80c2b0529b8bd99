package webpkit

// Builder provides a fluent API for constructing validators
type Builder struct {
	constraints Constraints
}

// NewBuilder creates a new validator builder with no limits set
func NewBuilder() *Builder {
	return &Builder{
		constraints: DefaultConstraints(),
	}
}

// ForUploads creates a builder preloaded with UploadConstraints
func ForUploads() *Builder {
	return &Builder{
		constraints: UploadConstraints(),
	}
}

// --- Size constraints ---

// MaxSize sets the maximum allowed file size
func (b *Builder) MaxSize(size int64) *Builder {
	b.constraints.MaxFileSize = size
	return b
}

// MinSize sets the minimum required file size
func (b *Builder) MinSize(size int64) *Builder {
	b.constraints.MinFileSize = size
	return b
}

// SizeRange sets both minimum and maximum file size
func (b *Builder) SizeRange(minSize, maxSize int64) *Builder {
	b.constraints.MinFileSize = minSize
	b.constraints.MaxFileSize = maxSize
	return b
}

// --- Canvas constraints ---

// MaxDimensions sets the maximum allowed canvas width and height
func (b *Builder) MaxDimensions(width, height uint32) *Builder {
	b.constraints.MaxWidth = width
	b.constraints.MaxHeight = height
	return b
}

// MaxPixels sets the maximum allowed total pixel count
func (b *Builder) MaxPixels(pixels uint64) *Builder {
	b.constraints.MaxPixels = pixels
	return b
}

// --- Animation constraints ---

// MaxFrames sets the maximum allowed declared frame count
func (b *Builder) MaxFrames(frames uint32) *Builder {
	b.constraints.MaxFrames = frames
	return b
}

// Build creates the validator with the configured constraints
func (b *Builder) Build() *Validator {
	return New(b.constraints)
}
