package webpkit

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gobeaver/webpkit/libwebp"
)

// Validator validates WebP files against its constraints. The zero value
// and New(DefaultConstraints()) accept any well-formed WebP container.
//
// Validation is a single open plus a single probe: any failure is terminal
// and reported, never retried.
type Validator struct {
	constraints Constraints
}

// New creates a new WebP validator with the given constraints
func New(constraints Constraints) *Validator {
	return &Validator{
		constraints: constraints,
	}
}

// NewDefault creates a new WebP validator without limits
func NewDefault() *Validator {
	return &Validator{
		constraints: DefaultConstraints(),
	}
}

// GetConstraints returns the current validation constraints
func (v *Validator) GetConstraints() Constraints {
	return v.constraints
}

// Validate opens the file at path, probes it as a WebP container, and returns
// its structural metadata. On failure it returns a *ValidationError whose
// Message is one of the stable diagnostic forms:
//
//	failed to open file: <os error>
//	webp format validation failed: <decoder status tag>
//
// The decoder's status tag is rendered verbatim (for example
// VP8_STATUS_BITSTREAM_ERROR for a malformed bitstream versus
// VP8_STATUS_NOT_ENOUGH_DATA for a truncated one), so callers can match on
// the specific failure without webpkit re-deriving its own codes.
func (v *Validator) Validate(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewValidationError(ErrorTypeIO, fmt.Sprintf("failed to open file: %v", err))
	}
	defer f.Close()

	if v.constraints.MaxFileSize > 0 || v.constraints.MinFileSize > 0 {
		if err := v.checkFileSize(f); err != nil {
			return nil, err
		}
	}

	// Buffering serves the decoder's small sequential header reads; the
	// probe result is identical without it.
	dec, err := libwebp.Probe(bufio.NewReader(f))
	if err != nil {
		return nil, NewValidationError(ErrorTypeFormat, fmt.Sprintf("webp format validation failed: %v", err))
	}

	width, height := dec.Dimensions()
	info := &Info{
		Width:      width,
		Height:     height,
		HasAlpha:   dec.HasAlpha(),
		IsAnimated: dec.IsAnimated(),
		NumFrames:  dec.NumFrames(),
	}

	if err := v.checkInfo(info); err != nil {
		return nil, err
	}

	return info, nil
}

// ValidateReader probes a WebP byte stream directly, without touching the
// filesystem. Size constraints are skipped when size is not positive.
func (v *Validator) ValidateReader(r *bufio.Reader, size int64) (*Info, error) {
	if size > 0 {
		if v.constraints.MaxFileSize > 0 && size > v.constraints.MaxFileSize {
			return nil, NewValidationError(ErrorTypeSize,
				fmt.Sprintf("file size too big: %d bytes (max: %d bytes)", size, v.constraints.MaxFileSize))
		}
		if v.constraints.MinFileSize > 0 && size < v.constraints.MinFileSize {
			return nil, NewValidationError(ErrorTypeSize,
				fmt.Sprintf("file size too small: %d bytes (min: %d bytes)", size, v.constraints.MinFileSize))
		}
	}

	dec, err := libwebp.Probe(r)
	if err != nil {
		return nil, NewValidationError(ErrorTypeFormat, fmt.Sprintf("webp format validation failed: %v", err))
	}

	width, height := dec.Dimensions()
	info := &Info{
		Width:      width,
		Height:     height,
		HasAlpha:   dec.HasAlpha(),
		IsAnimated: dec.IsAnimated(),
		NumFrames:  dec.NumFrames(),
	}

	if err := v.checkInfo(info); err != nil {
		return nil, err
	}

	return info, nil
}

// checkFileSize enforces the size constraints using the open file's metadata
func (v *Validator) checkFileSize(f *os.File) error {
	stat, err := f.Stat()
	if err != nil {
		return NewValidationError(ErrorTypeIO, fmt.Sprintf("failed to open file: %v", err))
	}

	size := stat.Size()
	if v.constraints.MaxFileSize > 0 && size > v.constraints.MaxFileSize {
		return NewValidationError(ErrorTypeSize,
			fmt.Sprintf("file size too big: %d bytes (max: %d bytes)", size, v.constraints.MaxFileSize))
	}
	if v.constraints.MinFileSize > 0 && size < v.constraints.MinFileSize {
		return NewValidationError(ErrorTypeSize,
			fmt.Sprintf("file size too small: %d bytes (min: %d bytes)", size, v.constraints.MinFileSize))
	}
	return nil
}

// checkInfo enforces the canvas and animation constraints on probed metadata
func (v *Validator) checkInfo(info *Info) error {
	if v.constraints.MaxWidth > 0 && info.Width > v.constraints.MaxWidth {
		return NewValidationError(ErrorTypeDimensions,
			fmt.Sprintf("image width %d exceeds maximum %d", info.Width, v.constraints.MaxWidth))
	}
	if v.constraints.MaxHeight > 0 && info.Height > v.constraints.MaxHeight {
		return NewValidationError(ErrorTypeDimensions,
			fmt.Sprintf("image height %d exceeds maximum %d", info.Height, v.constraints.MaxHeight))
	}
	if v.constraints.MaxPixels > 0 {
		totalPixels := uint64(info.Width) * uint64(info.Height)
		if totalPixels > v.constraints.MaxPixels {
			return NewValidationError(ErrorTypeDimensions,
				fmt.Sprintf("total pixels %d exceeds maximum %d", totalPixels, v.constraints.MaxPixels))
		}
	}
	if v.constraints.MaxFrames > 0 && info.NumFrames > v.constraints.MaxFrames {
		return NewValidationError(ErrorTypeFrames,
			fmt.Sprintf("frame count %d exceeds maximum %d", info.NumFrames, v.constraints.MaxFrames))
	}
	return nil
}

// Validate validates the file at path with an unconstrained validator.
// This is the core entry point: well-formedness only, no limits.
func Validate(path string) (*Info, error) {
	return NewDefault().Validate(path)
}
