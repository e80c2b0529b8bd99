package webpkit

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gobeaver/webpkit/webptest"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	constraints := Constraints{
		MaxFileSize: 10 * MB,
		MinFileSize: 1 * KB,
	}

	validator := New(constraints)
	if validator == nil {
		t.Fatal("New() returned nil")
	}

	gotConstraints := validator.GetConstraints()
	if gotConstraints.MaxFileSize != constraints.MaxFileSize {
		t.Errorf("Expected MaxFileSize %d, got %d", constraints.MaxFileSize, gotConstraints.MaxFileSize)
	}
	if gotConstraints.MinFileSize != constraints.MinFileSize {
		t.Errorf("Expected MinFileSize %d, got %d", constraints.MinFileSize, gotConstraints.MinFileSize)
	}
}

func TestNewDefault(t *testing.T) {
	validator := NewDefault()
	if validator == nil {
		t.Fatal("NewDefault() returned nil")
	}

	constraints := validator.GetConstraints()
	if constraints != (Constraints{}) {
		t.Errorf("Expected unconstrained defaults, got %+v", constraints)
	}
}

func TestValidateStatic(t *testing.T) {
	path := writeFixture(t, "static.webp", webptest.Lossless(320, 240, false))

	info, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	if info.Width != 320 || info.Height != 240 {
		t.Errorf("Expected dimensions 320x240, got %dx%d", info.Width, info.Height)
	}
	if info.HasAlpha {
		t.Error("Expected no alpha channel")
	}
	if info.IsAnimated {
		t.Error("Expected static image")
	}
	if info.NumFrames != 0 {
		t.Errorf("Expected 0 frames for static image, got %d", info.NumFrames)
	}
}

func TestValidateStaticAlpha(t *testing.T) {
	path := writeFixture(t, "alpha.webp", webptest.Lossless(16, 16, true))

	info, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !info.HasAlpha {
		t.Error("Expected alpha channel")
	}
}

func TestValidateAnimated(t *testing.T) {
	path := writeFixture(t, "animated.webp", webptest.Animated(64, 64, 4))

	info, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	if !info.IsAnimated {
		t.Error("Expected animated image")
	}
	if info.NumFrames != 4 {
		t.Errorf("Expected 4 frames, got %d", info.NumFrames)
	}
	if info.Width == 0 || info.Height == 0 {
		t.Errorf("Expected positive dimensions, got %dx%d", info.Width, info.Height)
	}
}

func TestValidateNonexistentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.webp")

	_, err := Validate(path)
	if err == nil {
		t.Fatal("Validate() expected error for nonexistent file")
	}

	if !IsErrorOfType(err, ErrorTypeIO) {
		t.Errorf("Expected io error type, got %q", GetErrorType(err))
	}
	if !strings.Contains(GetErrorMessage(err), "failed to open file") {
		t.Errorf("Expected 'failed to open file' in message, got %q", GetErrorMessage(err))
	}
}

func TestValidateInvalidContainer(t *testing.T) {
	path := writeFixture(t, "fake.webp", webptest.NotWebP())

	_, err := Validate(path)
	if err == nil {
		t.Fatal("Validate() expected error for renamed jpeg")
	}

	if !IsErrorOfType(err, ErrorTypeFormat) {
		t.Errorf("Expected format error type, got %q", GetErrorType(err))
	}
	msg := GetErrorMessage(err)
	if !strings.Contains(msg, "webp format validation failed") {
		t.Errorf("Expected 'webp format validation failed' in message, got %q", msg)
	}
	if !strings.Contains(msg, "VP8_STATUS_BITSTREAM_ERROR") {
		t.Errorf("Expected decoder tag in message, got %q", msg)
	}
}

// TestValidateFailureTagsDistinguishable checks that different container
// defects surface different decoder tags, so callers can match on substrings.
func TestValidateFailureTagsDistinguishable(t *testing.T) {
	garbage := writeFixture(t, "garbage.webp", webptest.NotWebP())
	truncated := writeFixture(t, "truncated.webp", webptest.Truncated())

	_, garbageErr := Validate(garbage)
	_, truncatedErr := Validate(truncated)
	if garbageErr == nil || truncatedErr == nil {
		t.Fatal("Validate() expected errors for both defective files")
	}

	garbageMsg := GetErrorMessage(garbageErr)
	truncatedMsg := GetErrorMessage(truncatedErr)
	if !strings.Contains(garbageMsg, "VP8_STATUS_BITSTREAM_ERROR") {
		t.Errorf("Expected bitstream tag for garbage, got %q", garbageMsg)
	}
	if !strings.Contains(truncatedMsg, "VP8_STATUS_NOT_ENOUGH_DATA") {
		t.Errorf("Expected truncation tag, got %q", truncatedMsg)
	}
}

func TestValidateMaxFileSize(t *testing.T) {
	path := writeFixture(t, "static.webp", webptest.Lossless(320, 240, false))

	validator := New(Constraints{MaxFileSize: 10})
	_, err := validator.Validate(path)
	if err == nil {
		t.Fatal("Validate() expected size error")
	}
	if !IsErrorOfType(err, ErrorTypeSize) {
		t.Errorf("Expected size error type, got %q", GetErrorType(err))
	}
	if !strings.Contains(GetErrorMessage(err), "file size too big") {
		t.Errorf("Unexpected message: %q", GetErrorMessage(err))
	}
}

func TestValidateMinFileSize(t *testing.T) {
	path := writeFixture(t, "static.webp", webptest.Lossless(8, 8, false))

	validator := New(Constraints{MinFileSize: 1 * MB})
	_, err := validator.Validate(path)
	if err == nil {
		t.Fatal("Validate() expected size error")
	}
	if !strings.Contains(GetErrorMessage(err), "file size too small") {
		t.Errorf("Unexpected message: %q", GetErrorMessage(err))
	}
}

func TestValidateMaxDimensions(t *testing.T) {
	path := writeFixture(t, "wide.webp", webptest.Lossless(4096, 16, false))

	validator := NewBuilder().MaxDimensions(1024, 1024).Build()
	_, err := validator.Validate(path)
	if err == nil {
		t.Fatal("Validate() expected dimensions error")
	}
	if !IsErrorOfType(err, ErrorTypeDimensions) {
		t.Errorf("Expected dimensions error type, got %q", GetErrorType(err))
	}
}

func TestValidateMaxPixels(t *testing.T) {
	path := writeFixture(t, "big.webp", webptest.Lossless(1000, 1000, false))

	validator := NewBuilder().MaxPixels(500000).Build()
	_, err := validator.Validate(path)
	if err == nil {
		t.Fatal("Validate() expected pixel-count error")
	}
	if !strings.Contains(GetErrorMessage(err), "total pixels") {
		t.Errorf("Unexpected message: %q", GetErrorMessage(err))
	}
}

func TestValidateMaxFrames(t *testing.T) {
	path := writeFixture(t, "animated.webp", webptest.Animated(32, 32, 8))

	validator := NewBuilder().MaxFrames(4).Build()
	_, err := validator.Validate(path)
	if err == nil {
		t.Fatal("Validate() expected frames error")
	}
	if !IsErrorOfType(err, ErrorTypeFrames) {
		t.Errorf("Expected frames error type, got %q", GetErrorType(err))
	}
}

func TestValidateConstraintsPassWhenWithinLimits(t *testing.T) {
	path := writeFixture(t, "animated.webp", webptest.Animated(32, 32, 3))

	validator := ForUploads().Build()
	info, err := validator.Validate(path)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if info.NumFrames != 3 {
		t.Errorf("Expected 3 frames, got %d", info.NumFrames)
	}
}

func TestValidateReader(t *testing.T) {
	data := webptest.Lossless(100, 50, false)

	info, err := NewDefault().ValidateReader(bufio.NewReader(bytes.NewReader(data)), int64(len(data)))
	if err != nil {
		t.Fatalf("ValidateReader() error: %v", err)
	}
	if info.Width != 100 || info.Height != 50 {
		t.Errorf("Expected dimensions 100x50, got %dx%d", info.Width, info.Height)
	}
}

func TestValidateReaderSizeConstraint(t *testing.T) {
	data := webptest.Lossless(100, 50, false)

	validator := New(Constraints{MaxFileSize: 4})
	_, err := validator.ValidateReader(bufio.NewReader(bytes.NewReader(data)), int64(len(data)))
	if err == nil {
		t.Fatal("ValidateReader() expected size error")
	}
	if !IsErrorOfType(err, ErrorTypeSize) {
		t.Errorf("Expected size error type, got %q", GetErrorType(err))
	}
}

func TestInfoSummary(t *testing.T) {
	static := &Info{Width: 10, Height: 20}
	if !strings.Contains(static.Summary(), "static") {
		t.Errorf("Unexpected summary: %q", static.Summary())
	}

	animated := &Info{Width: 10, Height: 20, IsAnimated: true, NumFrames: 7}
	summary := animated.Summary()
	if !strings.Contains(summary, "animated") || !strings.Contains(summary, "7 frames") {
		t.Errorf("Unexpected summary: %q", summary)
	}
}

func BenchmarkValidate(b *testing.B) {
	dir := b.TempDir()
	path := filepath.Join(dir, "static.webp")
	if err := os.WriteFile(path, webptest.Lossless(320, 240, false), 0o644); err != nil {
		b.Fatal(err)
	}
	validator := NewDefault()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := validator.Validate(path); err != nil {
			b.Fatal(err)
		}
	}
}
