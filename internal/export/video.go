package export

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"time"

	"github.com/icza/mjpeg"
)

// WriteAVI encodes the collected frames as an MJPEG video. Frame rate is
// derived from the configured interval.
func (a *Animation) WriteAVI(path string) error {
	fps := int32(time.Second / a.interval)
	if fps < 1 {
		fps = 1
	}

	writer, err := mjpeg.New(path, int32(a.w), int32(a.h), fps)
	if err != nil {
		return fmt.Errorf("export: create video: %w", err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	for _, frame := range a.frames {
		buf.Reset()
		if err := jpeg.Encode(&buf, frame, opts); err != nil {
			writer.Close()
			return fmt.Errorf("export: encode frame: %w", err)
		}
		if err := writer.AddFrame(buf.Bytes()); err != nil {
			writer.Close()
			return fmt.Errorf("export: add frame: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("export: close video: %w", err)
	}
	return nil
}
