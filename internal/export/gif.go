package export

import (
	"fmt"
	"image/gif"
)

// WriteGIF encodes the collected frames as an infinitely looping animated
// GIF with the configured frame interval.
func (a *Animation) WriteGIF(path string) error {
	out := &gif.GIF{LoopCount: 0}
	delay := int(a.interval.Milliseconds() / 10) // GIF delays tick in 10ms units
	if delay < 1 {
		delay = 1
	}
	for _, frame := range a.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
	}

	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, out); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return nil
}
