package led

import "fmt"

// Display is a sink for a strip of LEDs. SetPixel and Clear only touch a
// staging buffer; Flush pushes it to the device.
type Display interface {
	SetPixel(index int, c Color)
	Clear()
	Flush() error
}

// Present writes a full frame: clear, set every lit pixel, flush.
func Present(d Display, pixels []Pixel) error {
	d.Clear()
	for _, px := range pixels {
		if px.Color != Off {
			d.SetPixel(px.Index, px.Color)
		}
	}
	if err := d.Flush(); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}

// Frame is an in-memory Display. The last flushed frame is kept in Shown.
type Frame struct {
	staging []Color
	Shown   []Color
	Flushes int
}

func NewFrame(n int) *Frame {
	return &Frame{
		staging: make([]Color, n),
		Shown:   make([]Color, n),
	}
}

func (f *Frame) SetPixel(index int, c Color) {
	if index >= 0 && index < len(f.staging) {
		f.staging[index] = c
	}
}

func (f *Frame) Clear() {
	for i := range f.staging {
		f.staging[i] = Off
	}
}

func (f *Frame) Flush() error {
	copy(f.Shown, f.staging)
	f.Flushes++
	return nil
}
