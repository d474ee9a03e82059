// Package term is the POSIX terminal frontend: ANSI escape rendering of the
// framebuffer and a cbreak-mode keyboard on the controlling terminal.
package term

import (
	"io"

	"github.com/aquinn/chirp8"
)

const esc = 0x1B

// Display renders the packed framebuffer as character cells, two columns
// per pixel so the aspect ratio survives.
type Display struct {
	out             io.Writer
	OnChar, OffChar string
}

func NewDisplay(out io.Writer) *Display {
	return &Display{
		out:     out,
		OnChar:  "##",
		OffChar: "  ",
	}
}

// Clear wipes the terminal and homes the cursor. Call once before the
// first frame.
func (d *Display) Clear() error {
	_, err := d.out.Write([]byte{
		// move cursor to the start
		esc, '[', '1', 'H',
		// clear the terminal
		esc, '[', '0', 'J',
	})

	return err
}

// Render implements chirp8.Display.
func (d *Display) Render(fb []byte) error {
	buf := make([]byte, 0, chirp8.ScreenWidth*chirp8.ScreenHeight*2+chirp8.ScreenHeight*2+8)
	buf = append(buf, esc, '[', '1', 'H')

	for i, b := range fb {
		for bit := byte(0x80); bit != 0; bit >>= 1 {
			if b&bit != 0 {
				buf = append(buf, d.OnChar...)
			} else {
				buf = append(buf, d.OffChar...)
			}
		}

		if ((i+1)*8)%chirp8.ScreenWidth == 0 {
			buf = append(buf, '|', '\n')
		}
	}

	_, err := d.out.Write(buf)

	return err
}
