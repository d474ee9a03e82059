package term

import "io"

// Buzzer rings the terminal bell on each rising edge of the tone flag.
// Terminals cannot sustain a tone, so a repeating beep is as good as it
// gets.
type Buzzer struct {
	out io.Writer
	on  bool
}

func NewBuzzer(out io.Writer) *Buzzer {
	return &Buzzer{out: out}
}

// SetTone implements chirp8.Buzzer.
func (b *Buzzer) SetTone(on bool) error {
	defer func() { b.on = on }()

	if on && !b.on {
		_, err := b.out.Write([]byte{0x07})
		return err
	}

	return nil
}
