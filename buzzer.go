package chirp8

// Buzzer is the monotone beeper. SetTone is called once per frame with the
// machine's tone flag; implementations should treat repeated calls with the
// same value as a no-op.
type Buzzer interface {
	SetTone(on bool) error
}

// InMemoryBuzzer records the tone state, for frontends that poll it and
// for tests.
type InMemoryBuzzer struct {
	Playing bool
}

func NewInMemoryBuzzer() *InMemoryBuzzer {
	return &InMemoryBuzzer{}
}

// SetTone implements Buzzer.
func (b *InMemoryBuzzer) SetTone(on bool) error {
	b.Playing = on

	return nil
}
