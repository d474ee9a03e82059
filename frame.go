package chirp8

// FrameBudget is the emulated instruction time spent per RunFrame call, in
// microseconds. One frame at 60 Hz.
const FrameBudget = 16666

// RunFrame advances the machine by one display frame: it replaces the
// keypad mask, ticks both timers, then executes instructions until the
// frame budget is spent. The first error halts the loop and is returned
// as-is; state mutated before the failing instruction is kept.
//
// RunFrame is not reentrant. One goroutine owns the machine.
func (m *Machine) RunFrame(keypad uint16) error {
	m.Keypad = keypad

	if m.Dt > 0 {
		m.Dt--
	}
	if m.St > 0 {
		m.St--
		m.tone = true
	} else {
		m.tone = false
	}

	m.runHooks(m.beforeFrameHooks)

	m.budget += FrameBudget
	for m.budget > 0 {
		cost, err := m.Step()
		if err != nil {
			m.runErrorHooks(err)
			return err
		}
		m.budget -= cost
	}

	m.runHooks(m.afterFrameHooks)

	return nil
}

// Step fetches, decodes and executes the instruction at Pc and returns its
// cost in microseconds. It ignores the frame budget, which makes it the
// right primitive for debugger single-stepping; RunFrame uses it too.
func (m *Machine) Step() (int, error) {
	// Two bytes are fetched, so 4094 is the last valid fetch address.
	if m.Pc > MemorySize-2 {
		return 0, ErrPcOutOfBounds{Pc: m.Pc}
	}

	op, err := Decode(m.Memory[m.Pc], m.Memory[m.Pc+1])
	if err != nil {
		return 0, err
	}

	return m.exec(op)
}
