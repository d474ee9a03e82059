package chirp8

// Hook observes the machine around a frame. Hooks run on the goroutine that
// called RunFrame and must not call back into it.
type Hook func(m *Machine)

// ErrorHook observes the error that is about to abort a frame.
type ErrorHook func(m *Machine, err error)

// AddBeforeFrameHook registers a hook that runs at the start of every
// frame, after the timers have ticked but before any instruction executes.
func (m *Machine) AddBeforeFrameHook(h Hook) {
	m.beforeFrameHooks = append(m.beforeFrameHooks, h)
}

// AddAfterFrameHook registers a hook that runs after every completed frame.
func (m *Machine) AddAfterFrameHook(h Hook) {
	m.afterFrameHooks = append(m.afterFrameHooks, h)
}

// AddErrorHook registers a hook that runs when a frame aborts with an error.
func (m *Machine) AddErrorHook(h ErrorHook) {
	m.errorHooks = append(m.errorHooks, h)
}

func (m *Machine) runHooks(hooks []Hook) {
	for _, h := range hooks {
		h(m)
	}
}

func (m *Machine) runErrorHooks(err error) {
	for _, h := range m.errorHooks {
		h(m, err)
	}
}
