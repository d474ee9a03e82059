package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
)

// Debugger exposes pause, resume and frame-step control over HTTP and
// streams a machine state snapshot after every frame as server-sent events.
type Debugger struct {
	console *chirp8.Console
	logger  *log.Logger

	mu   sync.Mutex
	subs map[chan State]struct{}
}

// State is the per-frame snapshot pushed to /debug/events subscribers.
type State struct {
	Pc     uint16     `json:"pc"`
	I      uint16     `json:"i"`
	Sp     byte       `json:"sp"`
	Dt     byte       `json:"dt"`
	St     byte       `json:"st"`
	V      [16]byte   `json:"v"`
	Stack  [16]uint16 `json:"stack"`
	Keypad uint16     `json:"keypad"`
	Op     string     `json:"op"`
}

func NewDebugger(console *chirp8.Console, logger *log.Logger) *Debugger {
	d := &Debugger{
		console: console,
		logger:  logger,
		subs:    map[chan State]struct{}{},
	}

	console.M.AddAfterFrameHook(d.publish)
	console.M.AddErrorHook(func(m *chirp8.Machine, err error) {
		logger.Error("frame aborted",
			log.Err(err),
			log.Hex("pc", m.Pc))
		d.publish(m)
	})

	return d
}

// Register installs the debugger endpoints on mux.
func (d *Debugger) Register(mux *http.ServeMux) {
	mux.HandleFunc("/debug/start", d.handleStart)
	mux.HandleFunc("/debug/stop", d.handleStop)
	mux.HandleFunc("/debug/step", d.handleStep)
	mux.HandleFunc("/debug/events", d.handleEvents)
}

func (d *Debugger) handleStart(w http.ResponseWriter, r *http.Request) {
	d.console.Resume()
	w.WriteHeader(http.StatusNoContent)
}

func (d *Debugger) handleStop(w http.ResponseWriter, r *http.Request) {
	d.console.Pause()
	w.WriteHeader(http.StatusNoContent)
}

func (d *Debugger) handleStep(w http.ResponseWriter, r *http.Request) {
	if !d.console.Paused() {
		http.Error(w, "console is running, stop it first", http.StatusConflict)
		return
	}

	if err := d.console.Frame(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Debugger) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := d.subscribe()
	defer d.unsubscribe(ch)

	for {
		select {
		case st := <-ch:
			data, err := json.Marshal(st)
			if err != nil {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// publish runs as a frame hook on the console goroutine, so sends must not
// block; slow subscribers just miss frames.
func (d *Debugger) publish(m *chirp8.Machine) {
	st := State{
		Pc:     m.Pc,
		I:      m.I,
		Sp:     m.Sp,
		Dt:     m.Dt,
		St:     m.St,
		V:      m.V,
		Stack:  m.Stack,
		Keypad: m.Keypad,
		Op:     m.Disassemble(m.Pc),
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for ch := range d.subs {
		select {
		case ch <- st:
		default:
		}
	}
}

func (d *Debugger) subscribe() chan State {
	ch := make(chan State, 16)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs[ch] = struct{}{}

	return ch
}

func (d *Debugger) unsubscribe(ch chan State) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.subs, ch)
}
