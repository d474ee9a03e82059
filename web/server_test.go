package web_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
	"github.com/aquinn/chirp8/web"
)

func TestDecodeKeypadMessage(t *testing.T) {
	tests := []struct {
		name   string
		kind   int
		data   []byte
		mask   uint16
		wantOk bool
	}{
		{"all keys", websocket.BinaryMessage, []byte{0xFF, 0xFF}, 0xFFFF, true},
		{"single key", websocket.BinaryMessage, []byte{0x00, 0x80}, 0x0080, true},
		{"big endian order", websocket.BinaryMessage, []byte{0x12, 0x34}, 0x1234, true},
		{"released", websocket.BinaryMessage, []byte{0x00, 0x00}, 0x0000, true},
		{"text message", websocket.TextMessage, []byte{0x12, 0x34}, 0, false},
		{"short payload", websocket.BinaryMessage, []byte{0x12}, 0, false},
		{"long payload", websocket.BinaryMessage, []byte{0x12, 0x34, 0x56}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, ok := web.DecodeKeypadMessage(tt.kind, tt.data)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.mask, mask)
		})
	}
}

func TestListenStopsConsoleWhenServerFails(t *testing.T) {
	machine := chirp8.New(1)
	assert.NoError(t, machine.LoadProgram([]byte{0x12, 0x00})) // JP 0x200

	var mu sync.Mutex
	frames := 0
	machine.AddBeforeFrameHook(func(*chirp8.Machine) {
		mu.Lock()
		frames++
		mu.Unlock()
	})

	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	s := web.NewServer(machine, log.NewWithConfig(cfg))

	// an invalid port makes ListenAndServe fail immediately
	err := s.Listen(context.Background(), -1)
	assert.Error(t, err)

	// give any in-flight frame time to drain, then the counter must hold
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	seen := frames
	mu.Unlock()

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	after := frames
	mu.Unlock()

	assert.Equal(t, seen, after)
}
