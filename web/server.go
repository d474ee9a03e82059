// Package web serves a console over HTTP: the framebuffer streams out over
// a websocket and keypad masks stream back in, with optional debugger
// endpoints for pausing and frame-stepping.
package web

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
)

// Server runs a console and bridges it to one websocket client. Outgoing
// messages are the raw 256-byte packed framebuffer, one binary message per
// rendered frame; incoming binary messages are 2-byte big-endian keypad
// masks that fully replace the current mask.
type Server struct {
	console *chirp8.Console
	machine *chirp8.Machine
	keys    *chirp8.InMemoryKeyboard
	buzzer  *chirp8.InMemoryBuzzer

	logger   *log.Logger
	debugger *Debugger

	upgrader websocket.Upgrader

	mu     sync.RWMutex
	socket *websocket.Conn
}

type ServerConfig struct {
	UseDebugger bool
}

type ServerConfigCb func(config *ServerConfig)

func NewServer(machine *chirp8.Machine, logger *log.Logger, configs ...ServerConfigCb) *Server {
	config := &ServerConfig{}
	for _, cb := range configs {
		cb(config)
	}

	s := &Server{
		machine: machine,
		keys:    chirp8.NewInMemoryKeyboard(),
		buzzer:  chirp8.NewInMemoryBuzzer(),
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.console = chirp8.NewConsole(machine, s, s.keys, s.buzzer)

	if config.UseDebugger {
		s.debugger = NewDebugger(s.console, logger)
	}

	return s
}

// Listen starts the console and the HTTP server and blocks until ctx is
// cancelled or either of them fails. With the debugger enabled the console
// starts paused and waits for /debug/start.
func (s *Server) Listen(ctx context.Context, port int) error {
	// either half failing must stop the other, so the console runs under
	// a context that dies when Listen returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleSocket)
	if s.debugger != nil {
		s.debugger.Register(mux)
		s.console.Pause()
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() { errCh <- s.console.Run(ctx) }()
	go func() { errCh <- httpServer.ListenAndServe() }()

	s.logger.Info("server listening", log.Int("port", port))

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)

	return err
}

// Render implements chirp8.Display by streaming the framebuffer to the
// connected client, if any.
func (s *Server) Render(fb []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.socket == nil {
		return nil
	}

	return s.socket.WriteMessage(websocket.BinaryMessage, fb)
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", log.Err(err))
		return
	}

	s.logger.Info("client connected", log.String("remote", conn.RemoteAddr().String()))
	s.setSocket(conn)
	defer s.dropSocket(conn)

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		if mask, ok := DecodeKeypadMessage(kind, data); ok {
			s.keys.Set(mask)
		}
	}
}

// DecodeKeypadMessage extracts a keypad mask from a websocket message.
// Anything but a 2-byte binary message is ignored.
func DecodeKeypadMessage(kind int, data []byte) (uint16, bool) {
	if kind != websocket.BinaryMessage || len(data) != 2 {
		return 0, false
	}

	return binary.BigEndian.Uint16(data), true
}

func (s *Server) setSocket(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.socket != nil {
		_ = s.socket.Close()
	}
	s.socket = conn
}

func (s *Server) dropSocket(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = conn.Close()
	if s.socket == conn {
		s.socket = nil
		// a vanished client must not leave keys stuck down
		s.keys.Set(0)
	}
}
