package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// LogMsg is a log line as [tea.Msg], rendered into the log panel.
type LogMsg string

type teaProgramProvider interface {
	Send(msg tea.Msg)
}

// TeaLogWriter is an [io.Writer], for use inside a [slog.Handler], that
// forwards any written logs to a [tea.Program] as [LogMsg].
type TeaLogWriter struct {
	program  teaProgramProvider
	stopOnce sync.Once
	doneChan chan struct{}
	logChan  chan LogMsg
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter] and starts its
// forwarding goroutine, which needs to be stopped with [TeaLogWriter.Stop].
func NewTeaLogWriter(program teaProgramProvider) *TeaLogWriter {
	wr := &TeaLogWriter{
		program:  program,
		doneChan: make(chan struct{}),
		logChan:  make(chan LogMsg, 1000), //nolint:mnd
	}

	go wr.forward()

	return wr
}

// Stop stops the forwarding. Logs written afterwards are discarded. It is
// safe to call Stop more than once.
func (wr *TeaLogWriter) Stop() {
	wr.stopOnce.Do(func() {
		close(wr.doneChan)
	})
}

func (wr *TeaLogWriter) forward() {
	for {
		select {
		case <-wr.doneChan:
			return
		case msg := <-wr.logChan:
			wr.program.Send(msg)
		}
	}
}

// Write queues the log line p for forwarding. It never blocks past Stop.
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	select {
	case <-wr.doneChan:
	default:
		select {
		case <-wr.doneChan:
		case wr.logChan <- LogMsg(p):
		}
	}

	return len(p), nil
}
