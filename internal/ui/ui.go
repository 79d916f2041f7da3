// Package ui implements an interactive picker for linking runs using [tea].
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter
}

// NewHandler returns a pointer to a new user interface [Handler].
func NewHandler(ctx context.Context, cancel context.CancelFunc, linkHandler linker, dirHandler dirProvider, session Session) *Handler {
	handler := &Handler{}

	model := NewTeaModel(linkHandler, dirHandler, cancel, session)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch runs the picker until the user quits it. It returns the [Result] of
// the last linking run of the session, if any.
func (uiHandler *Handler) Launch() (Result, error) {
	defer uiHandler.LogWriter.Stop()

	final, err := uiHandler.program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("(ui) %w", err)
	}

	if m, ok := final.(TeaModel); ok {
		return m.Result()
	}

	return Result{}, nil
}
