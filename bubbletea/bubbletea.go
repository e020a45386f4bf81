// Package bubbletea provides an interactive Bubble Tea TUI for decorating
// text: type a value, stack decorations with key bindings, and accept the
// resulting markup.
package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea program and returns the final model.
// It blocks until the program exits. The context is used for graceful
// shutdown: when cancelled, the program quits.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	p := tea.NewProgram(m, opts...)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("unexpected final model %T", final)
	}
	return fm, nil
}
