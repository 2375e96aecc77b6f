package progress

import (
	"io"

	"github.com/akyairhashvil/profilecard/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Display runs a Model in the background.
type Display struct {
	program *tea.Program
	done    chan struct{}
	err     error
}

// Start draws the progress display on out until Stop is called.
func Start(out io.Writer, total int) *Display {
	d := &Display{
		program: tea.NewProgram(New(total), tea.WithOutput(out), tea.WithInput(nil)),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(d.done)
		_, d.err = d.program.Run()
	}()
	return d
}

// Report is safe to call from any goroutine, also after the display has exited.
func (d *Display) Report(r models.Result) {
	d.program.Send(ResultMsg(r))
}

// Done is closed once the display has exited.
func (d *Display) Done() <-chan struct{} {
	return d.done
}

// Stop clears the display and waits for it to exit.
func (d *Display) Stop() error {
	d.program.Send(DoneMsg{})
	<-d.done
	return d.err
}
