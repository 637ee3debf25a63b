package cli

import (
	"fmt"
	"iter"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store"
	"github.com/idilsaglam/tasks/internal/ui"
)

const barWidth = 28

func (s *Session) viewAll() {
	entries := s.store.List()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, ui.C(ui.Current().Muted, msgNoTasks))
		return
	}
	done, pending := s.store.Stats()

	lines := []string{
		ui.Summary(done, pending),
		ui.C(ui.Current().Muted, ui.ProgressBar(done, len(entries), barWidth)),
		"",
	}
	lines = append(lines, entryLines(entries)...)
	ui.Panel(s.out, lines)
}

func (s *Session) viewFiltered(header string, tasks iter.Seq2[int, model.Task]) {
	t := ui.Current()
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.C(t.Accent, header))
	n := 0
	for _, task := range tasks {
		fmt.Fprintln(s.out, filteredLine(task))
		n++
	}
	if n == 0 {
		fmt.Fprintln(s.out, ui.C(t.Muted, "(none)"))
	}
}

// entryLines renders "N. [mark] Priority: P - Description".
func entryLines(entries []store.Entry) []string {
	t := ui.Current()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		mark, desc := ui.C(t.Pending, t.MarkPending), e.Task.Description
		if e.Task.Completed {
			mark, desc = ui.C(t.Success, t.MarkDone), ui.C(t.Done, desc)
		}
		out = append(out, fmt.Sprintf("%d. [%s] Priority: %d - %s", e.Position, mark, e.Task.Priority, desc))
	}
	return out
}

func filteredLine(task model.Task) string {
	return fmt.Sprintf("- Priority: %d | %s", task.Priority, task.Description)
}
