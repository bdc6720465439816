package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Makepad-fr/staff/internal/model"
)

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	return current.Frame.Render(strings.Join(lines, "\n"))
}

// OK prints a success line.
func OK(w io.Writer, msg string) { fmt.Fprintln(w, current.Success.Render("✔ "+msg)) }

// Fail prints an error line.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render("✖ "+msg)) }

// DetailLines are the info rows shown under an expanded card and in the modal.
// Missing optionals render as the placeholder.
func DetailLines(e model.Employee) []string {
	t := current
	return []string{
		t.Info.Render(t.Icons.Work + " " + orPlaceholder(e.Position)),
		t.Info.Render(t.Icons.Calendar + " " + model.FormatDate(e.AdmissionDate)),
		t.Info.Render(t.Icons.Phone + " " + model.FormatPhone(e.Phone)),
	}
}

// Summary is the one-line form used by non-interactive listings.
func Summary(e model.Employee) string {
	return fmt.Sprintf("%4d  %-24s %-20s %s",
		e.ID, e.Name, orPlaceholder(e.Position), model.FormatPhone(e.Phone))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return model.Placeholder
	}
	return s
}
