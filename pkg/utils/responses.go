package utils

import (
	"fmt"
	"io"

	"restaurant-menu/internal/apperr"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTable returns a table writer bound to w with the shared style.
func NewTable(w io.Writer, title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	if title != "" {
		t.SetTitle("%s", title)
	}
	t.AppendHeader(header)
	return t
}

// ResponseTable renders rows, or a notice when there are none.
func ResponseTable(w io.Writer, title string, header table.Row, rows []table.Row) {
	if len(rows) == 0 {
		ResponseInfo(w, "No results.")
		return
	}
	t := NewTable(w, title, header)
	t.AppendRows(rows)
	t.Render()
}

// ResponseKeyValue renders a two-column detail view.
func ResponseKeyValue(w io.Writer, title string, pairs [][2]string) {
	t := NewTable(w, title, table.Row{"Field", "Value"})
	for _, p := range pairs {
		t.AppendRow(table.Row{p[0], p[1]})
	}
	t.Render()
}

func ResponseSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, text.FgGreen.Sprint(message))
}

func ResponseInfo(w io.Writer, message string) {
	fmt.Fprintln(w, text.FgCyan.Sprint(message))
}

// ResponseError renders err by kind; it never exposes a stack or panics.
func ResponseError(w io.Writer, err error) {
	fmt.Fprintln(w, text.FgRed.Sprint(apperr.Describe(err)))
}
