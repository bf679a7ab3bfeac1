// Package render draws the category tree, record tables and record details
// for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"caseview/internal/model"
	"caseview/internal/view"
)

var (
	colorAccent = lipgloss.Color("39")
	colorMuted  = lipgloss.Color("245")

	rootStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	idStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

// Tree writes the category tree. Node ids are shown next to labels so they
// can be passed to the table and show commands.
func Tree(w io.Writer, root *view.Node) error {
	t := tree.Root(rootStyle.Render(root.Label)).EnumeratorStyle(idStyle)
	for _, c := range root.Children {
		t.Child(branch(c))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func branch(n *view.Node) any {
	label := n.Label + " " + idStyle.Render(n.ID)
	if len(n.Children) == 0 {
		return label
	}
	t := tree.Root(label)
	for _, c := range n.Children {
		t.Child(branch(c))
	}
	return t
}

// MaxCellWidth truncates long cells such as message bodies.
const MaxCellWidth = 60

// Table writes a bordered table with a leading row-number column.
func Table(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(idStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(append([]string{"#"}, headers...)...)

	for i, r := range rows {
		cells := make([]string, 0, len(r)+1)
		cells = append(cells, fmt.Sprint(i))
		for _, c := range r {
			cells = append(cells, truncate(c, MaxCellWidth))
		}
		t.Row(cells...)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// Detail writes every field of rec, one per line.
func Detail(w io.Writer, rec model.Record) error {
	width := 0
	for _, f := range rec {
		width = max(width, len(f.Name))
	}
	var b strings.Builder
	for _, f := range rec {
		name := keyStyle.Render(fmt.Sprintf("%-*s", width, f.Name))
		b.WriteString(name + "  " + model.FieldText(f.Value) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
