package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finboard/date"
	md "github.com/nao1215/markdown"
)

// WindowsMarkdown renders the cutoff of every chart window ending on ref.
func WindowsMarkdown(ref date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Chart Windows on %s", ref.FullLabel())).LF()
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Window", "Name", "Cutoff", "Days"},
		Rows:      [][]string{},
	}
	for _, w := range date.Windows() {
		r, _ := w.Range(ref) // every token of Windows() is known
		table.Rows = append(table.Rows, []string{
			string(w),
			w.Name(),
			r.From.String(),
			fmt.Sprint(r.Days()),
		})
	}
	doc.Table(table).LF()
	return doc.String()
}
