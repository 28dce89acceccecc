package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finboard"
	md "github.com/nao1215/markdown"
)

// PriceWindowMarkdown renders a price window as a markdown report.
//
// symbol is used in the title when not empty, currency formats the prices.
func PriceWindowMarkdown(pw *finboard.PriceWindow, symbol, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("Prices over %s", pw.Window.Name())
	if symbol != "" {
		title = fmt.Sprintf("%s over %s", symbol, pw.Window.Name())
	}
	doc.H1(title).LF()
	doc.PlainText(fmt.Sprintf("From %s to %s.", pw.Cutoff.FullLabel(), pw.Reference.FullLabel())).LF()

	if pw.Len() == 0 {
		doc.PlainText("No price in this window.").LF()
		unparsedNote(doc, pw.Unparsed)
		return doc.String()
	}

	first, _ := pw.First()
	last, _ := pw.Last()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Last Close"), md.Bold(finboard.M(last.Close, currency).String())},
		Rows: [][]string{
			{"First Close", finboard.M(first.Close, currency).String()},
			{"Change", finboard.M(pw.Change(), currency).SignedString()},
			{"Change %", pw.ChangePercent().SignedString()},
			{"High", finboard.M(pw.High(), currency).String()},
			{"Low", finboard.M(pw.Low(), currency).String()},
			{"Points", fmt.Sprint(pw.Len())},
		},
	}).LF()

	doc.H2("Daily Prices").LF()
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Open", "High", "Low", "Close"},
		Rows:   [][]string{},
	}
	for _, p := range pw.Points {
		table.Rows = append(table.Rows, []string{
			p.Label,
			p.Open.StringFixed(2),
			p.High.StringFixed(2),
			p.Low.StringFixed(2),
			p.Close.StringFixed(2),
		})
	}
	doc.Table(table).LF()

	unparsedNote(doc, pw.Unparsed)
	return doc.String()
}

// unparsedNote lists the raw dates of skipped records, if any.
func unparsedNote(doc *md.Markdown, unparsed []string) {
	if len(unparsed) == 0 {
		return
	}
	doc.H2("Skipped Records").LF()
	doc.PlainText(fmt.Sprintf("%d record(s) were skipped because their date could not be parsed:", len(unparsed))).LF()
	quoted := make([]string, len(unparsed))
	for i, raw := range unparsed {
		quoted[i] = fmt.Sprintf("%q", raw)
	}
	doc.BulletList(quoted...).LF()
}
