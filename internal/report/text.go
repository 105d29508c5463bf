package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

const (
	ruleWidth   = 70
	labelColumn = 50
)

var sectionOrder = []domain.Category{
	domain.CategoryVerb,
	domain.CategoryNoun,
	domain.CategoryOther,
}

type textStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	rule    lipgloss.Style
	hint    lipgloss.Style
	number  lipgloss.Style
	empty   lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer) textStyles {
	return textStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		section: r.NewStyle().Bold(true),
		rule:    r.NewStyle().Foreground(lipgloss.Color("8")),
		hint:    r.NewStyle().Faint(true),
		number:  r.NewStyle().Bold(true),
		empty:   r.NewStyle().Italic(true).Faint(true),
	}
}

// Text writes a console report per file: one section per category listing
// its phrases, then summary statistics. Colors are used only when w is a
// terminal.
func Text(w io.Writer, files []domain.FileAnalysis) error {
	st := newTextStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	for i, f := range files {
		if i > 0 {
			b.WriteString("\n")
		}
		writeFile(&b, st, f)
	}
	if len(files) > 1 {
		writeBatchTotals(&b, st, files)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeFile(b *strings.Builder, st textStyles, f domain.FileAnalysis) {
	rule := st.rule.Render(strings.Repeat("=", ruleWidth))
	res := f.Result

	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, st.title.Render("BUSINESS PROCESS ELEMENT CLASSIFICATION"))
	fmt.Fprintf(b, "%s %s\n", f.Path, st.hint.Render("("+humanize.Bytes(uint64(f.Size))+")"))
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "Total labels processed: %s\n", st.number.Render(fmt.Sprint(res.TotalLabels)))

	if res.TotalLabels == 0 {
		fmt.Fprintf(b, "\n  %s\n", st.empty.Render("(No labels with spaces found)"))
		return
	}

	for _, cat := range sectionOrder {
		phrases := res.Bucket(cat)
		if cat == domain.CategoryOther && len(phrases) == 0 {
			continue
		}

		fmt.Fprintf(b, "\n%s\n", st.section.Render(
			fmt.Sprintf("%s - %d items", strings.ToUpper(cat.Title()), len(phrases))))
		fmt.Fprintln(b, rule)

		if len(phrases) == 0 {
			fmt.Fprintf(b, "  %s\n", st.empty.Render("(None found)"))
			continue
		}
		for _, p := range phrases {
			fmt.Fprintf(b, "  • %s%s %s\n",
				p.Text, padding(p.Text), st.hint.Render("[starts with: "+p.FirstWord+"]"))
		}
	}

	fmt.Fprintf(b, "\n%s\n", st.section.Render("SUMMARY STATISTICS"))
	fmt.Fprintln(b, rule)
	for _, cat := range sectionOrder {
		fmt.Fprintf(b, "  %-32s %4d (%5.1f%%)\n",
			cat.Title()+":", res.Statistics.Count(cat), res.Statistics.Percentage(cat))
	}
	fmt.Fprintf(b, "  %s\n", st.rule.Render(strings.Repeat("─", ruleWidth-2)))
	fmt.Fprintf(b, "  %-32s %4d\n", "Total:", res.TotalLabels)
}

func writeBatchTotals(b *strings.Builder, st textStyles, files []domain.FileAnalysis) {
	var labels, verbs, nouns, others int
	var size int64
	for _, f := range files {
		labels += f.Result.TotalLabels
		verbs += f.Result.Statistics.VerbCount
		nouns += f.Result.Statistics.NounCount
		others += f.Result.Statistics.OtherCount
		size += f.Size
	}

	fmt.Fprintf(b, "\n%s\n", st.title.Render(fmt.Sprintf(
		"%d files, %s, %d labels: %d verb-led, %d noun-led, %d unclassified",
		len(files), humanize.Bytes(uint64(size)), labels, verbs, nouns, others)))
}

// padding aligns the "[starts with" hints in one column. Labels wider than
// the column get a single separating space.
func padding(text string) string {
	n := labelColumn - lipgloss.Width(text)
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
