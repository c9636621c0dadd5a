package skeeball

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	reportBorder = "+----------+----------+"
	reportHeader = "|  Play #  |   Score  |"
)

// RenderReport writes the results table for scores, followed by the total.
func RenderReport(w io.Writer, scores []int) error {
	return Runner{Out: w}.Report(scores)
}

// FormatReport returns the bytes RenderReport would write for scores.
func FormatReport(scores []int) string {
	return formatReport(message.NewPrinter(language.AmericanEnglish), scores)
}

// Report writes the results table for scores to the runner's output.
//
// The layout is a blank line, a bordered "Play #" / "Score" header, one row
// per play numbered from 1, a closing border and a "Total: <sum>" line.
func (r Runner) Report(scores []int) error {
	if r.Out == nil {
		return ErrMissingOutput
	}
	if _, err := io.WriteString(r.Out, formatReport(r.printer(), scores)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func formatReport(printer *message.Printer, scores []int) string {
	var b strings.Builder
	total := 0

	b.WriteString("\n")
	b.WriteString(reportBorder + "\n")
	b.WriteString(reportHeader + "\n")
	b.WriteString(reportBorder + "\n")
	for i, score := range scores {
		fmt.Fprintf(&b, "%6d      %7d\n", i+1, score)
		total += score
	}
	b.WriteString(reportBorder + "\n")
	b.WriteString(printer.Sprintf(MessageReportTotal, total))
	b.WriteString("\n")
	return b.String()
}
