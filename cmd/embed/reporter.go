package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"transcript-search/internal/indexer"
)

type styles struct {
	header  lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	label   lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F780FF")).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Width(24),
	}
}

// consoleReporter prints ingestion progress for an operator.
type consoleReporter struct {
	out    io.Writer
	styles styles
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{out: out, styles: newStyles()}
}

func (r *consoleReporter) Start(channelID, collection string) {
	fmt.Fprintln(r.out, r.styles.header.Render("Embedding channel "+channelID))
	fmt.Fprintln(r.out, r.styles.muted.Render("→ collection "+collection))
}

func (r *consoleReporter) VideoSkipped(videoID string, reason error) {
	fmt.Fprintln(r.out, r.styles.warn.Render(fmt.Sprintf("  skipped %s: %v", videoID, reason)))
}

func (r *consoleReporter) EmbeddingProgress(done, total int) {
	fmt.Fprintln(r.out, r.styles.muted.Render(fmt.Sprintf("→ embedded %d/%d segments", done, total)))
}

func (r *consoleReporter) BatchWritten(written, total int) {
	fmt.Fprintln(r.out, r.styles.muted.Render(fmt.Sprintf("→ wrote %d/%d records", written, total)))
}

// Summary prints the ingestion totals. stats may be nil.
func (r *consoleReporter) Summary(stats *indexer.IngestStats, err error) {
	fmt.Fprintln(r.out)
	if stats != nil {
		rows := []struct {
			label string
			value int
		}{
			{"Videos", stats.VideosTotal},
			{"Videos ingested", stats.VideosIngested},
			{"Videos skipped", stats.VideosSkipped},
			{"Segments", stats.Segments},
			{"Empty segments dropped", stats.EmptySegmentsDropped},
			{"Embedding requests", stats.EmbeddingRequests},
			{"Records written", stats.RecordsWritten},
		}
		for _, row := range rows {
			fmt.Fprintln(r.out, r.styles.label.Render(row.label)+fmt.Sprint(row.value))
		}
		for _, reason := range slices.Sorted(maps.Keys(stats.SkipReasons)) {
			fmt.Fprintln(r.out, r.styles.warn.Render(fmt.Sprintf("  %s: %d", reason, stats.SkipReasons[reason])))
		}
	}

	if err != nil {
		fmt.Fprintln(r.out, r.styles.err.Render("Ingestion failed"))
		return
	}
	fmt.Fprintln(r.out, r.styles.success.Render("✓ Ingestion completed"))
}

var _ indexer.Reporter = (*consoleReporter)(nil)
