package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"vauxly/internal/conversation"
	"vauxly/internal/metrics"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func writeReport(out io.Writer, report metrics.Report) {
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader("Scores", colorize) {
		fmt.Fprintln(out, line)
	}

	rows := [][]string{
		{"Filler words", formatPercent(report.FillerWordPercentage)},
		{"Words per minute", formatScore(report.WordsPerMinute)},
		{"Script adherence", formatPercent(report.ScriptAdherence)},
		{"Call control", formatScore(report.CallControl)},
		{"Customer motivation", formatScore(report.CustomerMotivation.Score)},
		{"Rep certainty", formatScore(report.RepCertainty)},
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))

	if len(report.SentimentHitCounts) > 0 {
		for _, line := range renderSectionHeader("Rep sentiment hits", colorize) {
			fmt.Fprintln(out, line)
		}
		names := make([]string, 0, len(report.SentimentHitCounts))
		for name := range report.SentimentHitCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		hitRows := make([][]string, 0, len(names))
		for _, name := range names {
			hitRows = append(hitRows, []string{name, strconv.Itoa(report.SentimentHitCounts[name])})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Sentiment", "Count"},
			hitRows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}
}

func writeTranscript(out io.Writer, bundle *conversation.Bundle) {
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader("Transcript", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, u := range bundle.Conversation {
		sentiment := ""
		if len(u.TopSentiments) > 0 {
			sentiment = fmt.Sprintf(" (%s %.2f)", u.TopSentiments[0].Name, u.TopSentiments[0].Score)
		}
		fmt.Fprintf(out, "[%s] %s:%s %s\n",
			formatClock(u.Timestamp), speakerLabel(u.Speaker), sentiment, u.Message)
	}
}
