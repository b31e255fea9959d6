package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vauxly/internal/conversation"
)

var speakerTitler = cases.Title(language.English)

// speakerLabel renders a speaker name for display, title-cased regardless of
// how the stored record spells it.
func speakerLabel(s conversation.Speaker) string {
	return speakerTitler.String(strings.ToLower(string(s)))
}

// formatClock renders seconds as m:ss, the way transcript timestamps read in
// call review.
func formatClock(seconds float64) string {
	total := int(math.Floor(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func formatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
