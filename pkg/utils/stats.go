package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

var wordPattern = regexp.MustCompile(`\S+`)

// symbolPattern matches the punctuation runs tokenizers usually split off
// in source code: braces, brackets, quotes, operators.
var symbolPattern = regexp.MustCompile(`[{}\[\]()<>"'=:;,./]`)

// EstimateTokens gives a rough token count for generated source.
// Plain text averages about four characters per token; code splits on
// punctuation, so each symbol run adds to the word-based estimate.
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	charEstimate := len(text) / 4
	wordEstimate := int(float64(len(wordPattern.FindAllString(text, -1))) * 1.3)
	symbolEstimate := len(symbolPattern.FindAllString(text, -1)) / 2

	estimate := (charEstimate+wordEstimate)/2 + symbolEstimate
	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

// CountLines counts lines the way an editor shows them: a trailing newline
// does not start a new line.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// FileStats summarizes one generated file
type FileStats struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Lines  int    `json:"lines" yaml:"lines"`
	Bytes  int    `json:"bytes" yaml:"bytes"`
	Tokens int    `json:"tokens" yaml:"tokens"`
}

// StatsFor measures a single file
func StatsFor(f models.CodeFile) FileStats {
	return FileStats{
		Name:   f.Name,
		Path:   f.Path,
		Lines:  CountLines(f.Content),
		Bytes:  len(f.Content),
		Tokens: EstimateTokens(f.Content),
	}
}

// Stats measures every file, preserving order
func Stats(files []models.CodeFile) []FileStats {
	out := make([]FileStats, len(files))
	for i, f := range files {
		out[i] = StatsFor(f)
	}
	return out
}

// Total sums a set of file stats. Name and Path are left empty.
func Total(stats []FileStats) FileStats {
	var t FileStats
	for _, s := range stats {
		t.Lines += s.Lines
		t.Bytes += s.Bytes
		t.Tokens += s.Tokens
	}
	return t
}

// FormatTokenCount formats the token count for display
func FormatTokenCount(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	} else if tokens < 10000 {
		return fmt.Sprintf("~%.1fK tokens", float64(tokens)/1000)
	} else {
		return fmt.Sprintf("~%.0fK tokens", float64(tokens)/1000)
	}
}

// FormatLineCount formats a line count for display
func FormatLineCount(lines int) string {
	if lines == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", lines)
}
