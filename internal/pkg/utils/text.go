package utils

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const (
	wordsPerMinute = 200
	excerptLength  = 150
)

var (
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// PlainText strips HTML tags and collapses whitespace.
func PlainText(s string) string {
	s = htmlTag.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Excerpt returns the first excerptLength characters of the plain text,
// cut at a word boundary and suffixed with "..." when truncated.
func Excerpt(s string) string {
	text := PlainText(s)
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}
	runes := []rune(text)[:excerptLength]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > excerptLength/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

// ReadTime estimates reading time at 200 words per minute, minimum one.
func ReadTime(s string) string {
	words := len(strings.Fields(PlainText(s)))
	mins := int(math.Ceil(float64(words) / wordsPerMinute))
	if mins < 1 {
		mins = 1
	}
	if mins == 1 {
		return "1 min read"
	}
	return humanize.Comma(int64(mins)) + " mins read"
}

// TimeAgo renders t relative to now, e.g. "2 hours ago".
func TimeAgo(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// FormatDate renders a date the way listings show it, e.g. "January 2, 2006".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with base-1024 units and at most two decimals.
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "Unknown"
	}
	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	value := float64(size) / math.Pow(1024, float64(i))
	return humanize.FtoaWithDigits(value, 2) + " " + sizeUnits[i]
}
