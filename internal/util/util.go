// Package util contains text helpers for the terminal output.
package util

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscapes matches the ANSI escape sequences emitted by fatih/color.
var ansiEscapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

// EscapeAwareRuneCountInString counts the number of runes in a
// string taking into account escape sequences.
func EscapeAwareRuneCountInString(s string) int {
	return utf8.RuneCountInString(ansiEscapes.ReplaceAllString(s, ""))
}

// RightPad adds spaces to the right of str until it reaches length
// visible runes. A str already longer than length is returned as is.
func RightPad(str string, length int) string {
	count := EscapeAwareRuneCountInString(str)
	if count >= length {
		return str
	}
	return str + strings.Repeat(" ", length-count)
}
