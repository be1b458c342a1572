package parsers

import (
	"bufio"
	"context"
	"encoding"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Lines splits `r` into a series of lines.
//
// Empty lines are skipped, and comments are stripped.
func Lines(r io.Reader) SeriesParser[string] {
	return newLines(r, true)
}

// RawLines splits `r` into a series of lines, keeping every line.
//
// Surrounding whitespace is trimmed, but empty lines and `#` are returned as is,
// so the position of a value is its line number.
func RawLines(r io.Reader) SeriesParser[string] {
	return newLines(r, false)
}

// UnmarshalEach returns a parser that unmarshals each string of `inner` as a `T`.
func UnmarshalEach[TPtr TextUnmarshaler[T], T any](inner SeriesParser[string]) SeriesParser[*T] {
	return &unmarshaler[TPtr, T]{inner: inner}
}

type TextUnmarshaler[T any] interface {
	encoding.TextUnmarshaler
	*T
}

type unmarshaler[TPtr TextUnmarshaler[T], T any] struct {
	inner SeriesParser[string]
}

func (u *unmarshaler[TPtr, T]) Position() string {
	return u.inner.Position()
}

func (u *unmarshaler[TPtr, T]) Next(ctx context.Context) (*T, error) {
	text, err := u.inner.Next(ctx)
	if err != nil {
		return nil, err
	}

	res := new(T)

	if err := TPtr(res).UnmarshalText([]byte(text)); err != nil {
		return nil, err
	}

	return res, nil
}

type lines struct {
	scanner *bufio.Scanner
	lineNo  uint
	skip    bool
}

func newLines(r io.Reader, skip bool) SeriesParser[string] {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	return &lines{scanner: scanner, skip: skip}
}

func (l *lines) Position() string {
	return fmt.Sprintf("line %d", l.lineNo)
}

func (l *lines) Next(ctx context.Context) (string, error) {
	for {
		l.lineNo++

		if err := ctx.Err(); err != nil {
			return "", NewNonResumableError(err)
		}

		if !l.scanner.Scan() {
			break
		}

		text := strings.TrimSpace(l.scanner.Text())

		if !l.skip {
			return text, nil
		}

		if len(text) == 0 {
			continue // empty line
		}

		if idx := strings.IndexRune(text, '#'); idx != -1 {
			if idx == 0 {
				continue // commented line
			}

			// end of line comment
			text = text[:idx]
			text = strings.TrimRightFunc(text, unicode.IsSpace)
		}

		return text, nil
	}

	err := l.scanner.Err()
	if err != nil {
		// bufio.Scanner does not support continuing after an error
		return "", NewNonResumableError(err)
	}

	return "", NewNonResumableError(io.EOF)
}
