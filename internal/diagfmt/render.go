package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"rcdiag/internal/diag"
	"rcdiag/internal/source"
	"rcdiag/internal/srcmap"
)

type styles struct {
	severity  map[diag.Severity]*color.Color
	message   *color.Color
	underline *color.Color
}

// newStyles builds per-call color styles with an explicit on/off switch so
// output is deterministic regardless of TTY detection, and so concurrent
// RenderAll calls never share mutable color state.
func newStyles(enabled bool) styles {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return styles{
		severity: map[diag.Severity]*color.Color{
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevWarning: mk(color.FgMagenta, color.Bold),
			diag.SevNote:    mk(color.FgCyan, color.Bold),
		},
		message:   mk(color.Bold),
		underline: mk(color.FgGreen, color.Bold),
	}
}

func (s styles) severityText(sev diag.Severity) string {
	if c, ok := s.severity[sev]; ok {
		return c.Sprint(sev.String())
	}
	return sev.String()
}

// RenderAll renders every record of the store in insertion order. Rendering
// never fails a record: cross-reference I/O problems degrade to inline
// annotations. The returned error only reports sink write failures.
func RenderAll(w io.Writer, store *diag.Store, file *source.File, mappings *srcmap.Mappings, opts Options) error {
	st := newStyles(opts.Color)
	for _, rec := range store.Records() {
		if err := renderRecord(w, rec, store, file, mappings, opts, st); err != nil {
			return err
		}
	}
	return nil
}

// underline is the computed caret/tilde geometry, in display codepoints.
type underline struct {
	pointOffset uint32 // codepoints from line start to the caret
	beforeLen   uint32 // tildes before the caret
	afterLen    uint32 // tildes after the caret
}

func (u underline) line() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", int(u.pointOffset-u.beforeLen)))
	b.WriteString(strings.Repeat("~", int(u.beforeLen)))
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", int(u.afterLen)))
	return b.String()
}

func renderRecord(w io.Writer, rec diag.Record, store *diag.Store, file *source.File, mappings *srcmap.Mappings, opts Options, st styles) error {
	if rec.Severity == diag.SevHint {
		return nil
	}
	msg, ok := message(rec, store, file.Content)
	if !ok {
		return nil
	}

	lineStart, lineEnd := file.Line(rec.Token.Start)
	col := countDisplayCodepoints(file.Content, rec.CodePage, lineStart, rec.Token.Start) + 1

	headerFile := file.FormatPath(opts.PathMode.modeString(), opts.BaseDir)
	headerLine := rec.Token.Line
	corresponding, mapped := mappings.CorrespondingSpan(rec.Token.Line)
	if mapped {
		headerFile = mappings.FileName(corresponding.File)
		headerLine = corresponding.StartLine
	}

	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		headerFile, headerLine, col, st.severityText(rec.Severity), st.message.Sprint(msg)); err != nil {
		return err
	}

	display, truncated := buildDisplayLine(file.Content[lineStart:lineEnd], rec.CodePage)

	if rec.PrintSourceLine {
		if _, err := fmt.Fprintln(w, display); err != nil {
			return err
		}
		u := computeUnderline(rec, file, lineStart, lineEnd, truncated)
		if _, err := fmt.Fprintln(w, st.underline.Sprint(u.line())); err != nil {
			return err
		}
	}

	if mapped {
		writeCrossReference(w, rec, file, mappings, corresponding, display, st)
	}
	return nil
}

// computeUnderline derives the caret geometry for the record's token, then
// re-anchors it when line truncation pushed the caret out of the display
// window.
func computeUnderline(rec diag.Record, file *source.File, lineStart, lineEnd uint32, truncated bool) underline {
	cp := rec.CodePage
	var u underline
	u.pointOffset = countDisplayCodepoints(file.Content, cp, lineStart, rec.Token.Start)

	if !rec.PointCaret() {
		spanStart := rec.Token.Start
		if rec.SpanStart != nil && rec.SpanStart.Start < spanStart {
			spanStart = rec.SpanStart.Start
		}
		if spanStart < lineStart {
			spanStart = lineStart
		}
		u.beforeLen = countDisplayCodepoints(file.Content, cp, spanStart, rec.Token.Start)

		spanEnd := rec.Token.End
		if rec.SpanEnd != nil && rec.SpanEnd.End > spanEnd {
			spanEnd = rec.SpanEnd.End
		}
		if spanEnd > lineEnd {
			spanEnd = lineEnd
		}
		// The caret itself covers the first offending codepoint.
		if after := countDisplayCodepoints(file.Content, cp, rec.Token.Start, spanEnd); after > 0 {
			u.afterLen = after - 1
		}
	}

	if !truncated {
		return u
	}
	if u.pointOffset >= maxDisplayCodepoints {
		// Caret past the window: pin it to the window edge, keep only
		// context that still fits, drop the tail.
		u.pointOffset = maxDisplayCodepoints
		if u.beforeLen > maxDisplayCodepoints {
			u.beforeLen = maxDisplayCodepoints
		}
		u.afterLen = 0
	} else if u.pointOffset+1+u.afterLen > maxDisplayCodepoints {
		u.afterLen = maxDisplayCodepoints - u.pointOffset - 1
	}
	return u
}
