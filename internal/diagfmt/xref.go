package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"rcdiag/internal/diag"
	"rcdiag/internal/source"
	"rcdiag/internal/srcmap"
)

// writeCrossReference prints the "this line originated from ..." note for a
// record whose line maps back to original source. Every failure is absorbed
// into an inline annotation; this function never propagates an error for the
// record or the run.
func writeCrossReference(w io.Writer, rec diag.Record, file *source.File, mappings *srcmap.Mappings, sp srcmap.Span, display string, st styles) {
	// The "string literal too long" check operates on the preprocessed
	// buffer, so when preprocessing moved the line the comparison with the
	// original is meaningless.
	if rec.Kind == diag.LitStringLiteralTooLong && sp.StartLine != rec.Token.Line {
		return
	}

	name := mappings.FileName(sp.File)
	lines, err := readOriginalLines(name, sp.StartLine, sp.EndLine, rec)
	if err != nil {
		fmt.Fprintf(w, "unable to print line(s) from file '%s': %s\n", name, err)
		return
	}

	// A single unchanged line would only restate what was already printed.
	if sp.StartLine == sp.EndLine && len(lines) == 1 && lines[0] == display {
		return
	}

	col := 1
	if sp.StartLine == sp.EndLine {
		fmt.Fprintf(w, "%s:%d:%d: %s: this line originated from line %d of file '%s'\n",
			name, sp.StartLine, col, st.severityText(diag.SevNote), sp.StartLine, name)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s: this line originated from lines %d through %d of file '%s'\n",
			name, sp.StartLine, col, st.severityText(diag.SevNote), sp.StartLine, sp.EndLine, name)
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// readOriginalLines streams the named file and materializes the display text
// of lines [startLine, endLine]. The file handle is closed on every exit
// path. Line counting treats \r\n as one boundary by remembering the
// previous byte.
func readOriginalLines(name string, startLine, endLine uint32, rec diag.Record) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, classifyOpenErr(err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	lines := make([]string, 0, endLine-startLine+1)

	var currentLine uint32 = 1
	var lastByte byte
	buf := make([]byte, 0, maxDisplayBytes)
	flush := func() {
		if currentLine >= startLine && currentLine <= endLine {
			text, _ := buildDisplayLine(buf, rec.CodePage)
			lines = append(lines, text)
		}
		buf = buf[:0]
	}

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read failure: %w", err)
		}
		switch b {
		case '\n':
			if lastByte == '\r' {
				// Second half of \r\n: the \r already ended the line.
				lastByte = b
				continue
			}
			flush()
			currentLine++
		case '\r':
			flush()
			currentLine++
		default:
			if currentLine >= startLine && currentLine <= endLine && len(buf) < maxDisplayBytes {
				buf = append(buf, b)
			}
		}
		lastByte = b
		if currentLine > endLine {
			break
		}
	}
	if len(buf) > 0 {
		// Final line without a trailing newline.
		flush()
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("line %d not found", startLine)
	}
	return lines, nil
}

func classifyOpenErr(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return fmt.Errorf("%s: %w", pe.Op, pe.Err)
	}
	return err
}
