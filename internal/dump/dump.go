// Package dump persists diagnostic stores to disk so that compiler stages
// can hand finished diagnostics to tooling (the rcdiag CLI) without keeping
// the whole compilation alive. The format is msgpack with an explicit schema
// version for safe invalidation.
package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"rcdiag/internal/codepage"
	"rcdiag/internal/diag"
	"rcdiag/internal/source"
	"rcdiag/internal/srcmap"
	"rcdiag/internal/token"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 1

// TokenPayload is the wire form of one token.
type TokenPayload struct {
	Start uint32
	End   uint32
	Line  uint32
	Kind  uint8
}

// RecordPayload is the wire form of one diagnostic record. The Extra payload
// is flattened into a shape discriminator plus four numeric slots; which
// slots are meaningful depends on the shape.
type RecordPayload struct {
	Kind     uint16
	Severity uint8
	Token    TokenPayload
	CodePage uint16

	HasSpanStart bool
	SpanStart    TokenPayload
	HasSpanEnd   bool
	SpanEnd      TokenPayload

	PrintSourceLine bool

	Shape  uint8
	ExtraA uint32
	ExtraB uint32
	ExtraC uint32
	ExtraD uint32
}

// MappingPayload is the wire form of one line-mapping entry.
type MappingPayload struct {
	Line      uint32
	File      uint32
	StartLine uint32
	EndLine   uint32
}

// Payload is everything one compilation's diagnostics need to be re-rendered
// later: the records, the string table, the preprocessed source, and the
// line mappings.
type Payload struct {
	Schema uint16

	SourcePath string
	Source     []byte

	Records []RecordPayload
	Strings [][]byte

	MappingFiles []string
	Mappings     []MappingPayload
}

func payloadToken(t token.Token) TokenPayload {
	return TokenPayload{Start: t.Start, End: t.End, Line: t.Line, Kind: uint8(t.Kind)}
}

func fromPayloadToken(t TokenPayload) token.Token {
	return token.Token{Start: t.Start, End: t.End, Line: t.Line, Kind: token.Kind(t.Kind)}
}

// Build assembles a Payload from live diagnostics state.
func Build(store *diag.Store, file *source.File, mappings *srcmap.Mappings) *Payload {
	p := &Payload{
		Schema:     schemaVersion,
		SourcePath: file.Path,
		Source:     file.Content,
	}

	for i := 0; i < store.StringTableLen(); i++ {
		p.Strings = append(p.Strings, store.String(diag.StringIndex(i)))
	}

	for _, rec := range store.Records() {
		rp := RecordPayload{
			Kind:            uint16(rec.Kind),
			Severity:        uint8(rec.Severity),
			Token:           payloadToken(rec.Token),
			CodePage:        uint16(rec.CodePage),
			PrintSourceLine: rec.PrintSourceLine,
		}
		if rec.SpanStart != nil {
			rp.HasSpanStart = true
			rp.SpanStart = payloadToken(*rec.SpanStart)
		}
		if rec.SpanEnd != nil {
			rp.HasSpanEnd = true
			rp.SpanEnd = payloadToken(*rec.SpanEnd)
		}
		rp.Shape, rp.ExtraA, rp.ExtraB, rp.ExtraC, rp.ExtraD = flattenExtra(rec.Extra)
		p.Records = append(p.Records, rp)
	}

	if mappings != nil {
		p.MappingFiles = append(p.MappingFiles, mappings.Files()...)
		for _, line := range mappings.Lines() {
			sp, _ := mappings.CorrespondingSpan(line)
			p.Mappings = append(p.Mappings, MappingPayload{
				Line:      line,
				File:      uint32(sp.File),
				StartLine: sp.StartLine,
				EndLine:   sp.EndLine,
			})
		}
	}
	return p
}

func flattenExtra(e diag.Extra) (shape uint8, a, b, c, d uint32) {
	switch v := e.(type) {
	case diag.ExtraNone:
		return uint8(diag.ShapeNone), 0, 0, 0, 0
	case diag.ExtraExpectedKind:
		return uint8(diag.ShapeExpectedKind), uint32(v.Kind), 0, 0, 0
	case diag.ExtraExpectedTypes:
		var bits uint32
		flags := []bool{v.Number, v.NumberExpression, v.StringLiteral, v.Accelerator, v.ControlClass, v.FilenameString}
		for i, f := range flags {
			if f {
				bits |= 1 << i
			}
		}
		return uint8(diag.ShapeExpectedTypes), bits, 0, 0, 0
	case diag.ExtraNumber:
		return uint8(diag.ShapeNumber), v.Value, 0, 0, 0
	case diag.ExtraFileOpen:
		return uint8(diag.ShapeFileOpen), uint32(v.Err), uint32(v.Name), 0, 0
	case diag.ExtraAccelerator:
		return uint8(diag.ShapeAccelerator), uint32(v.Err), 0, 0, 0
	case diag.ExtraIconDir:
		return uint8(diag.ShapeIconDir), uint32(v.Group), uint32(v.Format), uint32(v.Index), uint32(v.BitmapVersion)
	case diag.ExtraStringAndLanguage:
		return uint8(diag.ShapeStringAndLanguage), uint32(v.ID), uint32(v.Language), 0, 0
	case diag.ExtraFilename:
		return uint8(diag.ShapeFilename), uint32(v.Name), 0, 0, 0
	case diag.ExtraByteCount:
		return uint8(diag.ShapeByteCount), uint32(v.Bytes), 0, 0, 0
	}
	return uint8(diag.ShapeNone), 0, 0, 0, 0
}

func unflattenExtra(shape uint8, a, b, c, d uint32) (diag.Extra, error) {
	switch diag.Shape(shape) {
	case diag.ShapeNone:
		return diag.ExtraNone{}, nil
	case diag.ShapeExpectedKind:
		return diag.ExtraExpectedKind{Kind: token.Kind(a)}, nil
	case diag.ShapeExpectedTypes:
		return diag.ExtraExpectedTypes{
			Number:           a&(1<<0) != 0,
			NumberExpression: a&(1<<1) != 0,
			StringLiteral:    a&(1<<2) != 0,
			Accelerator:      a&(1<<3) != 0,
			ControlClass:     a&(1<<4) != 0,
			FilenameString:   a&(1<<5) != 0,
		}, nil
	case diag.ShapeNumber:
		return diag.ExtraNumber{Value: a}, nil
	case diag.ShapeFileOpen:
		return diag.ExtraFileOpen{Err: diag.FileOpenErrorKind(a), Name: diag.StringIndex(b)}, nil
	case diag.ShapeAccelerator:
		return diag.ExtraAccelerator{Err: diag.AcceleratorErrorKind(a)}, nil
	case diag.ShapeIconDir:
		return diag.ExtraIconDir{
			Group:         diag.IconGroup(a),
			Format:        diag.ImageFormat(b),
			Index:         uint16(c),
			BitmapVersion: diag.BitmapVersion(d),
		}, nil
	case diag.ShapeStringAndLanguage:
		return diag.ExtraStringAndLanguage{ID: uint16(a), Language: uint16(b)}, nil
	case diag.ShapeFilename:
		return diag.ExtraFilename{Name: diag.StringIndex(a)}, nil
	case diag.ShapeByteCount:
		return diag.ExtraByteCount{Bytes: diag.StringIndex(a)}, nil
	}
	return nil, fmt.Errorf("unknown extra shape %d", shape)
}

// Write serializes the payload to path atomically (temp file plus rename).
func Write(path string, p *Payload) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(p); err != nil {
		f.Close()
		os.Remove(tmpName)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// Read deserializes a payload from path and validates its schema.
func Read(path string) (*Payload, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump %q: %w", path, err)
	}
	defer f.Close()

	var p Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode dump %q: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("dump %q has schema %d, want %d", path, p.Schema, schemaVersion)
	}
	return &p, nil
}

// Load reads a payload and reconstructs live diagnostics state from it.
// String table indices are preserved because entries are re-put in order.
func Load(path string) (*diag.Store, *source.File, *srcmap.Mappings, error) {
	p, err := Read(path)
	if err != nil {
		return nil, nil, nil, err
	}

	store := diag.NewStore()
	for _, s := range p.Strings {
		if _, err := store.PutString(s); err != nil {
			return nil, nil, nil, fmt.Errorf("dump %q: %w", path, err)
		}
	}

	for _, rp := range p.Records {
		extra, err := unflattenExtra(rp.Shape, rp.ExtraA, rp.ExtraB, rp.ExtraC, rp.ExtraD)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("dump %q: %w", path, err)
		}
		// Validate before Append: a corrupted dump must surface as an
		// error, not as a producer-contract panic.
		want, known := diag.ShapeForKind(diag.Kind(rp.Kind))
		if !known {
			return nil, nil, nil, fmt.Errorf("dump %q: unknown diagnostic kind %d", path, rp.Kind)
		}
		if want != extra.Shape() {
			return nil, nil, nil, fmt.Errorf("dump %q: kind %d carries payload shape %d, want %d", path, rp.Kind, extra.Shape(), want)
		}
		rec := diag.Record{
			Kind:            diag.Kind(rp.Kind),
			Severity:        diag.Severity(rp.Severity),
			Token:           fromPayloadToken(rp.Token),
			CodePage:        codepage.ID(rp.CodePage),
			PrintSourceLine: rp.PrintSourceLine,
			Extra:           extra,
		}
		if rp.HasSpanStart {
			t := fromPayloadToken(rp.SpanStart)
			rec.SpanStart = &t
		}
		if rp.HasSpanEnd {
			t := fromPayloadToken(rp.SpanEnd)
			rec.SpanEnd = &t
		}
		store.Append(rec)
	}

	file := source.NewFile(p.SourcePath, p.Source)

	var mappings *srcmap.Mappings
	if len(p.Mappings) > 0 || len(p.MappingFiles) > 0 {
		mappings = srcmap.NewMappings()
		for _, name := range p.MappingFiles {
			mappings.AddFile(name)
		}
		for _, m := range p.Mappings {
			mappings.Set(m.Line, srcmap.Span{
				File:      srcmap.FileID(m.File),
				StartLine: m.StartLine,
				EndLine:   m.EndLine,
			})
		}
	}
	return store, file, mappings, nil
}
