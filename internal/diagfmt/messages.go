package diagfmt

import (
	"fmt"
	"strings"

	"rcdiag/internal/codepage"
	"rcdiag/internal/diag"
)

// message renders the one-line text for a record, dispatching on its kind.
// ok is false when the (kind, severity) pair has no wording: hints always,
// and notes for kinds without a follow-up message. Several entries encode
// legacy-compiler-compatibility wording verbatim; treat them as product
// requirements, not as text to re-derive.
func message(rec diag.Record, store *diag.Store, src []byte) (text string, ok bool) {
	if rec.Severity == diag.SevHint {
		return "", false
	}
	isNote := rec.Severity == diag.SevNote
	tok := displayText(rec.Token.NameForDisplay(src), rec.CodePage)

	switch rec.Kind {
	case diag.LexUnfinishedStringLiteral:
		return noteless(isNote, fmt.Sprintf("unfinished string literal at '%s', expected closing '\"'", tok))
	case diag.LexUnfinishedBlockComment:
		return noteless(isNote, fmt.Sprintf("unfinished block comment at '%s', expected closing '*/'", tok))
	case diag.LexIllegalByte:
		return noteless(isNote, fmt.Sprintf("character '%s' is not allowed", tok))
	case diag.LexIllegalByteOutsideStrings:
		return noteless(isNote, fmt.Sprintf("character '%s' is not allowed outside of string literals", tok))
	case diag.LexIllegalCodepointOutsideStrings:
		return noteless(isNote, fmt.Sprintf("codepoint <U+%04X> is not allowed outside of string literals", firstCodepoint(rec, src)))
	case diag.LexIllegalByteOrderMark:
		return noteless(isNote, "byte order mark <U+FEFF> is not allowed")
	case diag.LexIllegalPrivateUseCharacter:
		return noteless(isNote, "private use character <U+E000> is not allowed")
	case diag.LexFoundCStyleEscapedQuote:
		return noteless(isNote, "escaping quotes with \\\" is not allowed (use \"\" instead)")
	case diag.LexCodePagePragmaMissingLeftParen:
		return noteless(isNote, "expected '(' after code_page in #pragma code_page")
	case diag.LexCodePagePragmaMissingRightParen:
		return noteless(isNote, "expected ')' after code page number in #pragma code_page")
	case diag.LexCodePagePragmaInvalidCodePage:
		return noteless(isNote, "invalid code page in #pragma code_page")
	case diag.LexCodePagePragmaNotInteger:
		return noteless(isNote, "code page is not a valid integer in #pragma code_page")
	case diag.LexCodePagePragmaOverflow:
		return noteless(isNote, "code page too large in #pragma code_page")
	case diag.LexCodePagePragmaUnsupportedCodePage:
		id := codepage.ID(number(rec))
		return noteless(isNote, fmt.Sprintf("unsupported code page '%s (id=%d)' in #pragma code_page", id, uint16(id)))
	case diag.LexCodePagePragmaInIncludedFile:
		// Hint-only kind; no wording at any rendered severity.
		return "", false
	case diag.LexInvalidDigitInNumberLiteral:
		if isNote {
			return "the Win32 RC compiler would accept this digit as a zero", true
		}
		return fmt.Sprintf("invalid digit character in number literal '%s'", tok), true
	case diag.LexNumberWithExponent:
		return noteless(isNote, fmt.Sprintf("number literal with exponent is not allowed: %s", tok))

	case diag.SynExpectedToken:
		e, _ := rec.Extra.(diag.ExtraExpectedKind)
		return noteless(isNote, fmt.Sprintf("expected %s, but got '%s'", e.Kind.NameForDisplay(), tok))
	case diag.SynExpectedSomethingElse:
		e, _ := rec.Extra.(diag.ExtraExpectedTypes)
		return noteless(isNote, fmt.Sprintf("expected %s; got '%s'", expectedTypesList(e), tok))
	case diag.SynUnfinishedRawDataBlock:
		return noteless(isNote, fmt.Sprintf("unfinished raw data block at '%s', expected closing '}' or 'END'", tok))
	case diag.SynUnfinishedStringTableBlock:
		return noteless(isNote, fmt.Sprintf("unfinished STRINGTABLE block at '%s', expected closing '}' or 'END'", tok))
	case diag.SynResourceTypeCantUseRawData:
		if isNote {
			return fmt.Sprintf("if '%s' is intended to be a filename, it must be specified as a quoted string literal", tok), true
		}
		return fmt.Sprintf("expected '<filename>', found '%s' (resource type can't use raw data)", tok), true
	case diag.SynIdMustBeOrdinal:
		return noteless(isNote, fmt.Sprintf("id must be an ordinal (number), got '%s'", tok))
	case diag.SynNameOrIdNotAllowed:
		return noteless(isNote, fmt.Sprintf("name or id is not allowed for resource type '%s'", tok))
	case diag.SynStringResourceAsNumericType:
		if isNote {
			return "using RT_STRING directly very likely results in an invalid .res file, use a STRINGTABLE instead", true
		}
		return "the number 6 (RT_STRING) cannot be used as a resource type", true
	case diag.SynAsciiCharacterNotEquivalent:
		return noteless(isNote, fmt.Sprintf("ASCII character '%s' is not equivalent under the current code page", tok))
	case diag.SynAcceleratorTypeRequired:
		return noteless(isNote, "accelerator type [ASCII or VIRTKEY] required when key is an integer")
	case diag.SynRcWouldMiscompileVersionValuePadding:
		if isNote {
			return "to avoid the potential miscompilation, consider adding a comma between the key and the quoted string", true
		}
		return "the padding before this quoted string value would be miscompiled by the Win32 RC compiler", true
	case diag.SynRcWouldMiscompileVersionValueByteCount:
		if isNote {
			return "to avoid the potential miscompilation, do not mix numbers and strings within a value", true
		}
		return "the byte count of this value would be miscompiled by the Win32 RC compiler", true
	case diag.SynNumberExpressionAsFilename:
		if isNote {
			return fmt.Sprintf("the Win32 RC compiler would evaluate this number expression as the filename '%s'", tok), true
		}
		return "filename cannot be specified using a number expression, consider using a quoted string instead", true
	case diag.SynInvalidLanguageId:
		return noteless(isNote, fmt.Sprintf("invalid language id 0x%X", number(rec)))
	case diag.SynDuplicateOptionalStatement:
		return noteless(isNote, fmt.Sprintf("duplicate '%s' statement, only the last one takes effect", tok))
	case diag.SynMaxExpressionDepthExceeded:
		return noteless(isNote, fmt.Sprintf("number expression is nested too deeply (max is %d levels)", number(rec)))
	case diag.SynEmptyMenu:
		return noteless(isNote, fmt.Sprintf("empty menu of type '%s' not allowed", tok))
	case diag.SynRcCouldMiscompileControlParams:
		if isNote {
			return "to avoid the potential miscompilation, specify the control class as a quoted string", true
		}
		return "the parameters of this control could be miscompiled by the Win32 RC compiler", true

	case diag.CmpStringTableIdAlreadyDefined:
		e, _ := rec.Extra.(diag.ExtraStringAndLanguage)
		if isNote {
			return fmt.Sprintf("previous definition of string table entry with id %d here", e.ID), true
		}
		return fmt.Sprintf("string table entry with id %d already defined for language 0x%04X", e.ID, e.Language), true
	case diag.CmpFontIdAlreadyDefined:
		switch rec.Severity {
		case diag.SevNote:
			return fmt.Sprintf("previous definition of font with id %d here", number(rec)), true
		case diag.SevError:
			return fmt.Sprintf("font with id %d already defined", number(rec)), true
		default:
			return fmt.Sprintf("skipped duplicate font with id %d", number(rec)), true
		}
	case diag.CmpControlIdAlreadyDefined:
		if isNote {
			return fmt.Sprintf("previous definition of control with id %d here", number(rec)), true
		}
		return fmt.Sprintf("control with id %d already defined for this dialog", number(rec)), true
	case diag.CmpFileOpenError:
		e, _ := rec.Extra.(diag.ExtraFileOpen)
		return noteless(isNote, fmt.Sprintf("unable to open file '%s': %s", store.String(e.Name), e.Err))
	case diag.CmpInvalidAcceleratorKey:
		e, _ := rec.Extra.(diag.ExtraAccelerator)
		return noteless(isNote, fmt.Sprintf("invalid accelerator key '%s': %s", tok, e.Err))
	case diag.CmpAcceleratorShiftOrControlWithoutVirtkey:
		return noteless(isNote, "SHIFT or CONTROL used without VIRTKEY")
	case diag.CmpIconReadError:
		e, _ := rec.Extra.(diag.ExtraFileOpen)
		return noteless(isNote, fmt.Sprintf("unable to read file '%s': %s", store.String(e.Name), e.Err))
	case diag.CmpIconDirAndResourceTypeMismatch:
		e, _ := rec.Extra.(diag.ExtraIconDir)
		return noteless(isNote, fmt.Sprintf("resource type '%s' does not match type '%s' specified in the file", e.Group.ResType(), otherGroup(e.Group).ResType()))
	case diag.CmpFormatNotSupportedInIconDir:
		e, _ := rec.Extra.(diag.ExtraIconDir)
		return noteless(isNote, fmt.Sprintf("%s within %s files is not supported", e.Format, e.Group.ResType()))
	case diag.CmpRcWouldErrorOnIconDir:
		e, _ := rec.Extra.(diag.ExtraIconDir)
		if isNote {
			return fmt.Sprintf("the %s data of the image at index %d is considered invalid by the Win32 RC compiler", e.Format, e.Index), true
		}
		return fmt.Sprintf("the Win32 RC compiler would error on image %d of this %s group", e.Index, e.Group), true
	case diag.CmpRcWouldErrorOnBitmapVersion:
		e, _ := rec.Extra.(diag.ExtraIconDir)
		return noteless(isNote, fmt.Sprintf("the Win32 RC compiler cannot compile this bitmap with a %s header", e.BitmapVersion))
	case diag.CmpRcWouldMiscompileBmpPalettePadding:
		if isNote {
			return fmt.Sprintf("%d missing palette bytes would be padded with zeroes", number(rec)), true
		}
		return "the color palette of this bitmap would be miscompiled by the Win32 RC compiler", true
	case diag.CmpBmpTooManyMissingPaletteBytes:
		if isNote {
			return "the Win32 RC compiler would erroneously pad out the missing bytes", true
		}
		return fmt.Sprintf("bitmap has %d missing color palette bytes", byteCount(rec, store)), true
	case diag.CmpBmpIgnoredPaletteBytes:
		return noteless(isNote, fmt.Sprintf("%d extra color palette bytes will be ignored", byteCount(rec, store)))
	case diag.CmpBmpIgnoredPixelData:
		return noteless(isNote, fmt.Sprintf("%d bytes of extra pixel data will be ignored", byteCount(rec, store)))
	case diag.CmpResourceHeaderSizeExceedsMaximum:
		return noteless(isNote, fmt.Sprintf("resource header size of %d bytes exceeds the maximum", number(rec)))
	case diag.CmpResourceDataSizeExceedsMaximum:
		return noteless(isNote, fmt.Sprintf("resource data size of %d bytes exceeds the maximum", number(rec)))
	case diag.CmpControlExtraDataSizeExceedsMaximum:
		return noteless(isNote, fmt.Sprintf("control extra data size of %d bytes exceeds the maximum", number(rec)))
	case diag.CmpVersionNodeSizeExceedsMaximum:
		return noteless(isNote, fmt.Sprintf("version node size of %d bytes exceeds the maximum", number(rec)))
	case diag.CmpDialogMenuIdWasUppercased:
		return noteless(isNote, "the dialog menu id was uppercased to match the Win32 RC compiler")
	case diag.CmpRcWouldMiscompileDialogMenuId:
		if isNote {
			return "to avoid the potential miscompilation, only specify the menu id as a number or a quoted string", true
		}
		return "the id of this menu would be miscompiled by the Win32 RC compiler", true
	case diag.CmpRcWouldMiscompileControlPadding:
		if isNote {
			return "to avoid the potential miscompilation, add one extra byte of data before this control", true
		}
		return "the padding before this control would be miscompiled by the Win32 RC compiler", true

	case diag.LitStringLiteralTooLong:
		return noteless(isNote, fmt.Sprintf("string literal too long (max is currently %d characters)", number(rec)))
	case diag.LitCodepointMiscompiledByRc:
		return noteless(isNote, fmt.Sprintf("codepoint U+%04X would be miscompiled by the Win32 RC compiler", number(rec)))
	case diag.LitCodepointSkippedByRc:
		return noteless(isNote, fmt.Sprintf("codepoint U+%04X would be skipped by the Win32 RC compiler", number(rec)))
	case diag.LitTabInStringLiteral:
		return noteless(isNote, "the tab character in this string literal would be expanded to a column position by the Win32 RC compiler")
	case diag.LitNumberLiteralOverflow:
		return noteless(isNote, fmt.Sprintf("number literal '%s' overflows, the value wraps around", tok))
	case diag.LitOctalEscapeOutOfRange:
		return noteless(isNote, fmt.Sprintf("octal escape in '%s' is out of range, the value wraps around", tok))
	case diag.LitHexEscapeMissingDigits:
		return noteless(isNote, fmt.Sprintf("hex escape without digits in '%s'", tok))

	case diag.GenInvalidCodePage:
		return noteless(isNote, fmt.Sprintf("invalid code page %d", number(rec)))
	case diag.GenUnsupportedCodePage:
		id := codepage.ID(number(rec))
		return noteless(isNote, fmt.Sprintf("unsupported code page '%s' (id=%d)", id, uint16(id)))
	case diag.GenFailedToWriteOutput:
		e, _ := rec.Extra.(diag.ExtraFileOpen)
		return noteless(isNote, fmt.Sprintf("unable to write output file '%s': %s", store.String(e.Name), e.Err))
	case diag.GenMissingIncludePath:
		e, _ := rec.Extra.(diag.ExtraFilename)
		return noteless(isNote, fmt.Sprintf("include path '%s' was not found", store.String(e.Name)))
	case diag.GenFileTooLarge:
		e, _ := rec.Extra.(diag.ExtraFilename)
		return noteless(isNote, fmt.Sprintf("file '%s' is too large", store.String(e.Name)))
	}
	return "", false
}

// noteless suppresses the note severity for kinds with no follow-up wording.
func noteless(isNote bool, msg string) (string, bool) {
	if isNote {
		return "", false
	}
	return msg, true
}

func number(rec diag.Record) uint32 {
	e, _ := rec.Extra.(diag.ExtraNumber)
	return e.Value
}

func byteCount(rec diag.Record, store *diag.Store) uint64 {
	e, _ := rec.Extra.(diag.ExtraByteCount)
	return store.Uint64(e.Bytes)
}

func otherGroup(g diag.IconGroup) diag.IconGroup {
	if g == diag.GroupIcon {
		return diag.GroupCursor
	}
	return diag.GroupIcon
}

// firstCodepoint decodes the first codepoint of the record's token.
func firstCodepoint(rec diag.Record, src []byte) uint32 {
	c, ok := rec.CodePage.CodepointAt(src, rec.Token.Start)
	if !ok {
		return 0
	}
	return uint32(c.Value)
}

// expectedTypesList joins the accepted construct names with "or".
func expectedTypesList(e diag.ExtraExpectedTypes) string {
	names := make([]string, 0, 6)
	if e.Number {
		names = append(names, "number")
	}
	if e.NumberExpression {
		names = append(names, "number expression")
	}
	if e.StringLiteral {
		names = append(names, "quoted string literal")
	}
	if e.Accelerator {
		names = append(names, "accelerator")
	}
	if e.ControlClass {
		names = append(names, "control class")
	}
	if e.FilenameString {
		names = append(names, "filename")
	}
	if len(names) == 0 {
		return "something else"
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// displayText runs already-extracted token text through the display filter so
// control bytes never leak into message lines.
func displayText(text string, cp codepage.ID) string {
	filtered, _ := buildDisplayLine([]byte(text), cp)
	return filtered
}
