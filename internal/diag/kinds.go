package diag

import (
	"fmt"
	"sort"
)

// Kind identifies one diagnostic in the catalog. Numeric ranges group kinds
// by the stage that produces them: lexer 1xxx, parser 2xxx, compiler 3xxx,
// string/number literal handling 4xxx, general 5xxx.
type Kind uint16

const (
	UnknownKind Kind = 0

	// Lexer
	LexUnfinishedStringLiteral           Kind = 1001
	LexUnfinishedBlockComment            Kind = 1002
	LexIllegalByte                       Kind = 1003
	LexIllegalByteOutsideStrings         Kind = 1004
	LexIllegalCodepointOutsideStrings    Kind = 1005
	LexIllegalByteOrderMark              Kind = 1006
	LexIllegalPrivateUseCharacter        Kind = 1007
	LexFoundCStyleEscapedQuote           Kind = 1008
	LexCodePagePragmaMissingLeftParen    Kind = 1009
	LexCodePagePragmaMissingRightParen   Kind = 1010
	LexCodePagePragmaInvalidCodePage     Kind = 1011
	LexCodePagePragmaNotInteger          Kind = 1012
	LexCodePagePragmaOverflow            Kind = 1013
	LexCodePagePragmaUnsupportedCodePage Kind = 1014
	LexCodePagePragmaInIncludedFile      Kind = 1015
	LexInvalidDigitInNumberLiteral       Kind = 1016
	LexNumberWithExponent                Kind = 1017

	// Parser
	SynExpectedToken                      Kind = 2001
	SynExpectedSomethingElse              Kind = 2002
	SynUnfinishedRawDataBlock             Kind = 2003
	SynUnfinishedStringTableBlock         Kind = 2004
	SynResourceTypeCantUseRawData         Kind = 2005
	SynIdMustBeOrdinal                    Kind = 2006
	SynNameOrIdNotAllowed                 Kind = 2007
	SynStringResourceAsNumericType        Kind = 2008
	SynAsciiCharacterNotEquivalent        Kind = 2009
	SynAcceleratorTypeRequired            Kind = 2010
	SynRcWouldMiscompileVersionValuePadding   Kind = 2011
	SynRcWouldMiscompileVersionValueByteCount Kind = 2012
	SynNumberExpressionAsFilename         Kind = 2013
	SynInvalidLanguageId                  Kind = 2014
	SynDuplicateOptionalStatement         Kind = 2015
	SynMaxExpressionDepthExceeded         Kind = 2016
	SynEmptyMenu                          Kind = 2017
	SynRcCouldMiscompileControlParams     Kind = 2018

	// Compiler
	CmpStringTableIdAlreadyDefined      Kind = 3001
	CmpFontIdAlreadyDefined             Kind = 3002
	CmpControlIdAlreadyDefined          Kind = 3003
	CmpFileOpenError                    Kind = 3004
	CmpInvalidAcceleratorKey            Kind = 3005
	CmpAcceleratorShiftOrControlWithoutVirtkey Kind = 3006
	CmpIconReadError                    Kind = 3007
	CmpIconDirAndResourceTypeMismatch   Kind = 3008
	CmpFormatNotSupportedInIconDir      Kind = 3009
	CmpRcWouldErrorOnIconDir            Kind = 3010
	CmpRcWouldErrorOnBitmapVersion      Kind = 3011
	CmpRcWouldMiscompileBmpPalettePadding Kind = 3012
	CmpBmpTooManyMissingPaletteBytes    Kind = 3013
	CmpBmpIgnoredPaletteBytes           Kind = 3014
	CmpBmpIgnoredPixelData              Kind = 3015
	CmpResourceHeaderSizeExceedsMaximum Kind = 3016
	CmpResourceDataSizeExceedsMaximum   Kind = 3017
	CmpControlExtraDataSizeExceedsMaximum Kind = 3018
	CmpVersionNodeSizeExceedsMaximum    Kind = 3019
	CmpDialogMenuIdWasUppercased        Kind = 3020
	CmpRcWouldMiscompileDialogMenuId    Kind = 3021
	CmpRcWouldMiscompileControlPadding  Kind = 3022

	// Literals
	LitStringLiteralTooLong    Kind = 4001
	LitCodepointMiscompiledByRc Kind = 4002
	LitCodepointSkippedByRc    Kind = 4003
	LitTabInStringLiteral      Kind = 4004
	LitNumberLiteralOverflow   Kind = 4005
	LitOctalEscapeOutOfRange   Kind = 4006
	LitHexEscapeMissingDigits  Kind = 4007

	// General
	GenInvalidCodePage     Kind = 5001
	GenUnsupportedCodePage Kind = 5002
	GenFailedToWriteOutput Kind = 5003
	GenMissingIncludePath  Kind = 5004
	GenFileTooLarge        Kind = 5005
)

var kindTitles = map[Kind]string{
	UnknownKind: "Unknown diagnostic",

	LexUnfinishedStringLiteral:           "Unfinished string literal",
	LexUnfinishedBlockComment:            "Unfinished block comment",
	LexIllegalByte:                       "Byte is not allowed",
	LexIllegalByteOutsideStrings:         "Byte is not allowed outside string literals",
	LexIllegalCodepointOutsideStrings:    "Codepoint is not allowed outside string literals",
	LexIllegalByteOrderMark:              "Byte order mark is not allowed",
	LexIllegalPrivateUseCharacter:        "Private use character is not allowed",
	LexFoundCStyleEscapedQuote:           "C-style escaped quote in string literal",
	LexCodePagePragmaMissingLeftParen:    "Missing '(' in #pragma code_page",
	LexCodePagePragmaMissingRightParen:   "Missing ')' in #pragma code_page",
	LexCodePagePragmaInvalidCodePage:     "Invalid code page in #pragma code_page",
	LexCodePagePragmaNotInteger:          "Code page is not an integer",
	LexCodePagePragmaOverflow:            "Code page value overflows",
	LexCodePagePragmaUnsupportedCodePage: "Unsupported code page in #pragma code_page",
	LexCodePagePragmaInIncludedFile:      "#pragma code_page in included file",
	LexInvalidDigitInNumberLiteral:       "Invalid digit in number literal",
	LexNumberWithExponent:                "Number literal with exponent",

	SynExpectedToken:                          "Expected a different token",
	SynExpectedSomethingElse:                  "Expected a different construct",
	SynUnfinishedRawDataBlock:                 "Unfinished raw data block",
	SynUnfinishedStringTableBlock:             "Unfinished STRINGTABLE block",
	SynResourceTypeCantUseRawData:             "Resource type cannot use raw data",
	SynIdMustBeOrdinal:                        "Resource id must be an ordinal",
	SynNameOrIdNotAllowed:                     "Name or id not allowed here",
	SynStringResourceAsNumericType:            "STRINGTABLE resource with a numeric type",
	SynAsciiCharacterNotEquivalent:            "ASCII character is not equivalent under code page",
	SynAcceleratorTypeRequired:                "Accelerator type required",
	SynRcWouldMiscompileVersionValuePadding:   "Version value padding would be miscompiled",
	SynRcWouldMiscompileVersionValueByteCount: "Version value byte count would be miscompiled",
	SynNumberExpressionAsFilename:             "Number expression used as a filename",
	SynInvalidLanguageId:                      "Invalid language id",
	SynDuplicateOptionalStatement:             "Duplicate optional statement",
	SynMaxExpressionDepthExceeded:             "Number expression nested too deeply",
	SynEmptyMenu:                              "Empty menu not allowed",
	SynRcCouldMiscompileControlParams:         "Control parameters could be miscompiled",

	CmpStringTableIdAlreadyDefined:             "String table id already defined",
	CmpFontIdAlreadyDefined:                    "Font id already defined",
	CmpControlIdAlreadyDefined:                 "Control id already defined",
	CmpFileOpenError:                           "Unable to open file",
	CmpInvalidAcceleratorKey:                   "Invalid accelerator key",
	CmpAcceleratorShiftOrControlWithoutVirtkey: "SHIFT or CONTROL used without VIRTKEY",
	CmpIconReadError:                           "Unable to read icon or cursor file",
	CmpIconDirAndResourceTypeMismatch:          "Icon/cursor file does not match resource type",
	CmpFormatNotSupportedInIconDir:             "Image format not supported in icon/cursor group",
	CmpRcWouldErrorOnIconDir:                   "The Win32 RC compiler would reject this icon/cursor group",
	CmpRcWouldErrorOnBitmapVersion:             "The Win32 RC compiler would reject this bitmap header version",
	CmpRcWouldMiscompileBmpPalettePadding:      "Bitmap color palette padding would be miscompiled",
	CmpBmpTooManyMissingPaletteBytes:           "Bitmap is missing too many color palette bytes",
	CmpBmpIgnoredPaletteBytes:                  "Extra bitmap color palette bytes are ignored",
	CmpBmpIgnoredPixelData:                     "Extra bitmap pixel data is ignored",
	CmpResourceHeaderSizeExceedsMaximum:        "Resource header size exceeds maximum",
	CmpResourceDataSizeExceedsMaximum:          "Resource data size exceeds maximum",
	CmpControlExtraDataSizeExceedsMaximum:      "Control extra data size exceeds maximum",
	CmpVersionNodeSizeExceedsMaximum:           "Version node size exceeds maximum",
	CmpDialogMenuIdWasUppercased:               "Dialog menu id was uppercased",
	CmpRcWouldMiscompileDialogMenuId:           "Dialog menu id would be miscompiled",
	CmpRcWouldMiscompileControlPadding:         "Control padding would be miscompiled",

	LitStringLiteralTooLong:     "String literal too long",
	LitCodepointMiscompiledByRc: "Codepoint would be miscompiled by the Win32 RC compiler",
	LitCodepointSkippedByRc:     "Codepoint would be skipped by the Win32 RC compiler",
	LitTabInStringLiteral:       "Tab character in string literal",
	LitNumberLiteralOverflow:    "Number literal overflows",
	LitOctalEscapeOutOfRange:    "Octal escape out of range",
	LitHexEscapeMissingDigits:   "Hex escape without digits",

	GenInvalidCodePage:     "Invalid code page",
	GenUnsupportedCodePage: "Unsupported code page",
	GenFailedToWriteOutput: "Unable to write output file",
	GenMissingIncludePath:  "Include path not found",
	GenFileTooLarge:        "File too large",
}

// Group is the catalog section a Kind belongs to.
type Group uint8

const (
	GroupUnknown Group = iota
	GroupLexer
	GroupParser
	GroupCompiler
	GroupLiteral
	GroupGeneral
)

func (g Group) String() string {
	switch g {
	case GroupLexer:
		return "lexer"
	case GroupParser:
		return "parser"
	case GroupCompiler:
		return "compiler"
	case GroupLiteral:
		return "literal"
	case GroupGeneral:
		return "general"
	}
	return "unknown"
}

// GroupFromName parses a catalog group name as used by the CLI.
func GroupFromName(name string) (Group, bool) {
	switch name {
	case "lexer":
		return GroupLexer, true
	case "parser":
		return GroupParser, true
	case "compiler":
		return GroupCompiler, true
	case "literal":
		return GroupLiteral, true
	case "general":
		return GroupGeneral, true
	}
	return GroupUnknown, false
}

// Group returns the catalog section for the kind.
func (k Kind) Group() Group {
	switch ik := int(k); {
	case ik >= 1000 && ik < 2000:
		return GroupLexer
	case ik >= 2000 && ik < 3000:
		return GroupParser
	case ik >= 3000 && ik < 4000:
		return GroupCompiler
	case ik >= 4000 && ik < 5000:
		return GroupLiteral
	case ik >= 5000 && ik < 6000:
		return GroupGeneral
	}
	return GroupUnknown
}

func (k Kind) ID() string {
	switch ik := int(k); {
	case ik >= 1000 && ik < 2000:
		return fmt.Sprintf("LEX%04d", ik)
	case ik >= 2000 && ik < 3000:
		return fmt.Sprintf("SYN%04d", ik)
	case ik >= 3000 && ik < 4000:
		return fmt.Sprintf("CMP%04d", ik)
	case ik >= 4000 && ik < 5000:
		return fmt.Sprintf("LIT%04d", ik)
	case ik >= 5000 && ik < 6000:
		return fmt.Sprintf("GEN%04d", ik)
	}
	return "E0000"
}

func (k Kind) Title() string {
	title, ok := kindTitles[k]
	if !ok {
		return kindTitles[UnknownKind]
	}
	return title
}

func (k Kind) String() string {
	return fmt.Sprintf("[%s]: %s", k.ID(), k.Title())
}

// AllKinds returns every cataloged kind in ascending numeric order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(kindTitles))
	for k := range kindTitles {
		if k == UnknownKind {
			continue
		}
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// KindFromID resolves a catalog id like "CMP3002" back to its Kind.
func KindFromID(id string) (Kind, bool) {
	for k := range kindTitles {
		if k != UnknownKind && k.ID() == id {
			return k, true
		}
	}
	return UnknownKind, false
}
