package diag

import "rcdiag/internal/token"

// Shape discriminates the payload variants an Extra can take. Every Kind is
// statically bound to exactly one shape (see kindShapes); Store.Append
// enforces the binding so a kind can never be rendered against a payload it
// does not document.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeExpectedKind
	ShapeExpectedTypes
	ShapeNumber
	ShapeFileOpen
	ShapeAccelerator
	ShapeIconDir
	ShapeStringAndLanguage
	ShapeFilename
	ShapeByteCount
)

// Extra is the kind-specific payload of a diagnostic record. The legacy
// implementation packed all of these into one 32-bit overlay; here each
// variant is its own type so the kind/payload pairing is checked by
// construction instead of by convention.
type Extra interface {
	Shape() Shape
}

// ExtraNone is the payload of kinds that only need the token.
type ExtraNone struct{}

func (ExtraNone) Shape() Shape { return ShapeNone }

// ExtraExpectedKind names the single token kind the parser expected.
type ExtraExpectedKind struct {
	Kind token.Kind
}

func (ExtraExpectedKind) Shape() Shape { return ShapeExpectedKind }

// ExtraExpectedTypes names the set of constructs the parser would have
// accepted. At least one field must be set.
type ExtraExpectedTypes struct {
	Number           bool
	NumberExpression bool
	StringLiteral    bool
	Accelerator      bool
	ControlClass     bool
	FilenameString   bool
}

func (ExtraExpectedTypes) Shape() Shape { return ShapeExpectedTypes }

// ExtraNumber carries one numeric value: an id, a limit, a codepoint, a code
// page, depending on the kind.
type ExtraNumber struct {
	Value uint32
}

func (ExtraNumber) Shape() Shape { return ShapeNumber }

// FileOpenErrorKind classifies why opening a file failed. The legacy packed
// layout gave this enum 3 bits, which is what derives StringIndexBits.
type FileOpenErrorKind uint8

const (
	FileOpenNotFound FileOpenErrorKind = iota
	FileOpenAccessDenied
	FileOpenIsDirectory
	FileOpenTooManyOpenFiles
	FileOpenNameTooLong
	FileOpenReadFailure
	FileOpenUnknown
)

func (k FileOpenErrorKind) String() string {
	switch k {
	case FileOpenNotFound:
		return "file not found"
	case FileOpenAccessDenied:
		return "access denied"
	case FileOpenIsDirectory:
		return "path is a directory"
	case FileOpenTooManyOpenFiles:
		return "too many open files"
	case FileOpenNameTooLong:
		return "name too long"
	case FileOpenReadFailure:
		return "read failure"
	}
	return "unexpected error"
}

// ExtraFileOpen describes a failed file open: why, and which file (by string
// table index).
type ExtraFileOpen struct {
	Err  FileOpenErrorKind
	Name StringIndex
}

func (ExtraFileOpen) Shape() Shape { return ShapeFileOpen }

// AcceleratorErrorKind classifies an invalid accelerator key.
type AcceleratorErrorKind uint8

const (
	AccelInvalidControlChar AcceleratorErrorKind = iota
	AccelEmptyKey
	AccelKeyTooLong
	AccelNonASCIIControlChar
	AccelInvalidCaretCombination
	AccelKeyOutOfRange
)

func (k AcceleratorErrorKind) String() string {
	switch k {
	case AccelInvalidControlChar:
		return "control character in key string"
	case AccelEmptyKey:
		return "empty key string"
	case AccelKeyTooLong:
		return "key string too long, max is 2 characters"
	case AccelNonASCIIControlChar:
		return "non-ASCII codepoint after '^'"
	case AccelInvalidCaretCombination:
		return "invalid '^' combination"
	case AccelKeyOutOfRange:
		return "key value out of range"
	}
	return "invalid key"
}

// ExtraAccelerator explains why an ACCELERATORS key is invalid.
type ExtraAccelerator struct {
	Err AcceleratorErrorKind
}

func (ExtraAccelerator) Shape() Shape { return ShapeAccelerator }

// IconGroup distinguishes ICON and CURSOR group resources.
type IconGroup uint8

const (
	GroupIcon IconGroup = iota
	GroupCursor
)

func (g IconGroup) String() string {
	if g == GroupCursor {
		return "cursor"
	}
	return "icon"
}

// ResType returns the resource type keyword for the group.
func (g IconGroup) ResType() string {
	if g == GroupCursor {
		return "CURSOR"
	}
	return "ICON"
}

// ImageFormat is the detected encoding of one image within an icon/cursor
// group file.
type ImageFormat uint8

const (
	FormatDIB ImageFormat = iota
	FormatPNG
	FormatRIFF
)

func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatRIFF:
		return "RIFF"
	}
	return "DIB"
}

// BitmapVersion is the DIB header version of an embedded bitmap.
type BitmapVersion uint8

const (
	BitmapVersionUnknown BitmapVersion = iota
	BitmapVersionCore
	BitmapVersionInfo
	BitmapVersionV2
	BitmapVersionV3
	BitmapVersionV4
	BitmapVersionV5
)

func (v BitmapVersion) String() string {
	switch v {
	case BitmapVersionCore:
		return "BITMAPCOREHEADER"
	case BitmapVersionInfo:
		return "BITMAPINFOHEADER"
	case BitmapVersionV2:
		return "BITMAPV2INFOHEADER"
	case BitmapVersionV3:
		return "BITMAPV3INFOHEADER"
	case BitmapVersionV4:
		return "BITMAPV4HEADER"
	case BitmapVersionV5:
		return "BITMAPV5HEADER"
	}
	return "unknown"
}

// ExtraIconDir carries the context of an icon/cursor group diagnostic: which
// group type, the offending image's format, its index within the group, and
// the bitmap header version when relevant.
type ExtraIconDir struct {
	Group         IconGroup
	Format        ImageFormat
	Index         uint16
	BitmapVersion BitmapVersion
}

func (ExtraIconDir) Shape() Shape { return ShapeIconDir }

// ExtraStringAndLanguage carries a STRINGTABLE entry id plus the language it
// was defined for.
type ExtraStringAndLanguage struct {
	ID       uint16
	Language uint16
}

func (ExtraStringAndLanguage) Shape() Shape { return ShapeStringAndLanguage }

// ExtraFilename references a file name registered in the string table.
type ExtraFilename struct {
	Name StringIndex
}

func (ExtraFilename) Shape() Shape { return ShapeFilename }

// ExtraByteCount references a string table entry holding a 64-bit count as
// 8 raw little-endian bytes (counts can exceed the 32 bits a packed payload
// would allow).
type ExtraByteCount struct {
	Bytes StringIndex
}

func (ExtraByteCount) Shape() Shape { return ShapeByteCount }

// kindShapes binds every Kind to the one Extra shape it documents.
var kindShapes = map[Kind]Shape{
	LexUnfinishedStringLiteral:           ShapeNone,
	LexUnfinishedBlockComment:            ShapeNone,
	LexIllegalByte:                       ShapeNone,
	LexIllegalByteOutsideStrings:         ShapeNone,
	LexIllegalCodepointOutsideStrings:    ShapeNone,
	LexIllegalByteOrderMark:              ShapeNone,
	LexIllegalPrivateUseCharacter:        ShapeNone,
	LexFoundCStyleEscapedQuote:           ShapeNone,
	LexCodePagePragmaMissingLeftParen:    ShapeNone,
	LexCodePagePragmaMissingRightParen:   ShapeNone,
	LexCodePagePragmaInvalidCodePage:     ShapeNone,
	LexCodePagePragmaNotInteger:          ShapeNone,
	LexCodePagePragmaOverflow:            ShapeNone,
	LexCodePagePragmaUnsupportedCodePage: ShapeNumber,
	LexCodePagePragmaInIncludedFile:      ShapeNone,
	LexInvalidDigitInNumberLiteral:       ShapeNone,
	LexNumberWithExponent:                ShapeNone,

	SynExpectedToken:                          ShapeExpectedKind,
	SynExpectedSomethingElse:                  ShapeExpectedTypes,
	SynUnfinishedRawDataBlock:                 ShapeNone,
	SynUnfinishedStringTableBlock:             ShapeNone,
	SynResourceTypeCantUseRawData:             ShapeNone,
	SynIdMustBeOrdinal:                        ShapeNone,
	SynNameOrIdNotAllowed:                     ShapeNone,
	SynStringResourceAsNumericType:            ShapeNone,
	SynAsciiCharacterNotEquivalent:            ShapeNone,
	SynAcceleratorTypeRequired:                ShapeNone,
	SynRcWouldMiscompileVersionValuePadding:   ShapeNone,
	SynRcWouldMiscompileVersionValueByteCount: ShapeNone,
	SynNumberExpressionAsFilename:             ShapeNone,
	SynInvalidLanguageId:                      ShapeNumber,
	SynDuplicateOptionalStatement:             ShapeNone,
	SynMaxExpressionDepthExceeded:             ShapeNumber,
	SynEmptyMenu:                              ShapeNone,
	SynRcCouldMiscompileControlParams:         ShapeNone,

	CmpStringTableIdAlreadyDefined:             ShapeStringAndLanguage,
	CmpFontIdAlreadyDefined:                    ShapeNumber,
	CmpControlIdAlreadyDefined:                 ShapeNumber,
	CmpFileOpenError:                           ShapeFileOpen,
	CmpInvalidAcceleratorKey:                   ShapeAccelerator,
	CmpAcceleratorShiftOrControlWithoutVirtkey: ShapeNone,
	CmpIconReadError:                           ShapeFileOpen,
	CmpIconDirAndResourceTypeMismatch:          ShapeIconDir,
	CmpFormatNotSupportedInIconDir:             ShapeIconDir,
	CmpRcWouldErrorOnIconDir:                   ShapeIconDir,
	CmpRcWouldErrorOnBitmapVersion:             ShapeIconDir,
	CmpRcWouldMiscompileBmpPalettePadding:      ShapeNumber,
	CmpBmpTooManyMissingPaletteBytes:           ShapeByteCount,
	CmpBmpIgnoredPaletteBytes:                  ShapeByteCount,
	CmpBmpIgnoredPixelData:                     ShapeByteCount,
	CmpResourceHeaderSizeExceedsMaximum:        ShapeNumber,
	CmpResourceDataSizeExceedsMaximum:          ShapeNumber,
	CmpControlExtraDataSizeExceedsMaximum:      ShapeNumber,
	CmpVersionNodeSizeExceedsMaximum:           ShapeNumber,
	CmpDialogMenuIdWasUppercased:               ShapeNone,
	CmpRcWouldMiscompileDialogMenuId:           ShapeNone,
	CmpRcWouldMiscompileControlPadding:         ShapeNone,

	LitStringLiteralTooLong:     ShapeNumber,
	LitCodepointMiscompiledByRc: ShapeNumber,
	LitCodepointSkippedByRc:     ShapeNumber,
	LitTabInStringLiteral:       ShapeNone,
	LitNumberLiteralOverflow:    ShapeNone,
	LitOctalEscapeOutOfRange:    ShapeNone,
	LitHexEscapeMissingDigits:   ShapeNone,

	GenInvalidCodePage:     ShapeNumber,
	GenUnsupportedCodePage: ShapeNumber,
	GenFailedToWriteOutput: ShapeFileOpen,
	GenMissingIncludePath:  ShapeFilename,
	GenFileTooLarge:        ShapeFilename,
}

// ShapeForKind returns the Extra shape the kind documents.
func ShapeForKind(k Kind) (Shape, bool) {
	s, ok := kindShapes[k]
	return s, ok
}
