package gifdecoder

// Header names which GIF variant a stream declared, per spec.md §3/§6.
type Header string

const (
	HeaderGIF87a Header = "GIF87a"
	HeaderGIF89a Header = "GIF89a"
)

// Color is one RGB palette entry.
type Color struct {
	R, G, B uint8
}

// Palette is an ordered sequence of RGB triples whose length is always a
// power of two in {2,4,...,256}, per spec.md §3.
type Palette []Color

// At returns the color at index i. The caller is responsible for bounds —
// decoded index streams are validated against palette length only by the
// compositor (spec.md §7's PaletteIndexOutOfRange is a compositor-only
// error).
func (p Palette) At(i uint8) Color { return p[i] }

// LogicalScreenDescriptor is the canvas header, spec.md §4.4/§4.6.
type LogicalScreenDescriptor struct {
	Width, Height         uint16
	GlobalColorTableFlag  bool
	ColorResolution       uint8 // raw 3-bit value, 0..7
	SortFlag              bool
	GlobalColorTableSize  uint8 // raw 3-bit exponent; table length = 2^(size+1)
	BackgroundColorIndex  uint8
	PixelAspectRatio      uint8
}

// DisposalMethod is the GCE-encoded hint for what the compositor should do
// with a frame's pixels before drawing the next one, spec.md §4.4.
type DisposalMethod uint8

const (
	DisposalNone DisposalMethod = iota
	DisposalKeep
	DisposalRestoreBackground
	DisposalRestorePrevious
)

// GraphicControlExtension is the per-frame animation metadata preceding an
// image, spec.md §4.6.
type GraphicControlExtension struct {
	Disposal          DisposalMethod
	UserInputFlag     bool
	TransparentFlag   bool
	DelayTime         uint16 // hundredths of a second
	TransparentColorIndex uint8
}

// ApplicationExtension carries an 11-byte identifier/auth-code header plus
// its raw sub-blocked application data, spec.md §4.6/§6.
type ApplicationExtension struct {
	Identifier         string // first 8 bytes
	AuthenticationCode string // last 3 bytes
	Data               []byte
}

// ExtensionKind discriminates the Extension sum type, spec.md §9.
type ExtensionKind uint8

const (
	ExtensionKindGraphicControl ExtensionKind = iota
	ExtensionKindComment
	ExtensionKindPlainText
	ExtensionKindApplication
)

// Extension is a closed tagged union over the four 0x21 sub-types the
// grammar in spec.md §4.6 recognizes. Exactly one of the payload fields is
// meaningful, selected by Kind — dispatch by tag, not by dynamic type, per
// spec.md §9.
type Extension struct {
	Kind ExtensionKind

	GraphicControl *GraphicControlExtension
	Comment        string // concatenated UTF-8 sub-block payload
	PlainTextData  []byte // concatenated sub-blocked text, returned raw per spec.md's Open Question
	PlainTextHeader []byte // the fixed 12-byte header, kept separately from PlainTextData
	Application    *ApplicationExtension
}

// ImageDescriptor places and sizes one frame on the canvas, spec.md §3/§4.4.
type ImageDescriptor struct {
	Left, Top     uint16
	Width, Height uint16
	LocalColorTableFlag bool
	InterlaceFlag       bool
	SortFlag            bool
	LocalColorTableSize uint8 // raw 3-bit exponent
}

// Frame owns one image's placement, optional local palette, decoded index
// stream, and the extensions that preceded it, spec.md §3/§6.
type Frame struct {
	Descriptor    ImageDescriptor
	LocalPalette  Palette // nil when ImageDescriptor.LocalColorTableFlag is false
	Indices       []byte  // length == Descriptor.Width*Descriptor.Height when not interlaced
	Extensions    []Extension
	GraphicControl *GraphicControlExtension // convenience: the GCE among Extensions, if any
}

// GIFFile is the fully parsed result, spec.md §3/§6.
type GIFFile struct {
	Header                  Header
	LogicalScreenDescriptor LogicalScreenDescriptor
	GlobalPalette           Palette // nil when no GCT was present
	Frames                  []Frame

	// Comments and ApplicationExtensions collect every Comment/Application
	// extension in the stream, including those that are also recorded in the
	// following frame's Extensions, and
	// LoopCount decodes a NETSCAPE2.0 application extension when present.
	// These supplement spec.md's distilled model with detail the GIF89a
	// format and the teacher's own writeNetscapeExt method always carry.
	Comments             []string
	ApplicationExtensions []ApplicationExtension
	LoopCount            *int
}
