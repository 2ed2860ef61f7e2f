package gifdecoder

/*
parser.go is the structural parser, spec.md §4.6. It is a hand-written
recursive-descent scanner over the grammar:

	gif       = header LSD [GCT] body trailer EOF
	header    = "GIF87a" | "GIF89a"
	LSD       = u16 u16 packed u8 u8
	GCT       = Pixel{2^(size+1)}
	body      = (extension | frame)*
	extension = 0x21 label payload
	frame     = extension* imageDescriptor [LCT] u8(minCodeSize) dataBlock
	trailer   = 0x3B

The grammar is LL(1) on one tag byte (spec.md §4.6): a single peek at 0x21
vs 0x2C vs 0x3B is enough to pick the next production, exactly as the
teacher's AddFrame/Finish call sequence commits to "another frame" vs "done"
without lookahead.
*/

// ParseOptions controls strictness for the handful of spec.md §7 decisions
// that have both a strict and a lenient reading.
type ParseOptions struct {
	// Strict rejects a reserved (4-7) GCE disposal method instead of
	// coercing it to DisposalNone, per spec.md §7's two listed policies.
	Strict bool
}

// Decode parses a complete GIF byte stream with lenient defaults.
func Decode(data []byte) (*GIFFile, error) {
	return DecodeWithOptions(data, ParseOptions{})
}

// DecodeWithOptions parses a complete GIF byte stream, spec.md §4.6/§6.
func DecodeWithOptions(data []byte, opts ParseOptions) (*GIFFile, error) {
	c := newCursor(data)

	header, err := parseHeader(c)
	if err != nil {
		return nil, err
	}

	lsd, err := parseLSD(c)
	if err != nil {
		return nil, err
	}

	var global Palette
	if lsd.GlobalColorTableFlag {
		pos := c.offset()
		global, err = readPalette(c, colorTableLength(lsd.GlobalColorTableSize))
		if err != nil {
			return nil, newParseError(pos, err)
		}
	}

	gif := &GIFFile{
		Header:                  header,
		LogicalScreenDescriptor: *lsd,
		GlobalPalette:           global,
	}

	var pending []Extension
	var pendingGCE *GraphicControlExtension

	for {
		tagPos := c.offset()
		tag, err := c.u8()
		if err != nil {
			return nil, newParseError(tagPos, Truncated)
		}

		switch tag {
		case 0x3B: // trailer
			return gif, nil

		case 0x21: // extension
			ext, err := parseExtension(c, opts)
			if err != nil {
				return nil, err
			}
			switch ext.Kind {
			case ExtensionKindGraphicControl:
				pendingGCE = ext.GraphicControl
			case ExtensionKindComment:
				gif.Comments = append(gif.Comments, ext.Comment)
			case ExtensionKindApplication:
				gif.ApplicationExtensions = append(gif.ApplicationExtensions, *ext.Application)
				if n, ok := netscapeLoopCount(ext.Application); ok {
					gif.LoopCount = &n
				}
			}
			pending = append(pending, ext)

		case 0x2C: // frame
			frame, err := parseFrame(c)
			if err != nil {
				return nil, err
			}
			frame.Extensions = pending
			frame.GraphicControl = pendingGCE
			pending = nil
			pendingGCE = nil
			gif.Frames = append(gif.Frames, frame)

		default:
			return nil, newParseError(tagPos, &UnexpectedByteError{Expected: 0x21, Got: tag, Pos: tagPos})
		}
	}
}

func parseHeader(c *cursor) (Header, error) {
	pos := c.offset()
	b, err := c.take(6)
	if err != nil {
		return "", newParseError(pos, Truncated)
	}
	switch s := string(b); s {
	case string(HeaderGIF87a):
		return HeaderGIF87a, nil
	case string(HeaderGIF89a):
		return HeaderGIF89a, nil
	default:
		return "", newParseError(pos, &InvalidMagicError{Got: s})
	}
}

func parseLSD(c *cursor) (*LogicalScreenDescriptor, error) {
	pos := c.offset()
	w, err := c.u16le()
	if err != nil {
		return nil, newParseError(pos, Truncated)
	}
	h, err := c.u16le()
	if err != nil {
		return nil, newParseError(pos, Truncated)
	}
	packedByte, err := c.u8()
	if err != nil {
		return nil, newParseError(pos, Truncated)
	}
	bg, err := c.u8()
	if err != nil {
		return nil, newParseError(pos, Truncated)
	}
	aspect, err := c.u8()
	if err != nil {
		return nil, newParseError(pos, Truncated)
	}
	packed := parseLSDPacked(packedByte)
	return &LogicalScreenDescriptor{
		Width:                w,
		Height:               h,
		GlobalColorTableFlag: packed.globalColorTableFlag,
		ColorResolution:      packed.colorResolution,
		SortFlag:             packed.sortFlag,
		GlobalColorTableSize: packed.globalColorTableSize,
		BackgroundColorIndex: bg,
		PixelAspectRatio:     aspect,
	}, nil
}

// parseExtension reads the label and payload of a 0x21-introduced extension;
// the caller has already consumed the 0x21 introducer.
func parseExtension(c *cursor, opts ParseOptions) (Extension, error) {
	labelPos := c.offset()
	label, err := c.u8()
	if err != nil {
		return Extension{}, newParseError(labelPos, Truncated)
	}
	switch label {
	case 0xF9:
		return parseGCE(c, opts)
	case 0x01:
		return parsePlainText(c)
	case 0xFE:
		return parseComment(c)
	case 0xFF:
		return parseApplication(c)
	default:
		return Extension{}, newParseError(labelPos, &UnsupportedExtensionError{Label: label})
	}
}

func parseGCE(c *cursor, opts ParseOptions) (Extension, error) {
	sizePos := c.offset()
	size, err := c.u8()
	if err != nil {
		return Extension{}, newParseError(sizePos, Truncated)
	}
	if size != 4 {
		return Extension{}, newParseError(sizePos, &UnexpectedByteError{Expected: 4, Got: size, Pos: sizePos})
	}
	packedPos := c.offset()
	packedByte, err := c.u8()
	if err != nil {
		return Extension{}, newParseError(packedPos, Truncated)
	}
	delay, err := c.u16le()
	if err != nil {
		return Extension{}, newParseError(packedPos, Truncated)
	}
	transIdx, err := c.u8()
	if err != nil {
		return Extension{}, newParseError(packedPos, Truncated)
	}
	termPos := c.offset()
	term, err := c.u8()
	if err != nil {
		return Extension{}, newParseError(termPos, Truncated)
	}
	if term != 0 {
		return Extension{}, newParseError(termPos, &UnexpectedByteError{Expected: 0, Got: term, Pos: termPos})
	}

	packed := parseGCEPacked(packedByte)
	disposal := DisposalMethod(packed.disposalMethod)
	if packed.disposalMethod >= 4 {
		if opts.Strict {
			return Extension{}, newParseError(packedPos, &InvalidDisposalMethodError{Value: int(packed.disposalMethod)})
		}
		disposal = DisposalNone
	}

	return Extension{
		Kind: ExtensionKindGraphicControl,
		GraphicControl: &GraphicControlExtension{
			Disposal:              disposal,
			UserInputFlag:         packed.userInputFlag,
			TransparentFlag:       packed.transparentFlag,
			DelayTime:             delay,
			TransparentColorIndex: transIdx,
		},
	}, nil
}

func parsePlainText(c *cursor) (Extension, error) {
	sizePos := c.offset()
	size, err := c.u8()
	if err != nil {
		return Extension{}, newParseError(sizePos, Truncated)
	}
	if size != 12 {
		return Extension{}, newParseError(sizePos, &UnexpectedByteError{Expected: 12, Got: size, Pos: sizePos})
	}
	header, err := c.take(12)
	if err != nil {
		return Extension{}, newParseError(sizePos, Truncated)
	}
	headerCopy := append([]byte(nil), header...)
	dataPos := c.offset()
	data, err := readDataBlocks(c)
	if err != nil {
		return Extension{}, newParseError(dataPos, err)
	}
	return Extension{Kind: ExtensionKindPlainText, PlainTextHeader: headerCopy, PlainTextData: data}, nil
}

func parseComment(c *cursor) (Extension, error) {
	pos := c.offset()
	data, err := readDataBlocks(c)
	if err != nil {
		return Extension{}, newParseError(pos, err)
	}
	return Extension{Kind: ExtensionKindComment, Comment: string(data)}, nil
}

func parseApplication(c *cursor) (Extension, error) {
	sizePos := c.offset()
	size, err := c.u8()
	if err != nil {
		return Extension{}, newParseError(sizePos, Truncated)
	}
	if size != 11 {
		return Extension{}, newParseError(sizePos, &UnexpectedByteError{Expected: 11, Got: size, Pos: sizePos})
	}
	id, err := c.take(8)
	if err != nil {
		return Extension{}, newParseError(sizePos, Truncated)
	}
	auth, err := c.take(3)
	if err != nil {
		return Extension{}, newParseError(sizePos, Truncated)
	}
	dataPos := c.offset()
	data, err := readDataBlocks(c)
	if err != nil {
		return Extension{}, newParseError(dataPos, err)
	}
	return Extension{
		Kind: ExtensionKindApplication,
		Application: &ApplicationExtension{
			Identifier:         string(id),
			AuthenticationCode: string(auth),
			Data:               data,
		},
	}, nil
}

// parseFrame reads an Image Descriptor, optional LCT, and LZW-compressed
// image data; the caller has already consumed the 0x2C separator.
func parseFrame(c *cursor) (Frame, error) {
	pos := c.offset()
	left, err := c.u16le()
	if err != nil {
		return Frame{}, newParseError(pos, Truncated)
	}
	top, err := c.u16le()
	if err != nil {
		return Frame{}, newParseError(pos, Truncated)
	}
	width, err := c.u16le()
	if err != nil {
		return Frame{}, newParseError(pos, Truncated)
	}
	height, err := c.u16le()
	if err != nil {
		return Frame{}, newParseError(pos, Truncated)
	}
	packedPos := c.offset()
	packedByte, err := c.u8()
	if err != nil {
		return Frame{}, newParseError(packedPos, Truncated)
	}
	packed := parseImageDescPacked(packedByte)

	desc := ImageDescriptor{
		Left: left, Top: top, Width: width, Height: height,
		LocalColorTableFlag: packed.localColorTableFlag,
		InterlaceFlag:       packed.interlaceFlag,
		SortFlag:            packed.sortFlag,
		LocalColorTableSize: packed.localColorTableSize,
	}

	var local Palette
	if packed.localColorTableFlag {
		lctPos := c.offset()
		local, err = readPalette(c, colorTableLength(packed.localColorTableSize))
		if err != nil {
			return Frame{}, newParseError(lctPos, err)
		}
	}

	minCodeSizePos := c.offset()
	minCodeSize, err := c.u8()
	if err != nil {
		return Frame{}, newParseError(minCodeSizePos, Truncated)
	}

	compressed, err := readDataBlocks(c)
	if err != nil {
		return Frame{}, newParseError(minCodeSizePos, err)
	}

	indices, err := decompress(compressed, minCodeSize)
	if err != nil {
		return Frame{}, newParseError(minCodeSizePos, err)
	}

	return Frame{Descriptor: desc, LocalPalette: local, Indices: indices}, nil
}

// netscapeLoopCount decodes a NETSCAPE2.0 application extension's loop
// sub-block, mirroring the teacher's writeNetscapeExt in reverse: identifier
// "NETSCAPE", auth code "2.0", then a 3-byte sub-block {0x01, loopLo, loopHi}.
func netscapeLoopCount(app *ApplicationExtension) (int, bool) {
	if app.Identifier != "NETSCAPE" || app.AuthenticationCode != "2.0" {
		return 0, false
	}
	if len(app.Data) < 3 || app.Data[0] != 1 {
		return 0, false
	}
	return int(app.Data[1]) | int(app.Data[2])<<8, true
}
