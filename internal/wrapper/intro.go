package wrapper

// Intro returns the prologue that must precede the bundle body for format.
// Every prologue except the empty ES one ends in "\n\n". On error no text is
// returned.
func Intro(format Format, opts Options, imports []Import) (string, error) {
	switch format {
	case FormatES:
		return "", nil
	case FormatAMD:
		return amdIntro(opts, imports), nil
	case FormatCJS:
		return cjsIntro(imports), nil
	case FormatIIFE:
		return iifeIntro(opts, imports)
	case FormatUMD:
		return umdIntro(opts, imports)
	case FormatEval:
		return evalIntro(imports), nil
	default:
		return "", &UnsupportedFormatError{Tag: format.String()}
	}
}
