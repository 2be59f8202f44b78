package source

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// normalize applies BOM removal, CRLF folding and the Latin-1 fallback in the
// order a log is expected to need them.
func normalize(content []byte) ([]byte, FileFlags) {
	flags := FileFlags(0)

	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	content, decoded := decodeLatin1(content)
	if decoded {
		flags |= FileDecodedLatin1
	}
	return content, flags
}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// decodeLatin1 reinterprets non-UTF-8 bytes as ISO 8859-1. TeX engines write
// their transcript in the input encoding of the document, so logs routinely
// carry Latin-1 bytes even on systems where everything else is UTF-8.
func decodeLatin1(content []byte) ([]byte, bool) {
	if utf8.Valid(content) {
		return content, false
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		// Latin-1 decoding cannot fail on arbitrary bytes; keep the input
		// as-is should the decoder ever change its mind.
		return content, false
	}
	return out, true
}

// buildLineIndex records the byte offset of every '\n' in content.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) // #nosec G115 -- i < len(content) <= max uint32 for any real log
		}
	}
	return out
}
