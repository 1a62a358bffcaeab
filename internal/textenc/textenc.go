// Package textenc resolves the character encoding of byte-oriented table
// sources and builds decoding readers over them.
package textenc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffLen is how many bytes of the source are inspected for detection.
const sniffLen = 1024

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Lookup maps a user-supplied encoding label (e.g. "utf-8", "shift_jis",
// "windows-1251") to its encoding.
func Lookup(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", label)
	}
	return enc, nil
}

// Resolve determines the encoding to decode r with. A non-empty label is
// used verbatim. Otherwise the first bytes of r are inspected: a byte-order
// mark wins, then heuristic byte analysis, with UTF-8 as the fallback when
// detection is inconclusive. The returned reader replays the inspected
// bytes; callers must continue reading from it, not from r.
func Resolve(r io.Reader, label string) (encoding.Encoding, io.Reader, error) {
	if label != "" {
		enc, err := Lookup(label)
		if err != nil {
			return nil, nil, err
		}
		return enc, r, nil
	}

	br := bufio.NewReaderSize(r, sniffLen)
	peek, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, nil, err
	}

	if enc := detectBOM(peek); enc != nil {
		return enc, br, nil
	}

	enc, _, certain := charset.DetermineEncoding(peek, "")
	if certain {
		return enc, br, nil
	}
	if utf8.Valid(peek) {
		return unicode.UTF8, br, nil
	}
	return enc, br, nil
}

func detectBOM(b []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return unicode.UTF8BOM
	case bytes.HasPrefix(b, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case bytes.HasPrefix(b, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	}
	return nil
}

// NewReader returns a reader that decodes r from enc into UTF-8. For UTF-8
// sources the stream is validated strictly so undecodable bytes fail the
// read instead of being replaced.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == unicode.UTF8 || enc == unicode.UTF8BOM {
		return transform.NewReader(r, transform.Chain(encoding.UTF8Validator, enc.NewDecoder()))
	}
	return transform.NewReader(r, enc.NewDecoder())
}
