// Package encoding normalizes uploaded text files to UTF-8. Spreadsheet
// exports from government systems arrive as UTF-8, UTF-16 or Windows-1252
// depending on the tool that wrote them.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

// Charset names the encoding that was detected.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO88599    Charset = "ISO-8859-9"
)

var boms = []struct {
	prefix  []byte
	charset Charset
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// decoders for everything but UTF-8, which passes through untouched.
var decoders = map[Charset]encoding.Encoding{
	UTF16LE:     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	UTF16BE:     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	Windows1252: charmap.Windows1252,
	ISO88599:    charmap.ISO8859_9,
}

// NewUTF8Reader returns a reader that yields r as UTF-8 along with the
// charset it was read as. A byte order mark decides first, then UTF-8
// validity of the first few KB, then chardet. Anything unrecognized is read
// as Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	buf, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	for _, bom := range boms {
		if !bytes.HasPrefix(buf, bom.prefix) {
			continue
		}

		if bom.charset == UTF8 {
			_, _ = br.Discard(len(bom.prefix))
			return br, UTF8, nil
		}

		return wrap(br, bom.charset), bom.charset, nil
	}

	if validUTF8Prefix(buf) {
		return br, UTF8, nil
	}

	charset := Windows1252

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		switch result.Charset {
		case "UTF-8":
			charset = UTF8
		case "UTF-16LE":
			charset = UTF16LE
		case "UTF-16BE":
			charset = UTF16BE
		case "ISO-8859-9":
			charset = ISO88599
		}
	}

	return wrap(br, charset), charset, nil
}

func wrap(r io.Reader, charset Charset) io.Reader {
	dec, ok := decoders[charset]
	if !ok {
		return r
	}

	return transform.NewReader(r, dec.NewDecoder())
}

// validUTF8Prefix reports whether buf is UTF-8, tolerating a multi-byte
// sequence cut off at the end of the sniffed window.
func validUTF8Prefix(buf []byte) bool {
	if utf8.Valid(buf) {
		return true
	}

	for i := 1; i < utf8.UTFMax && i < len(buf); i++ {
		if utf8.Valid(buf[:len(buf)-i]) && !utf8.FullRune(buf[len(buf)-i:]) {
			return true
		}
	}

	return false
}
