package console

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	rcd = utf8.RuneError // decoding replacement character
	rce = '?'            // encoding replacement character
)

type charset struct{}

// ASCII is the 7-bit console character set. Encoding maps every rune
// outside it to '?', decoding maps bytes with the high bit set to U+FFFD.
var ASCII encoding.Encoding = &charset{}

func (m *charset) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{}}
}

func (m *charset) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{}}
}

type decoder struct{ transform.NopResetter }

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		r := rune(c)
		if c >= utf8.RuneSelf {
			r = rcd
		}
		if utf8.RuneLen(r) > len(dst)-nDst {
			err = transform.ErrShortDst
			return
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return
}

type encoder struct{ transform.NopResetter }

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			return
		}
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			return
		}
		if r < utf8.RuneSelf {
			dst[nDst] = byte(r)
		} else {
			dst[nDst] = rce
		}
		nDst++
		nSrc += size
	}
	return
}
