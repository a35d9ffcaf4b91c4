package ofx

import (
	"bytes"
	"io"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// headerScanLimit bounds how far into the stream the header block may
// extend. Anything past this is body.
const headerScanLimit = 10 * 1024

// Headers is the colon-delimited header block preceding the OFX body. Keys
// are stored uppercased in document order. A header whose literal value was
// NONE has a nil value.
type Headers struct {
	keys   []string
	values map[string]*string
}

// Len returns the number of headers.
func (h Headers) Len() int { return len(h.keys) }

// Keys returns the header keys in document order.
func (h Headers) Keys() []string {
	keys := make([]string, len(h.keys))
	copy(keys, h.keys)
	return keys
}

// Lookup returns the value for the given key, case-insensitively. The value
// is nil when the header was the literal NONE.
func (h Headers) Lookup(key string) (*string, bool) {
	v, ok := h.values[strings.ToUpper(key)]
	return v, ok
}

// Get returns the value for the given key, or "" when the header is absent
// or NONE.
func (h Headers) Get(key string) string {
	if v, ok := h.values[strings.ToUpper(key)]; ok && v != nil {
		return *v
	}
	return ""
}

func (h *Headers) set(key string, value *string) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if h.values == nil {
		h.values = make(map[string]*string)
	}
	if _, seen := h.values[key]; !seen {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// ParseHeaders reads the OFX header block from the start of r, leaving r
// positioned exactly where it was on entry. Only the first headerScanLimit
// bytes preceding the first '<' are considered.
func ParseHeaders(r io.ReadSeeker) (Headers, error) {
	var headers Headers

	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return headers, &UnsupportedInputError{Reason: "reader can not seek"}
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return headers, &UnsupportedInputError{Reason: "reader can not seek"}
	}
	prefix := make([]byte, headerScanLimit)
	n, err := io.ReadFull(r, prefix)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return headers, err
	}
	prefix = prefix[:n]
	if idx := bytes.IndexByte(prefix, '<'); idx != -1 {
		prefix = prefix[:idx]
	}
	// Institutions emit \r\n, \n and bare \r line endings, sometimes mixed
	// within one file.
	text := strings.ReplaceAll(string(prefix), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if headers.Len() > 0 {
				break
			}
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			break
		}
		value = strings.TrimSpace(value)
		if strings.EqualFold(value, "NONE") {
			headers.set(key, nil)
			continue
		}
		headers.set(key, &value)
	}
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return headers, err
	}
	glog.V(3).Infof("parsed %d headers", headers.Len())
	return headers, nil
}

var codePages = map[string]encoding.Encoding{
	"874":  charmap.Windows874,
	"1250": charmap.Windows1250,
	"1251": charmap.Windows1251,
	"1252": charmap.Windows1252,
	"1253": charmap.Windows1253,
	"1254": charmap.Windows1254,
	"1255": charmap.Windows1255,
	"1256": charmap.Windows1256,
	"1257": charmap.Windows1257,
	"1258": charmap.Windows1258,
}

// bodyEncoding resolves the character encoding declared by the
// ENCODING/CHARSET header pair. A nil return means the body is already
// UTF-8/ASCII and needs no transform. Unrecognized declarations fall back
// to Latin-1 so decoding can never fail.
func (h Headers) bodyEncoding() encoding.Encoding {
	enc := strings.ToUpper(h.Get("ENCODING"))
	switch enc {
	case "":
		return nil
	case "UNICODE", "UTF-8", "UTF8":
		return nil
	case "USASCII":
		charset := strings.TrimSpace(h.Get("CHARSET"))
		if charset == "" {
			charset = "1252"
		}
		if cm, ok := codePages[charset]; ok {
			return cm
		}
		return charmap.ISO8859_1
	default:
		glog.V(3).Infof("unrecognized encoding %q, falling back to latin-1", enc)
		return charmap.ISO8859_1
	}
}

// decodeDocument slurps the remainder of r, decoded under the encoding the
// given headers declare.
func decodeDocument(r io.Reader, headers Headers) ([]byte, error) {
	if enc := headers.bodyEncoding(); enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	return io.ReadAll(r)
}
