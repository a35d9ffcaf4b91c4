package ofx

import (
	"bytes"
	"strings"
	"sync"

	"github.com/golang/glog"
)

// Normalizer rewrites OFX/SGML tag soup so that every opened tag is closed,
// without altering text content, producing input a conventional tree parser
// can consume.
type Normalizer interface {
	Normalize(data []byte) (*bytes.Buffer, error)
}

type normalizer struct{}

var normalizerSingleton *normalizer
var initNormalizer sync.Once

// NewNormalizer returns the singleton instance of the textual pre-pass
// normalizer. It is stateless and safe for concurrent use.
func NewNormalizer() Normalizer {
	initNormalizer.Do(func() {
		normalizerSingleton = &normalizer{}
	})
	return normalizerSingleton
}

// scanExplicitCloses collects the uppercased names of every explicit closing
// tag in the document, skipping CDATA sections, comments and processing
// instructions. A tag whose name appears in this set is trusted to be closed
// by the document itself.
func scanExplicitCloses(data []byte) map[string]struct{} {
	closes := make(map[string]struct{})
	for i := 0; i < len(data); {
		lt := bytes.IndexByte(data[i:], '<')
		if lt == -1 {
			break
		}
		i += lt
		if bytes.HasPrefix(data[i:], []byte("<![CDATA[")) {
			end := bytes.Index(data[i:], []byte("]]>"))
			if end == -1 {
				break
			}
			i += end + 3
			continue
		}
		if bytes.HasPrefix(data[i:], []byte("<!--")) {
			end := bytes.Index(data[i:], []byte("-->"))
			if end == -1 {
				break
			}
			i += end + 3
			continue
		}
		if bytes.HasPrefix(data[i:], []byte("<?")) {
			end := bytes.Index(data[i:], []byte("?>"))
			if end == -1 {
				break
			}
			i += end + 2
			continue
		}
		gt := bytes.IndexByte(data[i:], '>')
		if gt == -1 {
			break
		}
		token := data[i+1 : i+gt]
		if len(token) > 0 && token[0] == '/' {
			name := strings.Fields(string(token[1:]))
			if len(name) > 0 {
				closes[strings.ToUpper(name[0])] = struct{}{}
			}
		}
		i += gt + 1
	}
	return closes
}

// tagName extracts the element name from the inside of a tag token,
// stopping at the first whitespace so attribute-bearing tags like
// <BAL NAME="x"> resolve to BAL.
func tagName(token []byte) string {
	fields := strings.Fields(string(token))
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSuffix(fields[0], "/")
}

// Normalize tokenizes data on tag boundaries and emits a synthetic closing
// tag for every leaf element the document left open. A start tag is
// considered a leaf candidate when its name is neither explicitly closed
// anywhere in the document nor a known OFX aggregate; once such a tag has
// accumulated non-whitespace text it is closed at the next tag boundary,
// and at end of input. CDATA sections and processing instructions pass
// through untouched and never flush the candidate.
func (n normalizer) Normalize(data []byte) (*bytes.Buffer, error) {
	var (
		out         bytes.Buffer
		closes      = scanExplicitCloses(data)
		pending     string // last opened leaf candidate, not yet closed
		pendingText bool   // candidate has accumulated non-whitespace text
	)

	flush := func() {
		if pending != "" && pendingText {
			glog.V(3).Infof("closing open leaf %s", pending)
			writeEndTag(pending, &out)
			pending = ""
			pendingText = false
		}
	}

	for i := 0; i < len(data); {
		lt := bytes.IndexByte(data[i:], '<')
		if lt == -1 {
			out.Write(data[i:])
			if pending != "" && len(bytes.TrimSpace(data[i:])) > 0 {
				pendingText = true
			}
			break
		}
		lt += i
		if lt > i {
			out.Write(data[i:lt])
			if pending != "" && len(bytes.TrimSpace(data[i:lt])) > 0 {
				pendingText = true
			}
			i = lt
		}

		switch {
		case bytes.HasPrefix(data[i:], []byte("<![CDATA[")):
			end := bytes.Index(data[i:], []byte("]]>"))
			if end == -1 {
				return nil, &StructuralError{Reason: "unterminated CDATA section"}
			}
			out.Write(data[i : i+end+3])
			if pending != "" {
				pendingText = true
			}
			i += end + 3
		case bytes.HasPrefix(data[i:], []byte("<?")):
			end := bytes.Index(data[i:], []byte("?>"))
			if end == -1 {
				return nil, &StructuralError{Reason: "unterminated processing instruction"}
			}
			out.Write(data[i : i+end+2])
			i += end + 2
		case bytes.HasPrefix(data[i:], []byte("<!--")):
			end := bytes.Index(data[i:], []byte("-->"))
			if end == -1 {
				return nil, &StructuralError{Reason: "unterminated comment"}
			}
			out.Write(data[i : i+end+3])
			i += end + 3
		case bytes.HasPrefix(data[i:], []byte("<!")):
			gt := bytes.IndexByte(data[i:], '>')
			if gt == -1 {
				return nil, &StructuralError{Reason: "unterminated markup declaration"}
			}
			out.Write(data[i : i+gt+1])
			i += gt + 1
		default:
			gt := bytes.IndexByte(data[i:], '>')
			if gt == -1 {
				return nil, &StructuralError{Reason: "unterminated tag token"}
			}
			token := data[i+1 : i+gt]
			flush()
			if len(token) > 0 && token[0] == '/' {
				// Explicit close, pass through. Any leaf candidate was
				// flushed above.
				pending = ""
				pendingText = false
				out.Write(data[i : i+gt+1])
			} else {
				name := tagName(token)
				if name == "" {
					return nil, &StructuralError{Reason: "empty tag token"}
				}
				upper := strings.ToUpper(name)
				_, explicitlyClosed := closes[upper]
				selfClosing := bytes.HasSuffix(token, []byte("/"))
				if explicitlyClosed || selfClosing || IsAggregate(upper) {
					pending = ""
					pendingText = false
				} else {
					glog.V(3).Infof("leaf candidate %s", name)
					pending = name
					pendingText = false
				}
				out.Write(data[i : i+gt+1])
			}
			i += gt + 1
		}
	}
	flush()
	return &out, nil
}
