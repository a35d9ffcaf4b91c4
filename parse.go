package ofx

import (
	"bytes"
	"io"

	"github.com/golang/glog"
)

// Option configures a Parser.
type Option func(*Parser)

// WithFailFast controls whether a field-level problem aborts the whole
// parse (true, the default) or is recorded as a warning or discarded entry
// while parsing continues (false).
func WithFailFast(failFast bool) Option {
	return func(p *Parser) { p.failFast = failFast }
}

// WithNormalizer overrides the tag-soup normalizer used on the document
// body.
func WithNormalizer(n Normalizer) Option {
	return func(p *Parser) { p.normalizer = n }
}

// Parser parses OFX documents into Documents. Its configuration is captured
// at construction and never mutated, so a single Parser is safe for
// concurrent use across goroutines.
type Parser struct {
	failFast   bool
	normalizer Normalizer
}

// NewParser returns a Parser with the given options applied over the
// defaults: fail-fast enabled, textual pre-pass normalizer.
func NewParser(opts ...Option) *Parser {
	p := &Parser{failFast: true, normalizer: NewNormalizer()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses the OFX document in r using the default fail-fast
// configuration.
func Parse(r io.Reader) (*Document, error) {
	return NewParser().Parse(r)
}

// Parse fully consumes r and returns the parsed document. r must be
// seekable; the header block is peeked non-destructively before the whole
// stream is re-read under the encoding the headers declare. Callers either
// receive a fully populated Document or a single error for the first fatal
// issue - never both.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, &UnsupportedInputError{Reason: "parse takes a seekable stream, not a raw reader"}
	}

	headers, err := ParseHeaders(rs)
	if err != nil {
		return nil, err
	}
	data, err := decodeDocument(rs, headers)
	if err != nil {
		return nil, err
	}
	idx := bytes.IndexByte(data, '<')
	if idx == -1 {
		return nil, &StructuralError{Reason: "OFX root element not found"}
	}
	body := preprocessBody(data[idx:])

	clean, err := p.normalizer.Normalize(body)
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("normalized: %s", clean.String())

	tree, err := BuildTree(clean.Bytes())
	if err != nil {
		return nil, err
	}
	root := tree.Find("ofx")
	if root == nil {
		return nil, &StructuralError{Reason: "OFX root element not found"}
	}

	doc := &Document{Headers: headers}
	if err := p.extract(root, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
