package http

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// crlfcrlf separates the header block from the body.
var crlfcrlf = []byte("\r\n\r\n")

// ParseRequest parses the bytes actually read off a connection into a
// Request. Validation stops at the first failure; the returned error
// is one of ErrInvalidRequest, ErrInvalidMethod or ErrMissingRequestLine.
//
// The parser is deliberately minimal, not RFC-conformant: no chunked
// transfer, no header folding, no percent-decoding, and the body is
// taken verbatim with no Content-Length cross-check.
func ParseRequest(data []byte) (*Request, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidRequest
	}

	sep := bytes.Index(data, crlfcrlf)
	if sep == -1 {
		return nil, ErrInvalidRequest
	}

	head := string(data[:sep])
	if head == "" {
		return nil, ErrMissingRequestLine
	}

	lines := strings.Split(head, "\r\n")

	// Request line: METHOD PATH VERSION, any run of whitespace between
	// tokens. Extra tokens are ignored.
	fields := strings.Fields(lines[0])
	if len(fields) < 3 {
		return nil, ErrInvalidRequest
	}

	method, err := ParseMethod(fields[0])
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:  method,
		Path:    fields[1],
		Version: fields[2],
		Headers: make(map[string]string, len(lines)-1),
	}

	// Header lines split once at ": ". Keys are lowercased, values kept
	// verbatim. A duplicate key overwrites the earlier value; lines
	// without the separator are skipped.
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		req.Headers[lowerASCII(key)] = value
	}

	// Copy the body so the Request outlives the shared read buffer.
	if body := data[sep+len(crlfcrlf):]; len(body) > 0 {
		req.Body = append([]byte(nil), body...)
	}

	return req, nil
}

// lowerASCII lowercases ASCII letters only. Header keys on the wire
// are ASCII; this skips the Unicode tables on the per-request path.
func lowerASCII(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return 'A' <= r && r <= 'Z' })
	if i == -1 {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
