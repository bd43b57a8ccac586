package http

// Request is a parsed HTTP/1.1 request. It is built once by
// ParseRequest and never mutated afterwards; it owns its memory and
// does not alias the read buffer it was parsed from.
type Request struct {
	Method  Method
	Path    string
	Version string

	// Headers maps lowercased keys to values. Duplicate keys in the
	// input resolve to the last occurrence.
	Headers map[string]string

	Body []byte
}

// Header returns the value for key, matched case-insensitively.
func (r *Request) Header(key string) string {
	return r.Headers[lowerASCII(key)]
}
