package http

import "strconv"

// Response is an HTTP/1.1 response under construction. Build one with
// NewResponse (or the OK/NotFound shortcuts), chain WithHeader and
// WithBody/WithText, then Serialize.
type Response struct {
	StatusCode int
	StatusText string

	headers map[string]string
	body    []byte
}

// NewResponse creates a response with the given status line.
func NewResponse(code int, text string) *Response {
	return &Response{
		StatusCode: code,
		StatusText: text,
		headers:    make(map[string]string),
	}
}

// OK creates a 200 OK response.
func OK() *Response { return NewResponse(200, "OK") }

// NotFound creates a 404 Not Found response.
func NotFound() *Response { return NewResponse(404, "Not Found") }

// WithHeader adds a header. Key case is preserved; emission order is
// unspecified. Content-Length set here is ignored: Serialize always
// computes its own.
func (r *Response) WithHeader(key, value string) *Response {
	r.headers[key] = value
	return r
}

// WithBody sets the body to raw bytes.
func (r *Response) WithBody(body []byte) *Response {
	r.body = body
	return r
}

// WithText sets the body to the UTF-8 bytes of s.
func (r *Response) WithText(s string) *Response {
	r.body = []byte(s)
	return r
}

// Body returns the current body bytes.
func (r *Response) Body() []byte { return r.body }

// Serialize renders the response to wire bytes: status line,
// Content-Length computed from the body at this moment, the stored
// headers, a blank line, then the body verbatim.
func (r *Response) Serialize() []byte {
	b := make([]byte, 0, 64+len(r.body))

	b = append(b, "HTTP/1.1 "...)
	b = strconv.AppendInt(b, int64(r.StatusCode), 10)
	b = append(b, ' ')
	b = append(b, r.StatusText...)
	b = append(b, "\r\n"...)

	b = append(b, "Content-Length: "...)
	b = strconv.AppendInt(b, int64(len(r.body)), 10)
	b = append(b, "\r\n"...)

	for key, value := range r.headers {
		if lowerASCII(key) == "content-length" {
			continue
		}
		b = append(b, key...)
		b = append(b, ": "...)
		b = append(b, value...)
		b = append(b, "\r\n"...)
	}

	b = append(b, "\r\n"...)
	return append(b, r.body...)
}
