package http

// Handler produces the response for a successfully parsed request.
// There is no router; a server carries exactly one Handler.
type Handler func(*Request) *Response
