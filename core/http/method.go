package http

// Method is a request method. Only the four methods below exist; a
// request-line token outside this set is a parse failure, there is no
// "unknown method" value.
type Method uint8

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

// ParseMethod maps a request-line token to a Method. The match is
// exact and case-sensitive.
func ParseMethod(token string) (Method, error) {
	switch token {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	case "PUT":
		return MethodPut, nil
	case "DELETE":
		return MethodDelete, nil
	default:
		return 0, ErrInvalidMethod
	}
}

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return "INVALID"
	}
}
