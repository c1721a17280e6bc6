package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"unicode"
)

// HTTPStatus is an HTTP status serialized by its enumerated name
// ("OK", "CREATED", "NOT_FOUND") rather than by number.
type HTTPStatus int

// Code returns the numeric status code.
func (s HTTPStatus) Code() int {
	return int(s)
}

// String returns the enumerated name, e.g. "INTERNAL_SERVER_ERROR".
func (s HTTPStatus) String() string {
	text := http.StatusText(int(s))
	if text == "" {
		return fmt.Sprintf("STATUS_%d", int(s))
	}
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, text)
	return name
}

// MarshalJSON encodes the status as its enumerated name.
func (s HTTPStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes an enumerated name back to its code.
func (s *HTTPStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	code, ok := statusByName()[name]
	if !ok {
		return fmt.Errorf("unknown status %q", name)
	}
	*s = HTTPStatus(code)
	return nil
}

var (
	namesOnce sync.Once
	names     map[string]int
)

func statusByName() map[string]int {
	namesOnce.Do(func() {
		names = make(map[string]int)
		for code := 100; code < 600; code++ {
			if http.StatusText(code) == "" {
				continue
			}
			names[HTTPStatus(code).String()] = code
		}
	})
	return names
}
