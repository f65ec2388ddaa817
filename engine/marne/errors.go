package marne

import "fmt"

// NetworkError reports a failed HTTP exchange, either with the server list
// API or with the map art CDN.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports a server list payload that could not be decoded. Raw
// holds the body as received so the offending payload can be inspected.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding server list: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
