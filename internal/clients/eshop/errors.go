package eshop

import "net/http"

// APIError is a non-2xx answer from the remote API. Its message is the
// raw response body so form handlers can surface it verbatim.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return http.StatusText(e.Status)
}
