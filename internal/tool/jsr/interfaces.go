package jsr

import "net/http"

// httpDoer sends one HTTP request. *http.Client satisfies it.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
