// Package rpc carries the note service over HTTP/JSON: Client is a
// core.Backend talking to a remote service and NewServer exposes any backend
// with the same routes.
package rpc

import "github.com/aretw0/knowling/pkg/core"

// saveRequest is the body of POST /notes and PUT /notes/{id}.
type saveRequest struct {
	Text string `json:"text"`
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	Notes []core.Note `json:"notes"`
}

type relatedResponse struct {
	Related []core.ScoredNote `json:"related"`
}

// categoriesRequest is the body of PUT /notes/{id}/categories.
type categoriesRequest struct {
	Categories []string `json:"categories"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}
