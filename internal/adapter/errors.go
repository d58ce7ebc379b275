package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the backend rejects the session token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the content host has no resource at the
	// requested path (e.g. a level listed in the manifest whose payload file
	// has not been published yet).
	ErrNotFound = errors.New("remote resource not found")

	// ErrNoBaseURLProvided is returned by adapter constructors when the
	// configuration carries no endpoint address.
	ErrNoBaseURLProvided = errors.New("no base url provided")

	// ErrUnknownMutationKind is returned when a queued mutation has no
	// corresponding backend endpoint. Such a mutation can never be drained;
	// the queue surfaces it instead of retrying forever.
	ErrUnknownMutationKind = errors.New("unknown mutation kind")
)
