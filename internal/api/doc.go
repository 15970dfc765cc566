// Package api implements the typed client for the SafariHub backend
// REST API.
//
// The package is two layers in one: a request executor (executor.go)
// that owns header construction, JSON encoding and error
// classification, and one file of narrow resource operations per
// backend resource family (auth, admin, guide, traveler, reviews,
// uploads). Operations are thin: each maps its arguments onto a fixed
// method and path and returns the executor's result unchanged.
//
// The client holds no session state. Callers obtain the bearer token
// from the session store and pass it by value into every operation;
// operations that require one fail locally with ErrAuthRequired when
// it is empty.
package api
