// Package service contains the application-specific use cases. It loads the
// snapshots the domain validators need from the stores in internal/store,
// runs the validators, and persists the accepted results.
//
// Services return a domain outcome for every decision a user can act on
// (a rejected card, a mismatched password) and reserve error returns for
// infrastructure failures. The API layer maps both to HTTP responses.
package service
