// Package api adapts HTTP requests to the account and wallet services. It
// decodes and bounds request bodies, maps validation outcomes to status codes
// and machine readable codes, and never returns full card numbers.
package api
