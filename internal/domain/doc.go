// Package domain contains the wallet's core business entities and the pure
// decision logic around them: classifying and validating payment cards before
// they are stored, and validating sign-up and log-in submissions against a
// keyed credential transform.
//
// Nothing in this package performs I/O. Validators receive caller-owned
// snapshots of stored state (existing cards, a user lookup) and return a
// tagged outcome; persisting the result is the caller's job.
package domain
