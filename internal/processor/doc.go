// Package processor seals or opens secret files line by line.
//
// Files are processed concurrently. Every non-empty line becomes one token (or
// one plaintext when opening), empty lines are kept, and outputs replace their
// targets atomically.
package processor
