// Package id provides unique identifier generation.
//
// It offers two formats:
//
//   - UUID: standard UUID v4 (random) for general-purpose identifiers
//   - ULID: Universally Unique Lexicographically Sortable Identifiers
//     for time-ordered IDs, used for dispatch log entries so history
//     sorts chronologically by ID
//
// The ULID implementation follows the ULID specification, producing
// 26-character identifiers that encode a millisecond timestamp and a
// random component.
package id
