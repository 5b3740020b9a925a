// Package cli implements the intercept command line tool for working
// with fixture files: validating them, listing the rules they declare,
// and printing version information.
package cli
