// Package requestlog records the outcome of every dispatched request
// so tests can assert on what their code actually sent.
//
// The dispatcher appends one Entry per dispatch when a Logger is
// configured. The Store interface adds querying on top of Logger, and
// InMemoryStore implements it with a FIFO ring buffer bounded by a
// maximum entry count.
package requestlog
