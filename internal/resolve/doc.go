// Package resolve turns the identifiers and names the model uses for
// cross-references into the elements they denote.
//
// Two kinds of outcome are kept strictly apart. A reference the model promises
// to satisfy (an executable by id, a require-port instance by id, a declared
// direct caller) that resolves nowhere is a model-integrity fault: the
// resolver returns an *IntegrityError and the run is expected to stop. A
// reference whose absence is a valid modelled state (a task name that is
// neither a task nor an interrupt) resolves to a sentinel value instead.
package resolve
