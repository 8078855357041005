// Package errors defines error types for shell sessions.
//
// This package provides structured error types that wrap the different failure
// scenarios of driving a shell process: locating the shell binary, spawning it,
// and exchanging commands over its pipes. All error types support error
// unwrapping and can be checked using errors.Is, errors.As, and errors.AsType.
package errors
