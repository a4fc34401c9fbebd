// Package script pipes a source text to an external command-line
// interpreter and returns its output streams.
//
// An [Interpreter] wraps the path of the external binary; [Interpreter.Run]
// spawns it, writes the script to its standard input, and collects
// standard output and standard error on every exit path. The pattern
// comes from driving batch-mode interpreters (Ingrid, gnuplot, ...)
// that read a whole program from stdin.
package script
