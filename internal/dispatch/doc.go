// Package dispatch implements the command dispatcher and report emitter
// (C6): it tokenizes the input stream, drives a relindex.Engine, and
// formats report output. It is the only package that knows the textual
// command grammar; relindex.Engine itself is oblivious to how its
// operations are invoked.
package dispatch
