// Package wrapper generates the text that wraps a compiled JavaScript bundle
// so it loads as an AMD module, a CommonJS module, an IIFE, a UMD module, an
// eval-able function or plain ESM.
//
// Intro returns the prologue for a format and Outro the matching epilogue.
// Both are pure functions of their inputs: they hold no state, do no I/O and
// are safe for concurrent use.
//
// The order of the import list is significant. For a given list the Nth
// factory parameter, AMD dependency id, CommonJS require and global argument
// all describe the Nth import.
//
// Does not: parse or rewrite the bundle body, or validate import names.
package wrapper
