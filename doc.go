// Package fftadapt derives the buffer shapes a transform engine requires and
// adapts arbitrarily shaped user arrays onto them.
//
// Given an array, a transform family (complex or real, forward or inverse),
// optional transform lengths and optional axes, the builders negotiate the
// exact input and output shapes, allocate alignment-correct working buffers,
// and return an Adapter that copies user data through per-axis slicers on
// every invocation. Zero-padding and truncation fall out of the length
// negotiation and are invisible to the caller.
//
// The transform itself is delegated to a pluggable Engine; a pure-Go engine
// supporting arbitrary transform lengths is registered by default.
package fftadapt
