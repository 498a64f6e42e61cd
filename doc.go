// Package mphom is the computational core of a two-parameter persistent
// homology engine: given a bifiltered chain complex it produces, for every
// affine line through the filtration grid, a finite combinatorial object
// from which the line's one-parameter barcode can be read off in O(log n).
//
// The core is organized as a strict pipeline, one package per stage:
//
//	bigrade/      — exact rationals, bigrades, grade vectors, orders
//	mod2/         — sparse mod-2 matrix columns (lazy max-heap)
//	firep/        — free implicit representations, bigraded matrices
//	presentation/ — bigraded reduction, minimal presentation, Betti/Hilbert
//	template/     — template-point set, anchor discovery
//	arrangement/  — Bentley–Ottmann DCEL arrangement, point location
//	pathplan/     — dual-graph MST and traversal ordering
//	updater/      — vineyard-with-reset barcode-template computation
//	barcode/      — barcode-template query and numeric rescaling
//	persist/      — stable binary persisted format
//	engine/       — top-level orchestration, InputParameters, Progress
//
// Control flow is strictly forward: each stage consumes only the previous
// stage's output and never mutates it. The whole pipeline is single
// threaded; see engine.Compute for the entry point and engine.Progress for
// the cooperative-cancellation surface.
//
//	go get github.com/tildedata/mphom/engine
package mphom
