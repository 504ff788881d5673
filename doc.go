// Package fuchsian computes orbits of finitely generated Fuchsian groups —
// discrete subgroups of PSL(2,ℝ) — acting by Möbius transformations on the
// hyperbolic upper half-plane.
//
// 🚀 What is fuchsian?
//
//	A pure-Go engine for hyperbolic dynamics and visualization backends:
//		• Möbius transformations: determinant-normalized 2×2 matrices with
//		  composition, closed-form inverses and up-to-sign equality
//		• Geometric primitives: points, oriented geodesics and horocycles
//		  in the Poincaré upper half-plane
//		• Group construction: generator normalization, sign-aware
//		  deduplication and free-reduction tables
//		• Word enumeration: deterministic breadth-first traversal of the
//		  free-reduced Cayley graph, bounded by word length or by a
//		  hyperbolic region
//		• Orbit generation: lazy streams of (word, transformed primitive)
//		  pairs, plus cheap sequential/random orbit sampling
//
// ✨ Why choose fuchsian?
//
//   - Deterministic – fixed generator order makes every run reproducible
//   - Numerically careful – mandatory determinant renormalization after
//     every composition curbs drift over long words
//   - Lazy – consumers pull primitives one at a time and may stop early
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	moebius/  — 2×2 real Möbius transformations (elements of PSL(2,ℝ))
//	geometry/ — points, ideal boundary, geodesics, horocycles
//	group/    — finitely generated Fuchsian groups and their signed generators
//	words/    — breadth-first enumeration of freely reduced words
//	orbit/    — orbit streams and orbit sampling over base primitives
//
// Quick ASCII sketch of the half-plane model:
//
//	Im ▲      ∩ geodesic
//	   │     ╱ ╲    ○ horocycle
//	   │    ╱   ╲  ╱ ╲
//	───┴───┴─────┴─────▶ Re  (ideal boundary)
//
// Rendering, file export and UI layers are deliberately out of scope: the
// engine emits primitives and leaves pixels to its consumers. See the
// examples/ directory for a minimal consumer.
package fuchsian
