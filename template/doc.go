// Package template builds the template-point vector (spec §4.2): the
// bigraded Betti support plus its anchor completions, the discrete
// combinatorial input the arrangement sweep (package arrangement) runs
// over.
//
// Anchors are generated only from the original support set (not
// iteratively closed over anchors-of-anchors — an anchor never has its own
// Betti multiplicities to pair against another point, so there is nothing
// for it to be "strongly incomparable" with in the generative sense).
// Following builder/'s deterministic dedup-before-insert idiom, an anchor
// candidate that coincides with an existing point is folded into that
// point (marked, not duplicated); one that coincides with a previously
// produced anchor is silently skipped.
package template
