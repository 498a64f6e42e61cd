// Package firep defines the bigraded sparse matrix and the free implicit
// representation (FIRep) that stage S1/S2 of the engine consume: two
// bigraded boundary matrices D_high : C_{h+1} -> C_h and D_low : C_h ->
// C_{h-1}, both stored with columns in colex order, satisfying
// D_low * D_high = 0.
//
// Matrix keeps both a colex and (on demand) a lex view of the same column
// multiset: columns are sorted by the respective order, and conversion
// between the two permutes columns without changing their content (spec
// §3 "Bigraded matrix"). Each view also carries an index matrix mapping a
// bigrade to the number of columns at or below it in that order, so a
// "columns up to grade g" query is a single table lookup.
package firep
