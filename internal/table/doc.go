// Package table persists a cohort as a UTF-8 delimited text file and parses
// it back.
//
// The format is fixed: one header row, one row per individual, comma
// delimited. Booleans are serialized as 0/1 and the structurally missing
// felt_better value as the explicit marker "NA". Floats are rounded to a
// declared decimal precision at write time; the in-memory cohort stays
// unrounded, so a written-then-read cohort matches the original only up to
// that precision.
//
// The delimited file is the project's single persistence artifact; readers
// treat it as immutable once written.
package table
