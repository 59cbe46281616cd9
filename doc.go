// Package qif reads and writes Quicken Interchange Format files.
//
// A QIF file is a line-oriented text format: section headers start with
// '!', every following line carries a one-character tag code, and records
// end with a lone '^'. Parse builds a Qif aggregate from such a stream:
// accounts holding their transactions, the category forest, classes and
// securities. Encode writes an aggregate back out in a canonical form
// that parses to an equal aggregate.
//
// The format is old and loose. Amounts show up with thousands separators
// and currency symbols, dates in half a dozen regional shapes, and tag
// codes change meaning between sections. The parser is permissive by
// default: records it cannot decode are skipped and reported through
// Qif.Warnings, and Config.Strict turns them into errors instead.
package qif
