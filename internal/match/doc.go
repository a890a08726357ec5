// Package match suggests the field a broken persisted path most likely
// meant, using edit distance over normalized identifiers.
//
// Key functions:
//   - Levenshtein: edit distance between two strings
//   - NormalizeIdent: case and separator folding for identifiers
//   - Closest: best candidates for a misspelled or renamed field
package match
