// Package diagnostic collects the non-fatal findings of a save, restore or
// conversion walk: skipped cycles, dropped map entries, refused nested
// collections, broken persisted paths.
//
// Fatal problems are returned as errors by the callers; everything here
// describes a value that was degraded but did not stop the operation.
package diagnostic
