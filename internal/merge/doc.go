// Package merge folds ranked configuration documents into a single merged
// view.
//
// The fold is shallow: a top-level key supplied by a higher-ranked document
// replaces the lower-ranked value for that key as a whole, nested objects
// included. The package also carries the dotted-path helpers used to mutate
// a single key inside a layer snapshot.
package merge
