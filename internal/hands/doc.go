// Package hands parses plain-text hand history files into structured
// hand records and reconstructs each hand's side-pot ladder from the
// observed contributions and collections.
package hands
