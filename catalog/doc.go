// Package catalog provides the grids the search engine runs on: a built-in
// set of named maps embedded as YAML, and parsers for custom map files.
//
// Map text format:
//
//   - One line per row; row y is the y-th non-empty line.
//   - '#', 'X', 'x' and '1' are walls; '.', '_' and '0' are free cells.
//   - Lines starting with "//" are comments.
//
// YAML format (maps.yaml, or a custom file):
//
//	maps:
//	  - id: a
//	    name: maze
//	    description: ...
//	    grid: |
//	      ####
//	      #..#
//	      ####
//
// A custom YAML file may also hold a single entry at the top level.
//
// Errors:
//
//   - ErrUnknownMap: no entry with the requested id.
//   - ErrBadCell:    a character outside the alphabet above.
//   - ErrEmptyMap:   no rows.
//   - ErrDuplicateID: two entries share an id.
package catalog
