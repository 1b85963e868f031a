// Package render draws grids and search results for terminals.
//
// Terminal implements astar.Renderer. Each cell is two characters wide:
//
//	▒▒  blocked
//	██  on the path
//	░░  in the open set
//	    free
//
// Colours come from go-pretty's text package and can be switched off for
// plain output (pipes, golden tests). Tables for catalog listings and batch
// summaries use go-pretty's table writer.
package render
