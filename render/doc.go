// Package render formats materialized query results for terminal
// output. Each demo section is a title, a bordered table of string
// cells, and two sentinel states: "(no results)" when the section was
// never populated and "(empty)" when the query ran and matched nothing.
package render
