// Package viz renders sampled fields in the terminal.
//
// Curves go through asciigraph; surfaces and spheres are drawn as Braille
// wireframes with a small orbit camera; polar fields are shaded with
// characters. The lipgloss styles and themes here are shared with the
// explorer in package tui.
package viz
