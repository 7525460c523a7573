// Package terminal drives an xterm-compatible tty directly with ANSI sequences.
//
// It provides:
//   - raw mode and alternate screen handling through golang.org/x/term
//   - a diffing renderer for graphics.Character grids (16-color palette, 256-color and true color)
//   - a byte-stream decoder producing event.SystemEvent values (keys, SGR mouse, resize)
//   - clean restoration on exit and an emergency reset for panic handlers
//
// terminfo is not consulted; the sequences target xterm and its descendants.
package terminal
