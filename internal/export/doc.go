// Package export writes runs and frames to files: SVG snapshots, animated
// GIFs of the terminal canvas and JSON traces of headless runs.
package export
