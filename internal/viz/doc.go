// Package viz draws the scene on a braille character canvas.
//
// Each terminal cell holds a 2x4 grid of dots, so a 100x40 canvas gives
// 200x160 addressable points. [Renderer] projects through the scene camera,
// plots particles as single dots and cube faces as wireframe edges tinted with
// the lit face color. Cells remember the last tint written to them and
// [Canvas.Styled] renders that tint with lipgloss.
package viz
