// Package contour provides a small geometry kernel for 2D vector paths, as
// used by glyph outlines and vector graphics. It models paths as sequences of
// drawing commands and offers the operations that font and graphics
// pipelines need before rendering: bounding boxes, winding direction,
// reversal, and the conversion of conic sections to quadratic Béziers.
//
// # Commands
//
// A [Command] is one of [MoveTo], [LineTo], [QuadTo], [ConicTo], [CubicTo]
// and [Close]. Commands are values and compare with ==. Like drawing commands
// in PostScript, each command continues from the end point of the previous
// one, so only [MoveTo] carries a start point.
//
// [ConicTo] draws a rational quadratic Bézier with a weight. Weights below 1
// describe ellipses, 1 describes a parabola (an ordinary quadratic Bézier)
// and weights above 1 describe hyperbolas. Conics represent circular and
// elliptical arcs exactly, which is why [Contour.ArcTo], [Shape.AddCircle]
// and [ParseSVG] produce them.
//
// # Contours and shapes
//
// A [Contour] is a single sub-path that starts with a MoveTo and may end
// with a Close. A [Shape] is a list of contours, such as the outline of a
// glyph with its holes. Both are slices and can be inspected and built
// directly, or incrementally with their builder methods. The builders
// maintain some conveniences; see [Contour] for the rules.
//
// # Conics and quadratics
//
// Many consumers, TrueType fonts and SVG among them, cannot represent
// conics. [Conic.Chop] splits a conic exactly at its midpoint, and repeated
// chopping yields quadratic Béziers that approximate the conic. The
// approximation error shrinks by a factor of four per subdivision level;
// [Conic.SubdivisionLevel] picks the smallest level that meets a tolerance.
// [Contour.ConvertConicsToQuadratics] rewrites whole contours.
//
// # Coordinate system
//
// The package doesn't mandate a coordinate system, but names such as
// [Clockwise] assume that the y axis points down, as it does in most
// graphics systems and in [golang.org/x/image/font/sfnt].
//
// # Interoperability
//
// [ParseSVG] and [SVG] read and write SVG path data. [AppendSegments] and
// [LoadGlyph] import glyph outlines from [golang.org/x/image/font/sfnt].
//
// # Literature
//
//   - [Skia's SkConic], whose chopping and subdivision this package follows
//   - [Conic Sections in Rational Bézier Form] by Eugene Lee
//   - [SVG implementation notes on elliptical arcs]
//
// [Skia's SkConic]: https://github.com/google/skia/blob/main/src/core/SkGeometry.cpp
// [Conic Sections in Rational Bézier Form]: https://doi.org/10.1016/0167-8396(87)90004-2
// [SVG implementation notes on elliptical arcs]: https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
package contour
