// Package overlay renders visual attention data as a pixel-accurate layer
// stacked over a source image.
//
// # Overview
//
// The package has two cooperating parts. The Resolver establishes the
// natural pixel dimensions of the source image, whether it arrives as
// encoded bytes or as an already-decoded image. The rasterizer draws one of
// three visualizations onto a transparent Surface sized exactly to those
// dimensions:
//
//   - heatmap: additive radial intensity around each attention point
//   - fogmap: near-opaque fog with soft vignettes of visibility at each point
//   - path: dashed, numbered polyline through the attention sequence
//
// # Quick Start
//
//	var r overlay.Resolver
//	r.FromBytes(imageBytes)
//
//	s := overlay.Render(r.Metrics(), attention.ModeHeatmap, points)
//	png.Encode(w, s.RGBA())
//
// Render is a pure function of (metrics, mode, points): identical inputs
// produce byte-identical surfaces. Renderer wraps it with last-write-wins
// reactive semantics for callers that feed inputs incrementally.
//
// # Coordinate System
//
// Point coordinates are percentages of the image dimensions with origin at
// the top-left: x=0,y=0 is the origin, x=100,y=100 the bottom-right corner.
// X increases right, Y increases down.
//
// # Failure Model
//
// Rendering never returns an error. Unresolved or degenerate metrics skip
// drawing entirely and out-of-range coordinates simply land outside the
// visible frame.
package overlay
