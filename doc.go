// Package jovi is an image geometry, remap and compositing engine.
//
// # Overview
//
// jovi operates on in-memory 8-bit images. Every operator is a pure
// function: it reads its inputs, returns a new buffer and keeps no state
// between calls, so independent calls may run concurrently. Inside a call
// the per-pixel loops are split into row bands across a shared worker pool
// (see [SetWorkers]).
//
// # Quick Start
//
//	buf, err := jovi.FromImage(img)
//	if err != nil {
//	    return err
//	}
//
//	out := jovi.Transform(buf, jovi.TransformParams{
//	    Angle: 30,
//	    SizeX: 0.5, SizeY: 0.5,
//	    Edge:  jovi.EdgeModeWrap,
//	})
//	out = jovi.Blend(buf, out, jovi.BlendScreen, 0, 0,
//	    jovi.WithMask(jovi.Ellipse(buf.Width(), buf.Height(), 1, 1, jovi.White).Gray()),
//	    jovi.WithAlpha(0.8))
//
// # Data Model
//
//   - [PixelBuffer]: height x width x 3 channels, B, G, R order.
//   - [Mask]: height x width x 1 channel; 0 selects the first composite
//     source, 255 the second.
//   - [FloatImage]: floating-point B, G, R data used by [Levels].
//
// # Operators
//
//   - Geometry: [Crop], [EdgeWrap], [Translate], [Rotate], [ScaleFit],
//     [Transform], [Extend], [Mirror].
//   - Remap: [CoordSphere], [CoordPolar], [CoordFisheye], [CoordPerspective],
//     [Remap], [WarpPerspective] and the Remap* wrappers.
//   - Shapes: [Ellipse], [Quad], [Polygon].
//   - Adjustment: [HSV], [Gamma], [Contrast], [Exposure], [Invert],
//     [Levels], [UnsharpMask], [EdgeDetect], [Emboss], [Median],
//     [Threshold].
//   - Compositing: [Lerp], [Blend], [Split], [Merge].
//
// # Coordinate System
//
//   - Origin (0,0) at the center of the top-left pixel
//   - X increases right, Y increases down
//   - Angles in degrees, positive turns clockwise on screen
//
// # Error Handling
//
// Operators never fail. Out-of-range parameters are clipped or swapped,
// numeric degeneracies (zero gamma, singular perspective, vanishing fisheye
// denominator) fall back to finite results, and mismatched sizes are
// reconciled by rescaling. Errors are returned only when constructing
// buffers and when parsing tag names.
package jovi
