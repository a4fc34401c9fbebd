// Package smooth applies a 1-2-1 weighted stencil to labeled arrays.
//
// [Smooth121] runs the stencil along one or more named axes of a
// [grid.Array], optionally treating axes as periodic and optionally
// repeating the whole pass. Each interior point becomes
// (left + 2*center + right)/4; at a non-periodic boundary the edge
// value stands in for the missing neighbor, giving (3*edge + next)/4.
//
// The stencil is a low-pass filter; [Gain] and [Response] expose its
// frequency response in closed form and numerically.
package smooth
