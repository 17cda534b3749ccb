// Package boundary implements the clockwise boundary extractor (component
// E): it turns a final, hole-free Region into an ordered list of
// axis-aligned world-coordinate segments tracing the region's outer
// boundary clockwise, with collinear runs collapsed into single edges.
//
// The per-cell exposed-edge enumeration is stitched into a corner successor
// map built once per call (size O(boundary length)); verifyClosed checks
// the map's degree structure and walks it to confirm the stitched corners
// form a single simple cycle before the walk emits the final polyline.
package boundary
