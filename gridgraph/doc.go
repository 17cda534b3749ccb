// File: gridgraph/doc.go
//
// What:
//   - Grid bins a weighted point cloud into square cells under a jittered
//     cell size (component A).
//   - HasHole flood-fills the grid complement from a padded outer frame to
//     veto region mutations that would enclose a hole (component B).
//   - Region tracks a cell set's perimeter, weight sum, coverage, and
//     border incrementally as cells are added or removed, enforcing I1-I3
//     on every mutation.
//
// Complexity:
//   - NewGrid:  O(N) time, O(min(N, Split^2)) memory.
//   - HasHole:  O(Split^2) time and memory per call.
//   - Region.TryAdd / TryRemove: O(Split^2) worst case (hole check
//     dominates); TryRemove additionally pays O(|R|) for its connectivity
//     check.
package gridgraph
