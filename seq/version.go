package seq

// Version is a mutation epoch.
//
// Every node carries the version of the epoch which created it. A sequence
// handle may only change a node in place if the node's version equals the
// handle's version; otherwise the node is shared with other handles (or with
// frozen cursors) and has to be cloned first.
type Version uint64

// InitialVersion is the version of freshly constructed sequences.
const InitialVersion Version = 0
