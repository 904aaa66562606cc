// Package app wires the application together: it configures logging, loads
// the flow, builds the variable pool, registers node runners, and evaluates
// every configured node.
//
// Nodes are independent of each other (no node reads another node's output),
// so evaluation fans out over a fixed-size worker pool without any ordering
// guarantees between nodes.
package app
