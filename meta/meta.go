// meta/meta.go
package meta

import "time"

// TIME_BUDGET defines the wall-clock time an MCTS agent searches per move.
const TIME_BUDGET = 5000 * time.Millisecond

// DEPTH_THRESHOLD defines the tree depth past which nodes are scored by rollouts.
const DEPTH_THRESHOLD = 3

// FAN_OUT defines the number of concurrent rollouts launched per frontier visit.
const FAN_OUT = 4

// EXPLOIT_PROBABILITY defines how often an expanded node reuses a known child.
const EXPLOIT_PROBABILITY = 0.30

// AMPLIFICATION scales success counts when drawing a child to exploit.
const AMPLIFICATION = 10

// MAX_TURNS caps a game played by the local engine.
const MAX_TURNS = 300
