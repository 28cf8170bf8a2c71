package searcher

import (
	"breakthrough/experiments/metrics"
	"breakthrough/game"
)

const noParent = -1

// node is a tree vertex stored in the tree arena. Parent and children are
// arena indices; the parent link is only followed to propagate tries.
type node struct {
	board     *game.Board
	turn      game.Color // Color to move on board
	move      game.Move  // Move leading from the parent, unset on the root
	parent    int
	children  []int
	successes int
	tries     int
	depth     int
}

func (n *node) score() float64 {
	if n.tries == 0 {
		return 0
	}
	return float64(n.successes) / float64(n.tries)
}

// tree owns the nodes of a single search. It is walked by one goroutine only,
// rollout batches being the sole concurrent section.
type tree struct {
	nodes          []node
	target         game.Color // Color whose wins are counted
	depthThreshold int
	fanOut         int
	exploit        float64
	amplification  int
	rng            Rand
	metrics        metrics.Collector
}

func newTree(board *game.Board, turn game.Color, m *MCTS) *tree {
	t := &tree{
		nodes:          make([]node, 1, 1024),
		target:         turn,
		depthThreshold: m.depthThreshold,
		fanOut:         m.fanOut,
		exploit:        m.exploit,
		amplification:  m.amplification,
		rng:            m.rng,
		metrics:        m.metrics,
	}
	t.nodes[0] = node{
		board:  board.Clone(),
		turn:   turn,
		parent: noParent,
	}
	return t
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

// addTries credits tries to a node and all of its ancestors.
func (t *tree) addTries(id, tries int) {
	for id != noParent {
		t.nodes[id].tries += tries
		id = t.nodes[id].parent
	}
}

// iterate runs one selection/expansion pass from node id and returns the
// successes it recorded.
func (t *tree) iterate(id int) (int, error) {
	n := &t.nodes[id]

	if n.board.IsFinished() { // Terminal node
		score := 0
		if n.board.HasWon(t.target) {
			score = 1
		}
		t.addTries(id, 1)
		n.successes += score
		return score, nil
	}

	if n.depth > t.depthThreshold { // Frontier node, score by rollouts
		score, err := playouts(n.board, n.turn, t.target, t.seeds())
		if err != nil {
			return 0, err
		}
		t.metrics.AddRollouts(t.fanOut)
		t.addTries(id, t.fanOut)
		n.successes += score
		return score, nil
	}

	child, err := t.selectOrExpand(id)
	if err != nil {
		return 0, err
	}
	score, err := t.iterate(child)
	if err != nil {
		return 0, err
	}
	// The arena may have grown, so n can be stale
	t.nodes[id].successes += score
	return score, nil
}

// selectOrExpand picks the child to descend into: an existing child drawn by
// weight (exploit) or a new child for an untried move (explore).
func (t *tree) selectOrExpand(id int) (int, error) {
	n := &t.nodes[id]
	unexplored := t.unexplored(n)

	if (t.rng.Float64() < t.exploit && len(n.children) > 0) || len(unexplored) == 0 {
		if len(n.children) == 0 {
			return noParent, ErrNoLegalMoves
		}
		return t.pickChild(id), nil
	}

	move := unexplored[t.rng.Intn(len(unexplored))]
	return t.addChild(id, move), nil
}

func (t *tree) unexplored(n *node) []game.Move {
	moves := n.board.AllPossibleMoves(n.turn)
	unexplored := moves[:0]
	for _, move := range moves {
		if !t.expanded(n, move) {
			unexplored = append(unexplored, move)
		}
	}
	return unexplored
}

func (t *tree) expanded(n *node, move game.Move) bool {
	for _, child := range n.children {
		if t.nodes[child].move == move {
			return true
		}
	}
	return false
}

// pickChild draws a child with probability proportional to its successes,
// falling back to the first child when the draw lands past every span.
func (t *tree) pickChild(id int) int {
	n := &t.nodes[id]
	fallback := n.children[0]

	span := n.tries * t.amplification
	if span <= 0 {
		return fallback
	}

	choice := t.rng.Intn(span)
	sum := 0
	for _, child := range n.children {
		weight := t.nodes[child].successes * t.amplification
		if choice < sum+weight {
			return child
		}
		sum += weight
	}
	return fallback
}

func (t *tree) addChild(id int, move game.Move) int {
	parent := &t.nodes[id]
	child := node{
		board:  parent.board.Play(move),
		turn:   parent.turn.Opposite(),
		move:   move,
		parent: id,
		depth:  parent.depth + 1,
	}

	t.nodes = append(t.nodes, child)
	childID := len(t.nodes) - 1
	t.nodes[id].children = append(t.nodes[id].children, childID)
	t.metrics.AddNode()
	return childID
}

// seeds draws one seed per rollout worker from the tree's random source.
func (t *tree) seeds() []uint64 {
	seeds := make([]uint64, t.fanOut)
	for i := range seeds {
		seeds[i] = t.rng.Uint64()
	}
	return seeds
}

// best returns the move of the root child with the highest win rate, the
// earliest child winning ties.
func (t *tree) best() (game.Move, error) {
	root := t.root()
	if len(root.children) == 0 {
		return game.Move{}, ErrNoChildren
	}

	bestChild := &t.nodes[root.children[0]]
	bestScore := bestChild.score()
	for _, id := range root.children[1:] {
		child := &t.nodes[id]
		if score := child.score(); score > bestScore {
			bestChild = child
			bestScore = score
		}
	}
	return bestChild.move, nil
}
