package gametree

import "statesearch/game"

// mockNode is a node of an explicit game tree. Actions are child names.
type mockNode struct {
	name     string
	turn     int
	values   []float64 // Terminal when non-nil
	estimate float64
	children []*mockNode
}

type mockGame struct{}

func (mockGame) Turn(n *mockNode) int {
	return n.turn
}

func (mockGame) IsTerminal(n *mockNode) (bool, []float64) {
	return n.values != nil, n.values
}

func (mockGame) Actions(n *mockNode) []string {
	actions := make([]string, len(n.children))
	for i, c := range n.children {
		actions[i] = c.name
	}
	return actions
}

func (mockGame) Successor(n *mockNode, action string) *mockNode {
	for _, c := range n.children {
		if c.name == action {
			return c
		}
	}
	panic("no child " + action + " under " + n.name)
}

// leaf is a terminal node worth v to the maximizer and -v to everyone else.
func leaf(name string, v float64) *mockNode {
	return &mockNode{name: name, values: []float64{v, -v, -v}, estimate: v}
}

func maxNode(name string, children ...*mockNode) *mockNode {
	return &mockNode{name: name, turn: 0, children: children}
}

func minNode(name string, children ...*mockNode) *mockNode {
	return &mockNode{name: name, turn: 1, children: children}
}

func agentNode(name string, turn int, children ...*mockNode) *mockNode {
	return &mockNode{name: name, turn: turn, children: children}
}

func (n *mockNode) est(v float64) *mockNode {
	n.estimate = v
	return n
}

func estimate(_ game.Game[*mockNode, string], n *mockNode, _ int) float64 {
	return n.estimate
}

// twoByTwo is the depth-2 tree max(min(3, 5), min(2, 9)).
func twoByTwo() *mockNode {
	return maxNode("A",
		minNode("B", leaf("B1", 3), leaf("B2", 5)),
		minNode("C", leaf("C1", 2), leaf("C2", 9)),
	)
}

type namedSearch struct {
	name   string
	search Algorithm[*mockNode, string]
}

// adversarial lists the searches that must agree with minimax.
func adversarial() []namedSearch {
	return []namedSearch{
		{minimaxName, Minimax[*mockNode, string]},
		{alphaBetaName, AlphaBeta[*mockNode, string]},
		{alphaBetaOrderedName, AlphaBetaOrdered[*mockNode, string]},
	}
}
