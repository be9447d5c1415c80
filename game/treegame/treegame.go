// Package treegame describes a game as an explicit tree read from YAML.
//
//	root: A
//	agents: 2
//	nodes:
//	  - {id: A, turn: 0, children: [B, C]}
//	  - {id: B, turn: 1, children: [B1, B2], estimate: 3}
//	  - {id: B1, values: [3, -3]}
//
// States are node ids and the action leading to a child is the child's id.
package treegame

import (
	"errors"
	"fmt"
	"os"

	"statesearch/game"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTree = errors.New("invalid game tree")

type Node struct {
	ID       string    `yaml:"id"`
	Turn     int       `yaml:"turn"`
	Children []string  `yaml:"children,omitempty"`
	Values   []float64 `yaml:"values,omitempty"` // Set only on terminal nodes
	Estimate float64   `yaml:"estimate,omitempty"`
}

type document struct {
	Root   string `yaml:"root"`
	Agents int    `yaml:"agents"`
	Nodes  []Node `yaml:"nodes"`
}

// Tree is immutable once built and safe for concurrent searches.
type Tree struct {
	root   string
	agents int
	nodes  map[string]*Node
}

var _ game.Game[string, string] = (*Tree)(nil)

func Parse(data []byte) (*Tree, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode game tree: %w", err)
	}
	return New(doc.Root, doc.Agents, doc.Nodes)
}

func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game tree: %w", err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// New validates nodes and builds a tree. agents is inferred from the turns
// and value vectors when zero.
func New(root string, agents int, nodes []Node) (*Tree, error) {
	t := &Tree{
		root:   root,
		agents: agents,
		nodes:  make(map[string]*Node, len(nodes)),
	}
	for i := range nodes {
		n := &nodes[i]
		if n.ID == "" {
			return nil, fmt.Errorf("node %d has no id: %w", i, ErrInvalidTree)
		}
		if _, ok := t.nodes[n.ID]; ok {
			return nil, fmt.Errorf("duplicate node %q: %w", n.ID, ErrInvalidTree)
		}
		if n.Values != nil && len(n.Children) > 0 {
			return nil, fmt.Errorf("terminal node %q has children: %w", n.ID, ErrInvalidTree)
		}
		if n.Turn < 0 {
			return nil, fmt.Errorf("node %q has negative turn %d: %w", n.ID, n.Turn, ErrInvalidTree)
		}
		t.nodes[n.ID] = n
		if agents == 0 {
			t.agents = max(t.agents, n.Turn+1, len(n.Values))
		}
	}

	if _, ok := t.nodes[root]; !ok {
		return nil, fmt.Errorf("unknown root %q: %w", root, ErrInvalidTree)
	}
	for _, n := range t.nodes {
		if n.Turn >= t.agents {
			return nil, fmt.Errorf("node %q turn %d with %d agents: %w", n.ID, n.Turn, t.agents, ErrInvalidTree)
		}
		if n.Values != nil && len(n.Values) != t.agents {
			return nil, fmt.Errorf("node %q has %d values for %d agents: %w", n.ID, len(n.Values), t.agents, ErrInvalidTree)
		}
		for _, c := range n.Children {
			if _, ok := t.nodes[c]; !ok {
				return nil, fmt.Errorf("node %q has unknown child %q: %w", n.ID, c, ErrInvalidTree)
			}
		}
	}
	if err := t.checkAcyclic(nodes); err != nil {
		return nil, err
	}
	return t, nil
}

const (
	unvisited = iota
	onPath
	finished
)

// checkAcyclic rejects any edge back to a node on the current path. Children
// shared between parents are allowed.
func (t *Tree) checkAcyclic(order []Node) error {
	colour := make(map[string]int, len(t.nodes))
	var visit func(id string) error
	visit = func(id string) error {
		colour[id] = onPath
		for _, c := range t.nodes[id].Children {
			switch colour[c] {
			case onPath:
				return fmt.Errorf("cycle from %q back to %q: %w", id, c, ErrInvalidTree)
			case unvisited:
				if err := visit(c); err != nil {
					return err
				}
			}
		}
		colour[id] = finished
		return nil
	}

	for _, n := range order {
		if colour[n.ID] == unvisited {
			if err := visit(n.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Tree) Root() string {
	return t.root
}

func (t *Tree) Agents() int {
	return t.agents
}

func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (t *Tree) Turn(state string) int {
	return t.node(state).Turn
}

func (t *Tree) IsTerminal(state string) (bool, []float64) {
	n := t.node(state)
	if n.Values == nil {
		return false, nil
	}
	return true, append([]float64(nil), n.Values...)
}

func (t *Tree) Actions(state string) []string {
	return append([]string(nil), t.node(state).Children...)
}

func (t *Tree) Successor(state string, action string) string {
	if _, ok := t.nodes[action]; !ok {
		panic(fmt.Sprintf("no child %q under %q", action, state))
	}
	return action
}

func (t *Tree) node(id string) *Node {
	n, ok := t.nodes[id]
	if !ok {
		panic(fmt.Sprintf("unknown node %q", id))
	}
	return n
}

// Heuristic reads the estimate stored on a node. Terminal nodes without an
// estimate evaluate to their value for the agent.
func Heuristic(g game.Game[string, string], state string, agent int) float64 {
	t, ok := g.(*Tree)
	if !ok {
		return 0
	}
	n := t.node(state)
	if n.Estimate == 0 && n.Values != nil {
		return n.Values[agent]
	}
	return n.Estimate
}
