package org

type NodeType string

const (
	TypeRoot       NodeType = "root"
	TypeDepartment NodeType = "department"
	TypeTeam       NodeType = "team"
)

// Node is one unit of the organizational tree. IsCulturalDriver marks
// units whose occupants stand in for lived leadership culture; the
// flag is independent of tree position.
type Node struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             NodeType `json:"type"`
	IsCulturalDriver bool     `json:"is_cultural_driver"`
	Children         []*Node  `json:"children,omitempty"`
}

// Walk visits every node in pre-order depth-first order, calling visit
// with the node and its parent (nil for the root). The tree must be
// acyclic with unique node ids; the walker does not detect cycles and
// will recurse forever on one.
func Walk(root *Node, visit func(node, parent *Node)) {
	if root == nil {
		return
	}
	walk(root, nil, visit)
}

func walk(n, parent *Node, visit func(node, parent *Node)) {
	visit(n, parent)
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		walk(child, n, visit)
	}
}

// Find returns the node with the given id, or nil.
func Find(root *Node, id string) *Node {
	var found *Node
	Walk(root, func(n, _ *Node) {
		if found == nil && n.ID == id {
			found = n
		}
	})
	return found
}
