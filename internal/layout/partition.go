package layout

import (
	"fmt"

	"github.com/mv-archer/repoworld-engine/internal/rng"
)

// BuildPartition recursively splits a width x height board into a binary
// tree of sub-rectangles. Leaves are the final regions eligible to host
// rooms. All randomness comes from g.
func BuildPartition(width, height int, g *rng.Generator, opts Options) *PartitionNode {
	root := &PartitionNode{
		Bounds: Bounds{X: 0, Y: 0, Width: width, Height: height},
		Depth:  0,
		Leaf:   true,
	}
	splitNode(root, g, opts)
	return root
}

func splitNode(node *PartitionNode, g *rng.Generator, opts Options) {
	if node.Depth >= opts.MaxDepth {
		return
	}

	// An axis is splittable when the node can hold two minimum rooms
	// plus their margins along it.
	minSplit := opts.MinRoomSize*2 + opts.RoomMargin*2
	canSplitWidth := node.Bounds.Width >= minSplit
	canSplitHeight := node.Bounds.Height >= minSplit
	if !canSplitWidth && !canSplitHeight {
		return
	}

	var splitWidth bool
	switch {
	case canSplitWidth && !canSplitHeight:
		splitWidth = true
	case canSplitHeight && !canSplitWidth:
		splitWidth = false
	default:
		aspect := float64(node.Bounds.Width) / float64(node.Bounds.Height)
		switch {
		case aspect > 1.25:
			splitWidth = g.Bool(0.8)
		case aspect < 0.8:
			splitWidth = !g.Bool(0.8)
		default:
			splitWidth = g.Bool(0.5)
		}
	}

	ratio := g.Float64Between(opts.SplitRatioMin, opts.SplitRatioMax)

	var left, right Bounds
	if splitWidth {
		cut := node.Bounds.X + int(float64(node.Bounds.Width)*ratio)
		left = Bounds{X: node.Bounds.X, Y: node.Bounds.Y, Width: cut - node.Bounds.X, Height: node.Bounds.Height}
		right = Bounds{X: cut, Y: node.Bounds.Y, Width: node.Bounds.X + node.Bounds.Width - cut, Height: node.Bounds.Height}
	} else {
		cut := node.Bounds.Y + int(float64(node.Bounds.Height)*ratio)
		left = Bounds{X: node.Bounds.X, Y: node.Bounds.Y, Width: node.Bounds.Width, Height: cut - node.Bounds.Y}
		right = Bounds{X: node.Bounds.X, Y: cut, Width: node.Bounds.Width, Height: node.Bounds.Y + node.Bounds.Height - cut}
	}

	if left.Width < opts.MinRoomSize || left.Height < opts.MinRoomSize ||
		right.Width < opts.MinRoomSize || right.Height < opts.MinRoomSize {
		return
	}

	node.Leaf = false
	node.Left = &PartitionNode{Bounds: left, Depth: node.Depth + 1, Leaf: true}
	node.Right = &PartitionNode{Bounds: right, Depth: node.Depth + 1, Leaf: true}
	splitNode(node.Left, g, opts)
	splitNode(node.Right, g, opts)
}

// Walk visits every node in pre-order.
func (n *PartitionNode) Walk(visit func(*PartitionNode)) {
	if n == nil {
		return
	}
	visit(n)
	n.Left.Walk(visit)
	n.Right.Walk(visit)
}

// Leaves collects all leaf nodes in pre-order.
func (n *PartitionNode) Leaves() []*PartitionNode {
	var leaves []*PartitionNode
	n.Walk(func(node *PartitionNode) {
		if node.Leaf {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// CountLeaves returns the number of leaf nodes.
func (n *PartitionNode) CountLeaves() int {
	count := 0
	n.Walk(func(node *PartitionNode) {
		if node.Leaf {
			count++
		}
	})
	return count
}

// MaxLeafDepth returns the depth of the deepest leaf.
func (n *PartitionNode) MaxLeafDepth() int {
	max := 0
	n.Walk(func(node *PartitionNode) {
		if node.Leaf && node.Depth > max {
			max = node.Depth
		}
	})
	return max
}

// Sibling returns the other child of child's parent, searching from
// root. It returns nil when child is the root or not in the tree.
func Sibling(root, child *PartitionNode) *PartitionNode {
	if root == nil || root == child {
		return nil
	}
	var sibling *PartitionNode
	root.Walk(func(node *PartitionNode) {
		if sibling != nil {
			return
		}
		if node.Left == child {
			sibling = node.Right
		} else if node.Right == child {
			sibling = node.Left
		}
	})
	return sibling
}

// LeafAt returns the leaf whose bounds contain p, or nil when p is
// outside the root bounds.
func (n *PartitionNode) LeafAt(p Point) *PartitionNode {
	if n == nil || !n.Bounds.Contains(p) {
		return nil
	}
	if n.Leaf {
		return n
	}
	if leaf := n.Left.LeafAt(p); leaf != nil {
		return leaf
	}
	return n.Right.LeafAt(p)
}

// ValidateTree structurally checks a partition tree and returns every
// violation found. It is a debugging aid for hand-constructed trees;
// trees built by BuildPartition always pass.
func ValidateTree(root *PartitionNode) []error {
	var errs []error
	root.Walk(func(node *PartitionNode) {
		b := node.Bounds
		if b.Width <= 0 || b.Height <= 0 {
			errs = append(errs, fmt.Errorf("node at depth %d has non-positive bounds %dx%d", node.Depth, b.Width, b.Height))
		}
		hasChildren := node.Left != nil || node.Right != nil
		if node.Leaf && hasChildren {
			errs = append(errs, fmt.Errorf("leaf at depth %d has children", node.Depth))
			return
		}
		if !node.Leaf {
			if node.Left == nil || node.Right == nil {
				errs = append(errs, fmt.Errorf("non-leaf at depth %d is missing a child", node.Depth))
				return
			}
			if !b.ContainsBounds(node.Left.Bounds) {
				errs = append(errs, fmt.Errorf("left child %+v escapes parent %+v", node.Left.Bounds, b))
			}
			if !b.ContainsBounds(node.Right.Bounds) {
				errs = append(errs, fmt.Errorf("right child %+v escapes parent %+v", node.Right.Bounds, b))
			}
			if node.Left.Bounds.Overlaps(node.Right.Bounds) {
				errs = append(errs, fmt.Errorf("children overlap under parent %+v", b))
			}
			if node.Left.Bounds.Area()+node.Right.Bounds.Area() != b.Area() {
				errs = append(errs, fmt.Errorf("children of %+v do not tile it: %d+%d != %d",
					b, node.Left.Bounds.Area(), node.Right.Bounds.Area(), b.Area()))
			}
		}
	})
	return errs
}
