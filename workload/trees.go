package workload

// node is a perfect binary tree: either a leaf or a branch owning exactly
// two subtrees. No other shape can be constructed.
type node interface {
	count() int
}

type leaf struct{}

type branch struct {
	left, right node
}

func (leaf) count() int { return 1 }

func (b *branch) count() int {
	return 1 + b.left.count() + b.right.count()
}

// BinaryTrees builds a perfect binary tree of the given depth and returns
// its node count.
func BinaryTrees(depth int) int {
	return buildTree(depth).count()
}

func buildTree(depth int) node {
	if depth <= 0 {
		return leaf{}
	}

	return &branch{
		left:  buildTree(depth - 1),
		right: buildTree(depth - 1),
	}
}
