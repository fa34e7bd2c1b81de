package sprite

import "github.com/oliverbestmann/spritekit/glm"

// Node is the scene graph node a Component is attached to.
type Node interface {
	ContentSize() glm.Vec2f
	SetContentSize(size glm.Vec2f)

	// AnchorPoint is the normalized position of the node origin within
	// its content rectangle.
	AnchorPoint() glm.Vec2f
}

// BasicNode is a minimal Node, enough for hosts without a scene graph.
type BasicNode struct {
	Size   glm.Vec2f
	Anchor glm.Vec2f
}

// NewBasicNode creates a node with its anchor at the center.
func NewBasicNode(size glm.Vec2f) *BasicNode {
	return &BasicNode{Size: size, Anchor: glm.Vec2f{0.5, 0.5}}
}

func (n *BasicNode) ContentSize() glm.Vec2f {
	return n.Size
}

func (n *BasicNode) SetContentSize(size glm.Vec2f) {
	n.Size = size
}

func (n *BasicNode) AnchorPoint() glm.Vec2f {
	return n.Anchor
}
