package physics

import (
	"github.com/cockroachdb/errors"

	"github.com/lixenwraith/fixkernel/vmath"
)

// ErrCycle reports an attachment that would make a node its own ancestor
var ErrCycle = errors.New("node hierarchy cycle")

// Node is an element of a transform hierarchy
// The local transform is TRS(Translation, Rotation, Scale), Rotation in degrees applied Z, X, Y
// World transforms compose parent first: World = parent.World · Local
type Node struct {
	Name        string
	Translation vmath.Vec3
	Rotation    vmath.Vec3
	Scale       vmath.Vec3

	parent   *Node
	children []*Node
}

// NewNode returns a node with identity local transform
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: vmath.V3Int(1, 1, 1)}
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return n.children }

// Attach makes child a child of n, detaching it from any previous parent
func (n *Node) Attach(child *Node) error {
	for p := n; p != nil; p = p.parent {
		if p == child {
			return errors.Wrapf(ErrCycle, "attach %q under %q", child.Name, n.Name)
		}
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Detach removes n from its parent; a root is unchanged
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			last := len(p.children) - 1
			copy(p.children[i:], p.children[i+1:])
			// Clear the vacated slot so the backing array does not keep n alive
			p.children[last] = nil
			p.children = p.children[:last]
			break
		}
	}
	n.parent = nil
}

// Local returns the node's own transform
func (n *Node) Local() (vmath.Mat4, error) {
	m, err := vmath.TRS(n.Translation, n.Rotation, n.Scale)
	if err != nil {
		return vmath.Mat4{}, errors.Wrapf(err, "node %q", n.Name)
	}
	return m, nil
}

// World returns the transform from the node's space to the root's parent space
func (n *Node) World() (vmath.Mat4, error) {
	local, err := n.Local()
	if err != nil || n.parent == nil {
		return local, err
	}
	pw, err := n.parent.World()
	if err != nil {
		return vmath.Mat4{}, err
	}
	return pw.Mul(local)
}

// WorldPoint maps a point in the node's space to world space
func (n *Node) WorldPoint(p vmath.Vec3) (vmath.Vec3, error) {
	w, err := n.World()
	if err != nil {
		return vmath.Vec3{}, err
	}
	return w.TransformPoint(p)
}

// Walk visits n and its descendants depth-first with each node's world transform,
// computing every parent product once
// A non-nil error from fn stops the walk and is returned
func (n *Node) Walk(fn func(*Node, vmath.Mat4) error) error {
	var parent vmath.Mat4
	if n.parent != nil {
		var err error
		if parent, err = n.parent.World(); err != nil {
			return err
		}
	} else {
		parent = vmath.Identity()
	}
	return n.walk(parent, fn)
}

func (n *Node) walk(parent vmath.Mat4, fn func(*Node, vmath.Mat4) error) error {
	local, err := n.Local()
	if err != nil {
		return err
	}
	world, err := parent.Mul(local)
	if err != nil {
		return err
	}
	if err := fn(n, world); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := c.walk(world, fn); err != nil {
			return err
		}
	}
	return nil
}
