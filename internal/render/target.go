package render

// Target receives mutations from a mounted block tool. Style transitions swap
// the whole subtree through Replace; width and thickness adjustments while
// the rule stays mounted arrive as PatchAttribute so the surface can mutate
// in place without losing focus or scroll position on adjacent content.
type Target interface {
	// Replace swaps the mounted subtree for next.
	Replace(next *Node)

	// PatchAttribute mutates a single attribute of the node at the given
	// child index path. Attribute names follow Node.ApplyAttribute.
	PatchAttribute(path []int, name, value string)
}

// OpKind discriminates recorded target operations.
type OpKind string

const (
	OpReplace OpKind = "replace"
	OpPatch   OpKind = "patch"
)

// Op is one recorded mutation.
type Op struct {
	Kind  OpKind
	Node  *Node
	Path  []int
	Name  string
	Value string
}

// Recorder is a Target that records the operation stream. It backs tests and
// any host that wants to diff mutations instead of applying them eagerly.
type Recorder struct {
	Ops []Op
}

// Replace records a subtree swap.
func (r *Recorder) Replace(next *Node) {
	r.Ops = append(r.Ops, Op{Kind: OpReplace, Node: next})
}

// PatchAttribute records an in-place attribute mutation.
func (r *Recorder) PatchAttribute(path []int, name, value string) {
	r.Ops = append(r.Ops, Op{Kind: OpPatch, Path: append([]int(nil), path...), Name: name, Value: value})
}

// Replaces returns the recorded subtree swaps, in order.
func (r *Recorder) Replaces() []Op {
	return r.byKind(OpReplace)
}

// Patches returns the recorded attribute patches, in order.
func (r *Recorder) Patches() []Op {
	return r.byKind(OpPatch)
}

func (r *Recorder) byKind(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
