package dom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText       PatchOp = 0x01 // Update text content
	PatchSetProp       PatchOp = 0x02 // Set/update a direct property
	PatchRemoveProp    PatchOp = 0x03 // Remove a direct property
	PatchSetDataset    PatchOp = 0x04 // Set/update a dataset entry
	PatchRemoveDataset PatchOp = 0x05 // Remove a dataset entry
	PatchInsertChild   PatchOp = 0x06 // Insert a new child node
	PatchRemoveChild   PatchOp = 0x07 // Remove a child node
	PatchMoveChild     PatchOp = 0x08 // Move a child to a new position
	PatchReplaceNode   PatchOp = 0x09 // Replace node contents in place
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetProp:
		return "SetProp"
	case PatchRemoveProp:
		return "RemoveProp"
	case PatchSetDataset:
		return "SetDataset"
	case PatchRemoveDataset:
		return "RemoveDataset"
	case PatchInsertChild:
		return "InsertChild"
	case PatchRemoveChild:
		return "RemoveChild"
	case PatchMoveChild:
		return "MoveChild"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// Patch represents a single tree operation to apply.
type Patch struct {
	Op     PatchOp // Operation type
	Target *Node   // Node the operation applies to (the parent for child ops)
	Key    string  // Prop or dataset key
	Value  any     // New value (string for SetText/SetDataset)
	Child  *Node   // Child for child ops, replacement for ReplaceNode
	Index  int     // Child position for InsertChild/MoveChild
}

// Apply executes patches against the live tree they were diffed from.
// Patches must be applied in the order Diff produced them.
func Apply(patches []Patch) {
	for _, p := range patches {
		applyPatch(p)
	}
}

func applyPatch(p Patch) {
	if p.Target == nil {
		return
	}
	switch p.Op {
	case PatchSetText:
		if s, ok := p.Value.(string); ok {
			p.Target.Text = s
		}
	case PatchSetProp:
		p.Target.SetProp(p.Key, p.Value)
	case PatchRemoveProp:
		delete(p.Target.Props, p.Key)
	case PatchSetDataset:
		if s, ok := p.Value.(string); ok {
			p.Target.SetDataset(p.Key, s)
		}
	case PatchRemoveDataset:
		delete(p.Target.Dataset, p.Key)
	case PatchInsertChild:
		p.Target.InsertChild(p.Child, p.Index)
	case PatchRemoveChild:
		p.Target.RemoveChild(p.Child)
	case PatchMoveChild:
		if p.Target.RemoveChild(p.Child) {
			p.Target.InsertChild(p.Child, p.Index)
		}
	case PatchReplaceNode:
		if p.Child != nil {
			p.Target.replaceWith(p.Child)
		}
	}
}

// replaceWith overwrites the node's contents with those of other. The
// node keeps its identity, so references into the tree stay valid.
func (n *Node) replaceWith(other *Node) {
	n.Kind = other.Kind
	n.Tag = other.Tag
	n.Namespace = other.Namespace
	n.Props = other.Props
	n.Dataset = other.Dataset
	n.Children = other.Children
	n.Text = other.Text
}
