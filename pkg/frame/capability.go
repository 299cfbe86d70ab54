package frame

// IsCapable is satisfied by every stage from NewIs onwards.
type IsCapable interface {
	View() *Frame
	Predicates() Is
}

// GetCapable is satisfied by every stage from NewGet onwards.
type GetCapable interface {
	IsCapable
	Accessors() Get
}

// MakeCapable is satisfied by every stage from NewMake onwards.
type MakeCapable interface {
	GetCapable
	Factory() Make
}

// NodeCapable is satisfied by every stage from NewNode onwards.
type NodeCapable interface {
	MakeCapable
	Structure() Structure
}

// IsFrame is the stage produced by NewIs.
type IsFrame struct {
	*Frame
	Is Is
}

func (f *IsFrame) View() *Frame { return f.Frame }
func (f *IsFrame) Predicates() Is { return f.Is }

// GetFrame is the stage produced by NewGet.
type GetFrame struct {
	*Frame
	Is  Is
	Get Get
}

func (f *GetFrame) View() *Frame { return f.Frame }
func (f *GetFrame) Predicates() Is { return f.Is }
func (f *GetFrame) Accessors() Get { return f.Get }

// MakeFrame is the stage produced by NewMake.
type MakeFrame struct {
	*Frame
	Is   Is
	Get  Get
	Make Make
}

func (f *MakeFrame) View() *Frame { return f.Frame }
func (f *MakeFrame) Predicates() Is { return f.Is }
func (f *MakeFrame) Accessors() Get { return f.Get }
func (f *MakeFrame) Factory() Make { return f.Make }

// NodeFrame is the stage produced by NewNode.
type NodeFrame struct {
	*Frame
	Is   Is
	Get  Get
	Make Make
	Node Structure
}

func (f *NodeFrame) View() *Frame { return f.Frame }
func (f *NodeFrame) Predicates() Is { return f.Is }
func (f *NodeFrame) Accessors() Get { return f.Get }
func (f *NodeFrame) Factory() Make { return f.Make }
func (f *NodeFrame) Structure() Structure { return f.Node }

var (
	_ IsCapable   = (*IsFrame)(nil)
	_ GetCapable  = (*GetFrame)(nil)
	_ MakeCapable = (*MakeFrame)(nil)
	_ NodeCapable = (*NodeFrame)(nil)
)
