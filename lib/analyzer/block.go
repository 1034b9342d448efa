package analyzer

import "fmt"

// BlockKind is the construct that opened a block.
type BlockKind int

const (
	Main BlockKind = iota
	For
	If
)

func (k BlockKind) String() string {
	switch k {
	case Main:
		return "MAIN"
	case For:
		return "FOR"
	case If:
		return "IF"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// BlockID is a handle to a block of the tree built by Analyze.
type BlockID int

const (
	// RootBlock is the Main block. It exists after every analysis.
	RootBlock BlockID = 0
	// NoBlock is the parent of the root.
	NoBlock BlockID = -1
)

// Block is a lexical scope region spanning [Start, End] lines.
type Block struct {
	Kind   BlockKind `json:"kind"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
	Closed bool      `json:"closed"`

	parent   BlockID
	children []BlockID
}

func (b Block) Contains(line int) bool {
	return b.Start <= line && line <= b.End
}

// blockTree owns every block of one analysis. Blocks refer to each other
// through indices into the arena.
type blockTree struct {
	blocks []Block
}

func newBlockTree(lastLine int) *blockTree {
	return &blockTree{blocks: []Block{{Kind: Main, Start: 0, End: lastLine, parent: NoBlock}}}
}

func (t *blockTree) open(parent BlockID, kind BlockKind, line, lastLine int) BlockID {
	id := BlockID(len(t.blocks))
	t.blocks = append(t.blocks, Block{Kind: kind, Start: line, End: lastLine, parent: parent})
	t.blocks[parent].children = append(t.blocks[parent].children, id)
	return id
}

func (t *blockTree) close(id BlockID, line int) BlockID {
	b := &t.blocks[id]
	b.End = line
	b.Closed = true
	return b.parent
}

// at returns the deepest block containing line. At each level the last child
// containing the line is chosen; sibling ranges are assumed not to overlap.
func (t *blockTree) at(line int) BlockID {
	current := RootBlock
	for {
		found := NoBlock
		for _, child := range t.blocks[current].children {
			if t.blocks[child].Contains(line) {
				found = child
			}
		}
		if found == NoBlock {
			return current
		}
		current = found
	}
}

// overlaps reports whether two sibling blocks share a line anywhere in the
// tree.
func (t *blockTree) overlaps() bool {
	for _, b := range t.blocks {
		for i, x := range b.children {
			for _, y := range b.children[i+1:] {
				bx, by := t.blocks[x], t.blocks[y]
				if bx.Start <= by.End && by.Start <= bx.End {
					return true
				}
			}
		}
	}
	return false
}
