package domain

import (
	"slices"
)

// NodeKind classifies a navigation tree node.
type NodeKind int

const (
	KindYear NodeKind = iota
	KindMonth
	KindDay
)

func (k NodeKind) String() string {
	switch k {
	case KindYear:
		return "Year"
	case KindMonth:
		return "Month"
	case KindDay:
		return "Day"
	default:
		return "Unknown"
	}
}

// Node is one element of the navigation tree. Year and Month nodes are
// containers; Day nodes are leaves carrying the entry filename and are
// never expandable.
type Node struct {
	Kind     NodeKind
	Label    string
	Filename string // Day nodes only
	Expanded bool

	parent   int // arena id, -1 for roots
	children []int
}

// Tree is the Year→Month→Day navigation hierarchy. Nodes live in an arena
// and are addressed by stable integer ids; paths into the tree are
// sequences of child indices starting at the root list.
type Tree struct {
	nodes  []Node
	roots  []int
	latest string // lexically greatest entry filename, "" when empty
}

// BuildTree groups entry filenames into a Year→Month→Day hierarchy.
// Filenames that do not follow the <8-digit-date>.md convention are
// discarded. Years, months and days are all ordered descending, so the
// most recent entry comes first. Exactly the Year/Month pair containing
// the most recent entry starts expanded.
func BuildTree(filenames []string) *Tree {
	var dates []string
	for _, name := range filenames {
		if date, ok := DateFromFilename(name); ok {
			dates = append(dates, date)
		}
	}
	// Descending lexical order is descending chronological order.
	slices.Sort(dates)
	slices.Reverse(dates)

	t := &Tree{}
	if len(dates) == 0 {
		return t
	}
	t.latest = EntryFilename(dates[0])

	yearID, monthID := -1, -1
	var curYear, curMonth string
	for _, date := range dates {
		if y := YearLabel(date); y != curYear {
			curYear, curMonth = y, ""
			yearID = t.alloc(Node{Kind: KindYear, Label: y, parent: -1})
			t.roots = append(t.roots, yearID)
		}
		if m := MonthLabel(date); m != curMonth {
			curMonth = m
			monthID = t.alloc(Node{Kind: KindMonth, Label: m, parent: yearID})
			t.nodes[yearID].children = append(t.nodes[yearID].children, monthID)
		}
		dayID := t.alloc(Node{
			Kind:     KindDay,
			Label:    DayLabel(date),
			Filename: EntryFilename(date),
			parent:   monthID,
		})
		t.nodes[monthID].children = append(t.nodes[monthID].children, dayID)
	}

	// The first root and its first month hold the latest entry.
	t.nodes[t.roots[0]].Expanded = true
	t.nodes[t.nodes[t.roots[0]].children[0]].Expanded = true
	return t
}

func (t *Tree) alloc(n Node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// Latest returns the filename of the most recent entry, or "" when the
// tree is empty.
func (t *Tree) Latest() string { return t.latest }

// Empty reports whether the tree holds no entries.
func (t *Tree) Empty() bool { return len(t.roots) == 0 }

// Node returns the arena node with the given id. The pointer aliases the
// arena, so expansion flags may be flipped through it.
func (t *Tree) Node(id int) *Node {
	return &t.nodes[id]
}

// NodeAt resolves a root-to-node index path to an arena id. It returns
// ok=false if any index is out of range at any depth.
func (t *Tree) NodeAt(path []int) (int, bool) {
	if len(path) == 0 {
		return 0, false
	}
	if path[0] < 0 || path[0] >= len(t.roots) {
		return 0, false
	}
	id := t.roots[path[0]]
	for _, idx := range path[1:] {
		kids := t.nodes[id].children
		if idx < 0 || idx >= len(kids) {
			return 0, false
		}
		id = kids[idx]
	}
	return id, true
}

// ToggleExpand sets the expansion flag of the node at path. Day nodes are
// never expandable; the call is a no-op for them and for unresolvable
// paths. It reports whether the tree changed.
func (t *Tree) ToggleExpand(path []int, expand bool) bool {
	id, ok := t.NodeAt(path)
	if !ok || t.nodes[id].Kind == KindDay {
		return false
	}
	if t.nodes[id].Expanded == expand {
		return false
	}
	t.nodes[id].Expanded = expand
	return true
}

// IsLastChild reports whether the node at path is the last child of its
// parent (or the last root for a depth-1 path). Used for connector glyph
// selection only.
func (t *Tree) IsLastChild(path []int) bool {
	id, ok := t.NodeAt(path)
	if !ok {
		return false
	}
	parent := t.nodes[id].parent
	if parent < 0 {
		return path[0] == len(t.roots)-1
	}
	kids := t.nodes[parent].children
	return len(kids) > 0 && kids[len(kids)-1] == id
}

// ExpandTo expands the Year and Month containing the given entry filename
// so its Day row becomes visible. It reports whether the filename exists
// in the tree.
func (t *Tree) ExpandTo(filename string) bool {
	for id := range t.nodes {
		n := &t.nodes[id]
		if n.Kind != KindDay || n.Filename != filename {
			continue
		}
		month := n.parent
		t.nodes[month].Expanded = true
		t.nodes[t.nodes[month].parent].Expanded = true
		return true
	}
	return false
}

// Row is one visible line of the flattened tree: the node's arena id, its
// indent depth, and the child-index path that reaches it.
type Row struct {
	ID    int
	Depth int
	Path  []int
}

// Flatten projects the tree into an ordered list of visible rows: a
// depth-first pre-order walk that recurses into a node's children only
// when it is expanded. The result is a pure function of the tree's
// expansion flags.
func (t *Tree) Flatten() []Row {
	var rows []Row
	for i, id := range t.roots {
		t.flattenNode(id, 0, []int{i}, &rows)
	}
	return rows
}

func (t *Tree) flattenNode(id, depth int, path []int, rows *[]Row) {
	*rows = append(*rows, Row{ID: id, Depth: depth, Path: slices.Clone(path)})
	if !t.nodes[id].Expanded {
		return
	}
	for i, child := range t.nodes[id].children {
		t.flattenNode(child, depth+1, append(path, i), rows)
	}
}
