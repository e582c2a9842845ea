package colview

import "sort"

// groupState is the draw state of a group branch within its art-column slot
// for the line currently being printed.
type groupState int

const (
	stateNone groupState = iota
	stateFirstMember
	stateMiddleMember
	stateLastMember
	stateContMembers
	stateMiddleChild
	stateLastChild
	stateContChildren
)

// grpsetChunk is the number of art cells one group slot occupies.
const grpsetChunk = 3

// Group ties a set of member lines together and optionally connects them to
// child lines below the last member. The connector art is drawn into the
// tree column of every line the group spans.
type Group struct {
	members  []*Line
	children []*Line

	state    groupState
	slot     int
	finished bool
}

// NewGroup registers an empty group on the table.
func (tb *Table) NewGroup() *Group {
	g := &Group{slot: -1}
	tb.groups = append(tb.groups, g)
	return g
}

// AddMember adds ln to the group's member set.
func (g *Group) AddMember(ln *Line) { g.members = append(g.members, ln) }

// AddChild adds ln to the group's child set.
func (g *Group) AddChild(ln *Line) { g.children = append(g.children, ln) }

func (g *Group) firstLine() *Line {
	if len(g.members) == 0 {
		return nil
	}
	return g.members[0]
}

func (g *Group) lastLine() *Line {
	if len(g.children) > 0 {
		return g.children[len(g.children)-1]
	}
	if len(g.members) > 0 {
		return g.members[len(g.members)-1]
	}
	return nil
}

// stateFor classifies ln relative to the group: a member position, a child
// position, or a vertical continuation between them.
func (g *Group) stateFor(ln *Line) groupState {
	if i := indexLine(g.members, ln); i >= 0 {
		switch {
		case i == len(g.members)-1:
			return stateLastMember
		case i == 0:
			return stateFirstMember
		default:
			return stateMiddleMember
		}
	}
	if i := indexLine(g.children, ln); i >= 0 {
		if i == len(g.children)-1 {
			return stateLastChild
		}
		return stateMiddleChild
	}
	if len(g.members) > 0 && ln.walkIdx < g.members[len(g.members)-1].walkIdx {
		return stateContMembers
	}
	return stateContChildren
}

func indexLine(lines []*Line, ln *Line) int {
	for i, l := range lines {
		if l == ln {
			return i
		}
	}
	return -1
}

// fixGroupOrder sorts every group's members and children into tree order so
// first/middle/last classification matches the print order. Walk indexes
// must be assigned first.
func (tb *Table) fixGroupOrder() {
	for _, g := range tb.groups {
		sort.SliceStable(g.members, func(i, j int) bool {
			return g.members[i].walkIdx < g.members[j].walkIdx
		})
		sort.SliceStable(g.children, func(i, j int) bool {
			return g.children[i].walkIdx < g.children[j].walkIdx
		})
	}
}

// assignWalkOrder numbers every line by its pre-order position.
func (tb *Table) assignWalkOrder() {
	idx := 0
	var walk func(ln *Line)
	walk = func(ln *Line) {
		ln.walkIdx = idx
		idx++
		for _, ch := range ln.children {
			walk(ch)
		}
	}
	for _, root := range tb.rootLines() {
		walk(root)
	}
}

// computeGrpsetSize returns the art-cell count needed for the maximum number
// of simultaneously active groups over the print order.
func (tb *Table) computeGrpsetSize() int {
	n := len(tb.lines)
	if n == 0 {
		return 0
	}
	delta := make([]int, n+1)
	for _, g := range tb.groups {
		first, last := g.firstLine(), g.lastLine()
		if first == nil || last == nil {
			continue
		}
		delta[first.walkIdx]++
		if last.walkIdx+1 <= n {
			delta[last.walkIdx+1]--
		}
	}
	active, peak := 0, 0
	for _, d := range delta {
		active += d
		if active > peak {
			peak = active
		}
	}
	return peak * grpsetChunk
}

// updateGrpset maintains the group-set slots for the line about to be
// printed: frees slots of groups that ended, claims slots for groups whose
// first member is ln, and refreshes every active group's draw state.
func (tb *Table) updateGrpset(ln *Line) {
	for i := 0; i < len(tb.grpset); i += grpsetChunk {
		g := tb.grpset[i]
		if g != nil && g.finished {
			tb.grpset[i] = nil
			g.slot = -1
		}
	}

	for _, g := range tb.groups {
		if g.firstLine() != ln || g.slot >= 0 {
			continue
		}
		slot := -1
		for i := 0; i < len(tb.grpset); i += grpsetChunk {
			if tb.grpset[i] == nil {
				slot = i
				break
			}
		}
		if slot < 0 {
			slot = len(tb.grpset)
			tb.grpset = append(tb.grpset, make([]*Group, grpsetChunk)...)
		}
		g.slot = slot
		g.finished = false
		tb.grpset[slot] = g
	}

	for i := 0; i < len(tb.grpset); i += grpsetChunk {
		g := tb.grpset[i]
		if g == nil {
			continue
		}
		g.state = g.stateFor(ln)
		if g.lastLine() == ln {
			g.finished = true
		}
	}
}
