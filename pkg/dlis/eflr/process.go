package eflr

// SetTypeProcess is the class set type of process objects.
const SetTypeProcess = "PROCESS"

// Process describes a computational step that consumed and produced
// channels, computations, and parameters.
type Process struct {
	*Item
}

// NewProcessSet creates a process set with an optional set name.
func NewProcessSet(name string) *Set {
	return NewSet(SetTypeProcess, LRStatic, name)
}

// NewProcess creates a process object registered with the given set.
func NewProcess(set *Set, name string) *Process {
	it := newItem(set, name,
		textAttr("DESCRIPTION"),
		textAttr("TRADEMARK-NAME"),
		textAttr("VERSION"),
		identListAttr("PROPERTIES"),
		identAttr("STATUS"),
		refListAttr("INPUT-CHANNELS"),
		refListAttr("OUTPUT-CHANNELS"),
		refListAttr("INPUT-COMPUTATIONS"),
		refListAttr("OUTPUT-COMPUTATIONS"),
		refListAttr("PARAMETERS"),
		textListAttr("COMMENTS"),
	)
	return &Process{Item: it}
}

// Status returns the declared process status, empty when unset.
func (p *Process) Status() string {
	return p.Attr("STATUS").FirstString()
}
