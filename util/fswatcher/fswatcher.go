package fswatcher

import (
	"path/filepath"
	"strings"
)

type Watcher interface {
	Add(name string) error
	Remove(name string) error
	Events() <-chan any
	OpMask() *Op
	Close() error
}

//----------

type Event struct {
	Op      Op
	Name    string
	SubName string
}

func (ev *Event) JoinNames() string {
	return filepath.Join(ev.Name, ev.SubName)
}

//----------

type Op uint16

const (
	Attrib Op = 1 << iota
	Create
	Modify // write, truncate
	Remove
	Rename

	AllOps Op = Attrib | Create | Modify | Remove | Rename
)

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }
func (op *Op) Add(op2 Op)        { *op |= op2 }
func (op *Op) Remove(op2 Op)     { *op &^= op2 }

func (op Op) String() string {
	m := map[Op]string{
		Attrib: "attrib",
		Create: "create",
		Modify: "modify",
		Remove: "remove",
		Rename: "rename",
	}
	u := []string{}
	for o := Op(1); o <= Rename; o <<= 1 {
		if op.HasAny(o) {
			u = append(u, m[o])
		}
	}
	return strings.Join(u, "|")
}
