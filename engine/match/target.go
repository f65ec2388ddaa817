package match

import (
	"strconv"

	"marnewatch/engine/marne"
)

type targetKind int

const (
	targetUnset targetKind = iota
	targetByName
	targetByID
)

// Target identifies the server the monitor follows, by exact name or by
// numeric id. The zero value matches nothing.
type Target struct {
	kind targetKind
	name string
	id   int64
}

func ByName(name string) Target {
	return Target{kind: targetByName, name: name}
}

func ByID(id int64) Target {
	return Target{kind: targetByID, id: id}
}

func (t Target) String() string {
	switch t.kind {
	case targetByName:
		return "name " + strconv.Quote(t.name)
	case targetByID:
		return "id " + strconv.FormatInt(t.id, 10)
	default:
		return "unset target"
	}
}

func (t Target) matches(server marne.ServerInfo) bool {
	switch t.kind {
	case targetByName:
		return server.Name == t.name
	case targetByID:
		return server.ID == t.id
	default:
		return false
	}
}
