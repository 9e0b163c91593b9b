package game

// Key identifies a directional input the player paddle responds to
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
)

var keyName = map[Key]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
}

func (k Key) String() string {
	return keyName[k]
}

// EdgeKind is the transition direction of a key
type EdgeKind uint8

const (
	EdgeDown EdgeKind = iota
	EdgeUp
)

func (e EdgeKind) String() string {
	if e == EdgeUp {
		return "up"
	}
	return "down"
}

// Edge is a discrete key transition delivered by the frame driver
type Edge struct {
	Kind EdgeKind
	Key  Key
}

// Down returns a key-down edge for k
func Down(k Key) Edge { return Edge{Kind: EdgeDown, Key: k} }

// Up returns a key-up edge for k
func Up(k Key) Edge { return Edge{Kind: EdgeUp, Key: k} }

func (e Edge) String() string {
	return e.Key.String() + ":" + e.Kind.String()
}
