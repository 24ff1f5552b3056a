package engine

// Intent is a bit set of movement requests for the next tick
type Intent uint8

const (
	IntentForward Intent = 1 << iota
	IntentBackward
	IntentTurnLeft
	IntentTurnRight

	IntentNone Intent = 0
)

// Has reports whether every bit of flag is set
func (i Intent) Has(flag Intent) bool {
	return i&flag == flag && flag != 0
}

func (i Intent) String() string {
	if i == IntentNone {
		return "none"
	}
	s := ""
	for _, f := range []struct {
		flag Intent
		name string
	}{
		{IntentForward, "forward"},
		{IntentBackward, "backward"},
		{IntentTurnLeft, "left"},
		{IntentTurnRight, "right"},
	} {
		if i.Has(f.flag) {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	return s
}
