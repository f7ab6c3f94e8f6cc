package structs

import "fmt"

type FreezeFlag uint8

const (
	Unfrozen FreezeFlag = iota
	Frozen
)

func (f FreezeFlag) String() string {
	switch f {
	case Unfrozen:
		return "unfrozen"
	case Frozen:
		return "frozen"
	default:
		return fmt.Sprintf("FreezeFlag(%d)", uint8(f))
	}
}

// Flip returns the opposite flag, as applied by a freeze or unfreeze transaction.
func (f FreezeFlag) Flip() FreezeFlag {
	if f == Frozen {
		return Unfrozen
	}
	return Frozen
}
