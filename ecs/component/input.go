package component

// Intents is one frame of raw input: every flag is the held state.
type Intents struct {
	Left          bool
	Right         bool
	Sprint        bool
	Jump          bool
	Fire          bool
	UpgradeWeapon bool
	UpgradeRegen  bool
	QuickHeal     bool
	Restart       bool
	Click         bool

	PointerX float64
	PointerY float64
}

// Input pairs held state with the flags that went down this frame.
type Input struct {
	Held    Intents
	Pressed Intents
}

// NewInput derives just-pressed flags from the previous and current frame.
func NewInput(prev, cur Intents) Input {
	return Input{
		Held: cur,
		Pressed: Intents{
			Left:          cur.Left && !prev.Left,
			Right:         cur.Right && !prev.Right,
			Sprint:        cur.Sprint && !prev.Sprint,
			Jump:          cur.Jump && !prev.Jump,
			Fire:          cur.Fire && !prev.Fire,
			UpgradeWeapon: cur.UpgradeWeapon && !prev.UpgradeWeapon,
			UpgradeRegen:  cur.UpgradeRegen && !prev.UpgradeRegen,
			QuickHeal:     cur.QuickHeal && !prev.QuickHeal,
			Restart:       cur.Restart && !prev.Restart,
			Click:         cur.Click && !prev.Click,
			PointerX:      cur.PointerX,
			PointerY:      cur.PointerY,
		},
	}
}

var InputComponent = NewComponent[Input]()
