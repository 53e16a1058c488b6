package config

// Action is a game input a key can be bound to.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionDown
	ActionRotate
	ActionPause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionRotate:
		return "rotate"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyMap lists the key names bound to each action. Key names are the ones
// bubbletea reports, e.g. "left", "ctrl+c", "h".
type KeyMap struct {
	Left   []string `hcl:"left,optional"`
	Right  []string `hcl:"right,optional"`
	Down   []string `hcl:"down,optional"`
	Rotate []string `hcl:"rotate,optional"`
	Pause  []string `hcl:"pause,optional"`
	Quit   []string `hcl:"quit,optional"`
}

func DefaultKeys() *KeyMap {
	return &KeyMap{
		Left:   []string{"left", "h"},
		Right:  []string{"right", "l"},
		Down:   []string{"down", "j"},
		Rotate: []string{"up", "k", "x"},
		Pause:  []string{"p"},
		Quit:   []string{"q", "esc"},
	}
}

func (k *KeyMap) fill(defaults *KeyMap) {
	if len(k.Left) == 0 {
		k.Left = defaults.Left
	}
	if len(k.Right) == 0 {
		k.Right = defaults.Right
	}
	if len(k.Down) == 0 {
		k.Down = defaults.Down
	}
	if len(k.Rotate) == 0 {
		k.Rotate = defaults.Rotate
	}
	if len(k.Pause) == 0 {
		k.Pause = defaults.Pause
	}
	if len(k.Quit) == 0 {
		k.Quit = defaults.Quit
	}
}

// Bindings flattens the map into key name -> action. When a key is listed
// under several actions the first in declaration order wins.
func (k *KeyMap) Bindings() map[string]Action {
	bindings := make(map[string]Action)
	groups := []struct {
		action Action
		keys   []string
	}{
		{ActionLeft, k.Left},
		{ActionRight, k.Right},
		{ActionDown, k.Down},
		{ActionRotate, k.Rotate},
		{ActionPause, k.Pause},
		{ActionQuit, k.Quit},
	}
	for _, group := range groups {
		for _, key := range group.keys {
			if _, taken := bindings[key]; !taken {
				bindings[key] = group.action
			}
		}
	}
	return bindings
}

// Lookup returns the action bound to key, or ActionNone.
func (k *KeyMap) Lookup(key string) Action {
	return k.Bindings()[key]
}
