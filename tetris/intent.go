package tetris

import "strings"

// Intent is a discrete player action delivered by the input layer.
type Intent uint8

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
	IntentHold
	IntentTogglePause
	IntentRestart
	intentCount
)

var intentNames = [...]string{
	IntentMoveLeft:    "moveLeft",
	IntentMoveRight:   "moveRight",
	IntentSoftDrop:    "softDown",
	IntentRotate:      "rotate",
	IntentHardDrop:    "hardDrop",
	IntentHold:        "hold",
	IntentTogglePause: "togglePause",
	IntentRestart:     "restart",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// IntentSet is the set of intents pending for the next tick.
// Submitting the same intent twice before a tick has no extra effect.
type IntentSet uint16

// Add marks intent as pending.
func (s *IntentSet) Add(intent Intent) {
	if intent < intentCount {
		*s |= 1 << intent
	}
}

// Has reports whether intent is pending.
func (s IntentSet) Has(intent Intent) bool {
	return intent < intentCount && s&(1<<intent) != 0
}

// Empty reports whether no intent is pending.
func (s IntentSet) Empty() bool {
	return s == 0
}

func (s IntentSet) String() string {
	var names []string
	for i := range intentCount {
		if s.Has(i) {
			names = append(names, i.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
