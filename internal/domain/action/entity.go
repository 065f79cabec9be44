package action

import (
	"strings"
	"time"
)

// Action is what a user declared before sending a location.
type Action string

const (
	Arrive Action = "arrive"
	Leave  Action = "leave"
)

// aliases maps accepted inputs, including the chat button captions, onto actions.
var aliases = map[string]Action{
	"arrive": Arrive,
	"пришел": Arrive,
	"пришёл": Arrive,
	"leave":  Leave,
	"ушел":   Leave,
	"ушёл":   Leave,
}

// Parse maps free text onto an Action.
func Parse(s string) (Action, error) {
	a, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrUnknownAction
	}
	return a, nil
}

type PendingAction struct {
	UserID     int64
	Action     Action
	DeclaredAt time.Time
}
