package toast

// ActionType names a state transition.
type ActionType string

const (
	ActionAdd     ActionType = "ADD_TOAST"
	ActionUpdate  ActionType = "UPDATE_TOAST"
	ActionDismiss ActionType = "DISMISS_TOAST"
	ActionRemove  ActionType = "REMOVE_TOAST"
)

// Action is the single input to the reducer.
type Action struct {
	Type ActionType
	// Toast is the record to insert for ActionAdd.
	Toast Toast
	// Patch holds the fields to merge for ActionUpdate.
	Patch Partial
	// ToastID targets update, dismiss and remove. Empty means every toast
	// for dismiss and remove.
	ToastID string
}

// State is the list of held toasts, newest first.
type State struct {
	Toasts []Toast
}

// clone returns a State whose slice does not alias s.
func (s State) clone() State {
	if s.Toasts == nil {
		return State{}
	}
	out := make([]Toast, len(s.Toasts))
	copy(out, s.Toasts)
	return State{Toasts: out}
}

// Reduce applies action to state using DefaultLimit.
func Reduce(state State, action Action) State {
	return reduce(state, action, DefaultLimit)
}

// reduce is pure: it never mutates state.Toasts. Unknown action types
// return state unchanged.
func reduce(state State, action Action, limit int) State {
	switch action.Type {
	case ActionAdd:
		n := len(state.Toasts) + 1
		if n > limit {
			n = limit
		}
		if n <= 0 {
			return State{Toasts: []Toast{}}
		}
		out := make([]Toast, 0, n)
		out = append(out, action.Toast)
		for _, t := range state.Toasts {
			if len(out) == n {
				break
			}
			out = append(out, t)
		}
		return State{Toasts: out}

	case ActionUpdate:
		next := state.clone()
		for i, t := range next.Toasts {
			if t.ID == action.ToastID {
				next.Toasts[i] = action.Patch.apply(t)
			}
		}
		return next

	case ActionDismiss:
		next := state.clone()
		for i, t := range next.Toasts {
			if action.ToastID == "" || t.ID == action.ToastID {
				next.Toasts[i].Open = false
			}
		}
		return next

	case ActionRemove:
		if action.ToastID == "" {
			return State{Toasts: []Toast{}}
		}
		out := make([]Toast, 0, len(state.Toasts))
		for _, t := range state.Toasts {
			if t.ID != action.ToastID {
				out = append(out, t)
			}
		}
		return State{Toasts: out}

	default:
		return state
	}
}
