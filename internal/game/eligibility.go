package game

// MaxOfferedActions caps how many decrees a generation may choose from.
const MaxOfferedActions = 5

// EligibleEvents returns the events whose tick range contains tick. Weights
// are resolved at draw time; records with a non-positive weight can never be
// drawn and are dropped here.
func EligibleEvents(events []EventRecord, tick int) []EventRecord {
	eligible := make([]EventRecord, 0, len(events))
	for _, event := range events {
		if event.Weight <= 0 {
			continue
		}
		if tick >= event.MinTick && tick <= event.MaxTick {
			eligible = append(eligible, event)
		}
	}
	return eligible
}

// EligibleActions returns the actions the current state can afford and
// unlock, excluding anything already used this run.
func EligibleActions(actions []ActionRecord, state WorldState) []ActionRecord {
	eligible := make([]ActionRecord, 0, len(actions))
	for _, action := range actions {
		if state.Tick < action.UnlockTick {
			continue
		}
		if state.Trust < action.MinTrust {
			continue
		}
		if state.Treasury < action.Cost {
			continue
		}
		if state.UsedActionIDs[action.ID] {
			continue
		}
		eligible = append(eligible, action)
	}
	return eligible
}
