package states

import "github.com/yohamta/donburi/ecs"

// Condition gates a system for the current frame.
type Condition func(e *ecs.ECS) bool

// All is true when every condition holds.
func All(conds ...Condition) Condition {
	return func(e *ecs.ECS) bool {
		for _, c := range conds {
			if !c(e) {
				return false
			}
		}
		return true
	}
}

// RunIf wraps a system to skip execution unless every condition holds.
func RunIf(system ecs.System, conds ...Condition) ecs.System {
	cond := All(conds...)
	return func(e *ecs.ECS) {
		if !cond(e) {
			return
		}
		system(e)
	}
}
