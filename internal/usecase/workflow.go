package usecase

import "github.com/antech/configstore/internal/domain/model"

// CanTransition decides whether a role may move an order between the
// given statuses. Administrators move orders freely across the whole
// vocabulary; an ordinary user has exactly one edge, paying a pending
// order. Cancellation by the owner is order deletion, not a transition.
func CanTransition(role model.Role, current, target string) bool {
	if role == model.RoleAdministrator {
		return true
	}
	return current == model.StatusPending && target == model.StatusPaid
}
