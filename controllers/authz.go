package controllers

import (
	"github.com/google/uuid"

	"chordbook/apierrors"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

// checkOwnerOrAdmin is the capability guard run at the top of every
// mutating operation: the caller must own the resource or be an admin.
func checkOwnerOrAdmin(principal types.Principal, ownerID uuid.UUID) error {
	if principal.HasRole(models.RoleAdmin) {
		return nil
	}
	if principal.ID == ownerID {
		return nil
	}
	return apierrors.NewUnauthorizedAction()
}
