package cookbook

import "errors"

// Domain errors for cookbook operations

var (
	ErrTitleRequired       = errors.New("cookbook title is required")
	ErrTitleTooLong        = errors.New("cookbook title must not exceed 200 characters")
	ErrInvalidRole         = errors.New("role must be viewer, contributor, or editor")
	ErrOwnerRoleImmutable  = errors.New("the owner's role cannot be changed")
	ErrMemberNotFound      = errors.New("user is not a member of this cookbook")
	ErrPermissionDenied    = errors.New("insufficient cookbook permissions")
	ErrRecipeAlreadyAdded  = errors.New("recipe is already in this cookbook")
	ErrRecipeNotInCookbook = errors.New("recipe is not in this cookbook")
)
