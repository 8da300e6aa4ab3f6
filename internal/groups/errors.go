package groups

import "errors"

var (
	ErrGroupNameRequired = errors.New("groups: name required")
	ErrGroupSlugInvalid  = errors.New("groups: slug could not be derived")
	ErrDuplicateSlug     = errors.New("groups: slug already exists")
	ErrRepositoryNeeded  = errors.New("groups: repository required")
)
