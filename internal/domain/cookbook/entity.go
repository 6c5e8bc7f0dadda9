// Package cookbook contains the domain logic for user cookbooks: curated
// recipe collections shared between users with per-member permission levels.
package cookbook

import (
	"time"

	"github.com/forkful/v2/internal/domain/shared"
	"github.com/google/uuid"
)

// Role is a member's permission level within a cookbook. Roles are
// strictly ordered: each level includes everything below it.
type Role int

const (
	RoleNone Role = iota
	RoleViewer
	RoleContributor
	RoleEditor
	RoleOwner
)

// String returns the role's wire representation
func (r Role) String() string {
	switch r {
	case RoleViewer:
		return "viewer"
	case RoleContributor:
		return "contributor"
	case RoleEditor:
		return "editor"
	case RoleOwner:
		return "owner"
	default:
		return "none"
	}
}

// ParseRole maps a wire representation back to a Role
func ParseRole(s string) Role {
	switch s {
	case "viewer":
		return RoleViewer
	case "contributor":
		return RoleContributor
	case "editor":
		return RoleEditor
	case "owner":
		return RoleOwner
	default:
		return RoleNone
	}
}

// CanView reports whether the role grants read access
func (r Role) CanView() bool {
	return r >= RoleViewer
}

// CanAddRecipes reports whether the role may add recipes to the cookbook
func (r Role) CanAddRecipes() bool {
	return r >= RoleContributor
}

// CanManage reports whether the role may edit cookbook metadata,
// remove recipes, and manage members
func (r Role) CanManage() bool {
	return r >= RoleEditor
}

// Cookbook is a titled, optionally public collection of recipes with a
// set of members holding per-user roles.
type Cookbook struct {
	id          uuid.UUID
	title       string
	description string
	ownerID     uuid.UUID
	public      bool
	members     map[uuid.UUID]Role
	recipeIDs   []uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time

	events []shared.DomainEvent
}

// NewCookbook creates a new cookbook owned by the given user
func NewCookbook(title, description string, ownerID uuid.UUID) (*Cookbook, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > 200 {
		return nil, ErrTitleTooLong
	}

	now := time.Now()
	c := &Cookbook{
		id:          uuid.New(),
		title:       title,
		description: description,
		ownerID:     ownerID,
		members:     make(map[uuid.UUID]Role),
		createdAt:   now,
		updatedAt:   now,
	}

	c.addEvent(CreatedEvent{
		CookbookID: c.id,
		OwnerID:    ownerID,
		Title:      title,
		CreatedAt:  now,
	})

	return c, nil
}

// ID returns the cookbook's unique identifier
func (c *Cookbook) ID() uuid.UUID {
	return c.id
}

// Title returns the cookbook title
func (c *Cookbook) Title() string {
	return c.title
}

// Description returns the cookbook description
func (c *Cookbook) Description() string {
	return c.description
}

// OwnerID returns the owning user's ID
func (c *Cookbook) OwnerID() uuid.UUID {
	return c.ownerID
}

// IsPublic reports whether the cookbook is publicly viewable
func (c *Cookbook) IsPublic() bool {
	return c.public
}

// RecipeIDs returns the recipes collected in this cookbook, in the
// order they were added
func (c *Cookbook) RecipeIDs() []uuid.UUID {
	return c.recipeIDs
}

// Members returns a copy of the membership map, excluding the owner
func (c *Cookbook) Members() map[uuid.UUID]Role {
	members := make(map[uuid.UUID]Role, len(c.members))
	for id, role := range c.members {
		members[id] = role
	}
	return members
}

// CreatedAt returns when the cookbook was created
func (c *Cookbook) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the cookbook was last updated
func (c *Cookbook) UpdatedAt() time.Time {
	return c.updatedAt
}

// ResolveRole resolves the effective role of a user for this cookbook:
// the owner always holds RoleOwner, explicit members hold their granted
// role, and anyone else holds RoleViewer on public cookbooks and RoleNone
// otherwise.
func (c *Cookbook) ResolveRole(userID uuid.UUID) Role {
	if userID == c.ownerID {
		return RoleOwner
	}
	if role, ok := c.members[userID]; ok {
		return role
	}
	if c.public {
		return RoleViewer
	}
	return RoleNone
}

// SetPublic toggles public visibility
func (c *Cookbook) SetPublic(public bool) {
	c.public = public
	c.updatedAt = time.Now()
}

// AddMember grants a role to a user. The owner's role is implicit and
// cannot be granted or overridden.
func (c *Cookbook) AddMember(userID uuid.UUID, role Role) error {
	if userID == c.ownerID {
		return ErrOwnerRoleImmutable
	}
	if role == RoleNone || role == RoleOwner {
		return ErrInvalidRole
	}

	c.members[userID] = role
	c.updatedAt = time.Now()

	c.addEvent(MemberAddedEvent{
		CookbookID: c.id,
		UserID:     userID,
		Role:       role,
		AddedAt:    c.updatedAt,
	})

	return nil
}

// RemoveMember revokes a user's membership
func (c *Cookbook) RemoveMember(userID uuid.UUID) error {
	if userID == c.ownerID {
		return ErrOwnerRoleImmutable
	}
	if _, ok := c.members[userID]; !ok {
		return ErrMemberNotFound
	}

	delete(c.members, userID)
	c.updatedAt = time.Now()
	return nil
}

// AddRecipe collects a recipe into the cookbook on behalf of a user.
// The caller's resolved role must allow adding recipes.
func (c *Cookbook) AddRecipe(recipeID, userID uuid.UUID) error {
	if !c.ResolveRole(userID).CanAddRecipes() {
		return ErrPermissionDenied
	}

	for _, existing := range c.recipeIDs {
		if existing == recipeID {
			return ErrRecipeAlreadyAdded
		}
	}

	c.recipeIDs = append(c.recipeIDs, recipeID)
	c.updatedAt = time.Now()

	c.addEvent(RecipeAddedEvent{
		CookbookID: c.id,
		RecipeID:   recipeID,
		UserID:     userID,
		AddedAt:    c.updatedAt,
	})

	return nil
}

// RemoveRecipe removes a recipe from the cookbook on behalf of a user.
// Requires a managing role.
func (c *Cookbook) RemoveRecipe(recipeID, userID uuid.UUID) error {
	if !c.ResolveRole(userID).CanManage() {
		return ErrPermissionDenied
	}

	for i, existing := range c.recipeIDs {
		if existing == recipeID {
			c.recipeIDs = append(c.recipeIDs[:i], c.recipeIDs[i+1:]...)
			c.updatedAt = time.Now()
			return nil
		}
	}
	return ErrRecipeNotInCookbook
}

// Events returns and clears pending domain events
func (c *Cookbook) Events() []shared.DomainEvent {
	events := c.events
	c.events = nil
	return events
}

func (c *Cookbook) addEvent(event shared.DomainEvent) {
	c.events = append(c.events, event)
}

// Rehydrate reconstructs a cookbook from persisted state.
// Repositories are the only intended callers.
func Rehydrate(
	id uuid.UUID,
	title, description string,
	ownerID uuid.UUID,
	public bool,
	members map[uuid.UUID]Role,
	recipeIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Cookbook {
	if members == nil {
		members = make(map[uuid.UUID]Role)
	}
	return &Cookbook{
		id:          id,
		title:       title,
		description: description,
		ownerID:     ownerID,
		public:      public,
		members:     members,
		recipeIDs:   recipeIDs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}
