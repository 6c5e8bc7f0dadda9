// Package cookbook provides the application layer for cookbook management
// This implements the use cases defined in the inbound ports
package cookbook

import (
	"context"
	"time"

	"github.com/forkful/v2/internal/domain/cookbook"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookbookService implements the cookbook use cases
type CookbookService struct {
	cookbookRepo outbound.CookbookRepository
	recipeRepo   outbound.RecipeRepository
	logger       *zap.Logger
}

// NewCookbookService creates a new cookbook service
func NewCookbookService(
	cookbookRepo outbound.CookbookRepository,
	recipeRepo outbound.RecipeRepository,
	logger *zap.Logger,
) inbound.CookbookService {
	return &CookbookService{
		cookbookRepo: cookbookRepo,
		recipeRepo:   recipeRepo,
		logger:       logger.Named("cookbook-service"),
	}
}

// CreateCookbook creates a new cookbook
func (s *CookbookService) CreateCookbook(ctx context.Context, cmd inbound.CreateCookbookCommand) (*inbound.CookbookDTO, error) {
	entity, err := cookbook.NewCookbook(cmd.Title, cmd.Description, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Public {
		entity.SetPublic(true)
	}

	if err := s.cookbookRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create cookbook", err)
	}

	s.logger.Info("Cookbook created",
		zap.String("cookbook_id", entity.ID().String()),
		zap.String("owner_id", cmd.OwnerID.String()),
	)
	return s.entityToDTO(entity, cmd.OwnerID), nil
}

// AddRecipeToCookbook collects a recipe into a cookbook
func (s *CookbookService) AddRecipeToCookbook(ctx context.Context, cookbookID, recipeID, userID uuid.UUID) error {
	entity, err := s.loadCookbook(ctx, cookbookID)
	if err != nil {
		return err
	}

	r, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}
	if !r.IsViewableBy(userID) {
		return errors.NewInsufficientPermissionsError("use this recipe")
	}

	if err := entity.AddRecipe(recipeID, userID); err != nil {
		return s.domainError(err)
	}

	if err := s.cookbookRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update cookbook", err)
	}
	return nil
}

// RemoveRecipeFromCookbook removes a recipe from a cookbook
func (s *CookbookService) RemoveRecipeFromCookbook(ctx context.Context, cookbookID, recipeID, userID uuid.UUID) error {
	entity, err := s.loadCookbook(ctx, cookbookID)
	if err != nil {
		return err
	}

	if err := entity.RemoveRecipe(recipeID, userID); err != nil {
		return s.domainError(err)
	}

	if err := s.cookbookRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update cookbook", err)
	}
	return nil
}

// AddMember grants a role on a cookbook. Only managing roles may grant.
func (s *CookbookService) AddMember(ctx context.Context, cmd inbound.AddMemberCommand) error {
	entity, err := s.loadCookbook(ctx, cmd.CookbookID)
	if err != nil {
		return err
	}

	if !entity.ResolveRole(cmd.UserID).CanManage() {
		return errors.NewInsufficientPermissionsError("manage this cookbook")
	}

	role := cookbook.ParseRole(cmd.Role)
	if err := entity.AddMember(cmd.MemberID, role); err != nil {
		return s.domainError(err)
	}

	if err := s.cookbookRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update cookbook", err)
	}
	return nil
}

// RemoveMember revokes a member's role
func (s *CookbookService) RemoveMember(ctx context.Context, cookbookID, memberID, userID uuid.UUID) error {
	entity, err := s.loadCookbook(ctx, cookbookID)
	if err != nil {
		return err
	}

	// Members may always leave on their own
	if memberID != userID && !entity.ResolveRole(userID).CanManage() {
		return errors.NewInsufficientPermissionsError("manage this cookbook")
	}

	if err := entity.RemoveMember(memberID); err != nil {
		return s.domainError(err)
	}

	if err := s.cookbookRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update cookbook", err)
	}
	return nil
}

// SetVisibility toggles a cookbook between private and public
func (s *CookbookService) SetVisibility(ctx context.Context, cookbookID, userID uuid.UUID, public bool) error {
	entity, err := s.loadCookbook(ctx, cookbookID)
	if err != nil {
		return err
	}

	if entity.OwnerID() != userID {
		return errors.NewInsufficientPermissionsError("change this cookbook's visibility")
	}

	entity.SetPublic(public)
	if err := s.cookbookRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update cookbook", err)
	}
	return nil
}

// DeleteCookbook removes a cookbook; only the owner may delete
func (s *CookbookService) DeleteCookbook(ctx context.Context, cookbookID, userID uuid.UUID) error {
	entity, err := s.loadCookbook(ctx, cookbookID)
	if err != nil {
		return err
	}

	if entity.OwnerID() != userID {
		return errors.NewInsufficientPermissionsError("delete this cookbook")
	}

	if err := s.cookbookRepo.Delete(ctx, cookbookID); err != nil {
		return errors.NewDatabaseError("delete cookbook", err)
	}

	s.logger.Info("Cookbook deleted", zap.String("cookbook_id", cookbookID.String()))
	return nil
}

// GetCookbook returns a cookbook if the user's resolved role grants viewing
func (s *CookbookService) GetCookbook(ctx context.Context, cookbookID, userID uuid.UUID) (*inbound.CookbookDTO, error) {
	entity, err := s.loadCookbook(ctx, cookbookID)
	if err != nil {
		return nil, err
	}

	if !entity.ResolveRole(userID).CanView() {
		return nil, errors.NewInsufficientPermissionsError("view this cookbook")
	}

	return s.entityToDTO(entity, userID), nil
}

// ListCookbooks returns the cookbooks the user owns or belongs to
func (s *CookbookService) ListCookbooks(ctx context.Context, userID uuid.UUID) ([]inbound.CookbookDTO, error) {
	cookbooks, err := s.cookbookRepo.FindVisibleToUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list cookbooks", err)
	}

	dtos := make([]inbound.CookbookDTO, 0, len(cookbooks))
	for _, entity := range cookbooks {
		dtos = append(dtos, *s.entityToDTO(entity, userID))
	}
	return dtos, nil
}

func (s *CookbookService) loadCookbook(ctx context.Context, cookbookID uuid.UUID) (*cookbook.Cookbook, error) {
	entity, err := s.cookbookRepo.FindByID(ctx, cookbookID)
	if err != nil {
		return nil, errors.NewDatabaseError("find cookbook", err)
	}
	if entity == nil {
		return nil, errors.NewCookbookNotFoundError(cookbookID.String())
	}
	return entity, nil
}

func (s *CookbookService) domainError(err error) *errors.AppError {
	switch err {
	case cookbook.ErrPermissionDenied, cookbook.ErrOwnerRoleImmutable:
		return errors.NewInsufficientPermissionsError("perform this cookbook operation")
	case cookbook.ErrMemberNotFound, cookbook.ErrRecipeNotInCookbook:
		return errors.NewNotFoundError("cookbook entry")
	default:
		return errors.NewValidationError(err.Error())
	}
}

func (s *CookbookService) entityToDTO(entity *cookbook.Cookbook, userID uuid.UUID) *inbound.CookbookDTO {
	memberMap := entity.Members()
	members := make([]inbound.MemberDTO, 0, len(memberMap))
	for memberID, role := range memberMap {
		members = append(members, inbound.MemberDTO{
			UserID: memberID,
			Role:   role.String(),
		})
	}

	return &inbound.CookbookDTO{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		OwnerID:     entity.OwnerID(),
		Public:      entity.IsPublic(),
		RecipeIDs:   entity.RecipeIDs(),
		Members:     members,
		Role:        entity.ResolveRole(userID).String(),
		CreatedAt:   entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   entity.UpdatedAt().Format(time.RFC3339),
	}
}
