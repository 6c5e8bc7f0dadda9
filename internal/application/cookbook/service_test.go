package cookbook

import (
	"context"
	"sync"
	"testing"

	"github.com/forkful/v2/internal/domain/cookbook"
	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/forkful/v2/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCookbookRepo struct {
	mu        sync.Mutex
	cookbooks map[uuid.UUID]*cookbook.Cookbook
}

func newFakeCookbookRepo() *fakeCookbookRepo {
	return &fakeCookbookRepo{cookbooks: make(map[uuid.UUID]*cookbook.Cookbook)}
}

func (r *fakeCookbookRepo) Create(ctx context.Context, entity *cookbook.Cookbook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cookbooks[entity.ID()] = entity
	return nil
}

func (r *fakeCookbookRepo) Update(ctx context.Context, entity *cookbook.Cookbook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cookbooks[entity.ID()] = entity
	return nil
}

func (r *fakeCookbookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cookbooks, id)
	return nil
}

func (r *fakeCookbookRepo) FindByID(ctx context.Context, id uuid.UUID) (*cookbook.Cookbook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cookbooks[id], nil
}

func (r *fakeCookbookRepo) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*cookbook.Cookbook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var visible []*cookbook.Cookbook
	for _, entity := range r.cookbooks {
		if entity.OwnerID() == userID {
			visible = append(visible, entity)
			continue
		}
		if _, ok := entity.Members()[userID]; ok {
			visible = append(visible, entity)
		}
	}
	return visible, nil
}

type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*recipe.Recipe
}

func (r *fakeRecipeRepo) Create(ctx context.Context, entity *recipe.Recipe) error { return nil }
func (r *fakeRecipeRepo) Update(ctx context.Context, entity *recipe.Recipe) error { return nil }
func (r *fakeRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (r *fakeRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	return r.recipes[id], nil
}

func (r *fakeRecipeRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	var found []*recipe.Recipe
	for _, id := range ids {
		if entity, ok := r.recipes[id]; ok {
			found = append(found, entity)
		}
	}
	return found, nil
}

func (r *fakeRecipeRepo) FindByAuthorID(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	return nil, 0, nil
}

func newService(cookbookRepo *fakeCookbookRepo, recipes ...*recipe.Recipe) inbound.CookbookService {
	recipeRepo := &fakeRecipeRepo{recipes: make(map[uuid.UUID]*recipe.Recipe)}
	for _, entity := range recipes {
		recipeRepo.recipes[entity.ID()] = entity
	}
	return NewCookbookService(cookbookRepo, recipeRepo, zap.NewNop())
}

func seedCookbook(t *testing.T, repo *fakeCookbookRepo, ownerID uuid.UUID) *cookbook.Cookbook {
	t.Helper()
	entity := testutils.NewCookbookFactory(42).Cookbook(ownerID)
	require.NoError(t, repo.Create(context.Background(), entity))
	return entity
}

func TestCreateCookbook(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidCommand_ShouldPersistCookbook", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		service := newService(repo)
		ownerID := uuid.New()

		dto, err := service.CreateCookbook(ctx, inbound.CreateCookbookCommand{
			Title:       "Weeknight Dinners",
			Description: "Fast favorites",
			OwnerID:     ownerID,
			Public:      true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Weeknight Dinners", dto.Title)
		assert.True(t, dto.Public)
		assert.Equal(t, "owner", dto.Role)
	})

	t.Run("EmptyTitle_ShouldReturnValidationError", func(t *testing.T) {
		service := newService(newFakeCookbookRepo())

		_, err := service.CreateCookbook(ctx, inbound.CreateCookbookCommand{
			Title:   "",
			OwnerID: uuid.New(),
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
	})
}

func TestCookbookRecipeCollection(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("OwnerAddsOwnRecipe_ShouldSucceed", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		r := testutils.NewRecipeBuilder().WithAuthor(ownerID).MustBuild()
		service := newService(repo, r)

		require.NoError(t, service.AddRecipeToCookbook(ctx, entity.ID(), r.ID(), ownerID))

		dto, err := service.GetCookbook(ctx, entity.ID(), ownerID)
		require.NoError(t, err)
		assert.Contains(t, dto.RecipeIDs, r.ID())
	})

	t.Run("ForeignDraftRecipe_ShouldReturnForbidden", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		r := testutils.NewRecipeBuilder().WithAuthor(uuid.New()).MustBuild()
		service := newService(repo, r)

		err := service.AddRecipeToCookbook(ctx, entity.ID(), r.ID(), ownerID)

		require.Error(t, err)
		assert.Equal(t, errors.CodeInsufficientPermissions, errors.GetCode(err))
	})

	t.Run("UnknownRecipe_ShouldReturnNotFound", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		service := newService(repo)

		err := service.AddRecipeToCookbook(ctx, entity.ID(), uuid.New(), ownerID)

		require.Error(t, err)
		assert.Equal(t, errors.CodeRecipeNotFound, errors.GetCode(err))
	})

	t.Run("UnknownCookbook_ShouldReturnNotFound", func(t *testing.T) {
		service := newService(newFakeCookbookRepo())

		err := service.AddRecipeToCookbook(ctx, uuid.New(), uuid.New(), ownerID)

		require.Error(t, err)
		assert.Equal(t, errors.CodeCookbookNotFound, errors.GetCode(err))
	})
}

func TestCookbookMembership(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	memberID := uuid.New()

	t.Run("OwnerGrantsRole_ShouldSucceed", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		service := newService(repo)

		require.NoError(t, service.AddMember(ctx, inbound.AddMemberCommand{
			CookbookID: entity.ID(),
			MemberID:   memberID,
			Role:       "contributor",
			UserID:     ownerID,
		}))

		dto, err := service.GetCookbook(ctx, entity.ID(), memberID)
		require.NoError(t, err)
		assert.Equal(t, "contributor", dto.Role)
	})

	t.Run("NonManagerGrantsRole_ShouldReturnForbidden", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		service := newService(repo)

		err := service.AddMember(ctx, inbound.AddMemberCommand{
			CookbookID: entity.ID(),
			MemberID:   memberID,
			Role:       "viewer",
			UserID:     uuid.New(),
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeInsufficientPermissions, errors.GetCode(err))
	})

	t.Run("MemberLeaves_ShouldSucceedWithoutManageRole", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		service := newService(repo)

		require.NoError(t, service.AddMember(ctx, inbound.AddMemberCommand{
			CookbookID: entity.ID(),
			MemberID:   memberID,
			Role:       "viewer",
			UserID:     ownerID,
		}))

		require.NoError(t, service.RemoveMember(ctx, entity.ID(), memberID, memberID))

		_, err := service.GetCookbook(ctx, entity.ID(), memberID)
		require.Error(t, err)
		assert.Equal(t, errors.CodeInsufficientPermissions, errors.GetCode(err))
	})
}

func TestCookbookVisibilityAndDeletion(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("PublicCookbook_ShouldBeViewableByStrangers", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		service := newService(repo)

		require.NoError(t, service.SetVisibility(ctx, entity.ID(), ownerID, true))

		dto, err := service.GetCookbook(ctx, entity.ID(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "viewer", dto.Role)
	})

	t.Run("NonOwnerSetsVisibility_ShouldReturnForbidden", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		service := newService(repo)

		err := service.SetVisibility(ctx, entity.ID(), uuid.New(), true)

		require.Error(t, err)
		assert.Equal(t, errors.CodeInsufficientPermissions, errors.GetCode(err))
	})

	t.Run("OwnerDeletes_ShouldRemoveCookbook", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		entity := seedCookbook(t, repo, ownerID)
		service := newService(repo)

		require.NoError(t, service.DeleteCookbook(ctx, entity.ID(), ownerID))

		_, err := service.GetCookbook(ctx, entity.ID(), ownerID)
		require.Error(t, err)
		assert.Equal(t, errors.CodeCookbookNotFound, errors.GetCode(err))
	})

	t.Run("ListCookbooks_ShouldOnlyReturnOwnAndMemberships", func(t *testing.T) {
		repo := newFakeCookbookRepo()
		mine := seedCookbook(t, repo, ownerID)
		seedCookbook(t, repo, uuid.New())
		service := newService(repo)

		dtos, err := service.ListCookbooks(ctx, ownerID)

		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, mine.ID(), dtos[0].ID)
	})
}
