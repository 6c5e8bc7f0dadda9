package grocery

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/forkful/v2/internal/domain/grocery"
	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/forkful/v2/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*recipe.Recipe
}

func newFakeRecipeRepo(recipes ...*recipe.Recipe) *fakeRecipeRepo {
	repo := &fakeRecipeRepo{recipes: make(map[uuid.UUID]*recipe.Recipe)}
	for _, r := range recipes {
		repo.recipes[r.ID()] = r
	}
	return repo
}

func (f *fakeRecipeRepo) Create(ctx context.Context, r *recipe.Recipe) error {
	f.recipes[r.ID()] = r
	return nil
}

func (f *fakeRecipeRepo) Update(ctx context.Context, r *recipe.Recipe) error {
	f.recipes[r.ID()] = r
	return nil
}

func (f *fakeRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	return f.recipes[id], nil
}

func (f *fakeRecipeRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	found := make([]*recipe.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := f.recipes[id]; ok {
			found = append(found, r)
		}
	}
	return found, nil
}

func (f *fakeRecipeRepo) FindByAuthorID(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	var matched []*recipe.Recipe
	for _, r := range f.recipes {
		if r.AuthorID() == authorID {
			matched = append(matched, r)
		}
	}
	return matched, len(matched), nil
}

type fakeListRepo struct {
	lists map[uuid.UUID]*grocery.List
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[uuid.UUID]*grocery.List)}
}

func (f *fakeListRepo) Create(ctx context.Context, list *grocery.List) error {
	f.lists[list.ID()] = list
	return nil
}

func (f *fakeListRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.lists, id)
	return nil
}

func (f *fakeListRepo) FindByID(ctx context.Context, id uuid.UUID) (*grocery.List, error) {
	return f.lists[id], nil
}

func (f *fakeListRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*grocery.List, error) {
	var matched []*grocery.List
	for _, list := range f.lists {
		if list.UserID() == userID {
			matched = append(matched, list)
		}
	}
	return matched, nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, nil
}

func newService(recipeRepo *fakeRecipeRepo, listRepo *fakeListRepo, cache *fakeCache) inbound.GroceryService {
	return NewGroceryService(recipeRepo, listRepo, cache, 15*time.Minute, zap.NewNop())
}

func TestGenerateGroceryList(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidRequest_ShouldGenerateAndPersist", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		pasta := testutils.NewRecipeBuilder().
			WithTitle("Pasta Pomodoro").
			WithAuthor(userID).
			WithServings(4).
			WithIngredientNotes("tomatoes", 4, "whole", "ripe and red").
			WithIngredient("spaghetti", 1, "lb").
			MustBuild()
		salad := testutils.NewRecipeBuilder().
			WithTitle("Caprese Salad").
			WithAuthor(userID).
			WithServings(2).
			WithIngredientNotes("tomatoes", 2, "whole", "organic preferred").
			MustBuild()

		listRepo := newFakeListRepo()
		svc := newService(newFakeRecipeRepo(pasta, salad), listRepo, newFakeCache())

		// Act
		dto, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    userID,
			RecipeIDs: []uuid.UUID{pasta.ID(), salad.ID()},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Grocery List for Pasta Pomodoro, Caprese Salad", dto.Title)
		assert.Equal(t, userID, dto.UserID)
		assert.Equal(t, []uuid.UUID{pasta.ID(), salad.ID()}, dto.GeneratedFrom)
		require.Len(t, dto.Items, 2)

		tomatoes := dto.Items[0]
		assert.Equal(t, "tomatoes", tomatoes.Name)
		assert.Equal(t, 6.0, tomatoes.Amount)
		assert.Equal(t, "ripe and red; organic preferred", tomatoes.Notes)

		// The list is persisted
		assert.Len(t, listRepo.lists, 1)
	})

	t.Run("ExplicitTitle_ShouldOverrideSynthesizedOne", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(userID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		svc := newService(newFakeRecipeRepo(r), newFakeListRepo(), newFakeCache())

		// Act
		dto, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    userID,
			RecipeIDs: []uuid.UUID{r.ID()},
			Title:     "Sunday Shop",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Sunday Shop", dto.Title)
	})

	t.Run("ServingAdjustments_ShouldScaleAmounts", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(userID).
			WithServings(4).
			WithIngredient("ground beef", 2, "lbs").
			MustBuild()
		svc := newService(newFakeRecipeRepo(r), newFakeListRepo(), newFakeCache())

		// Act
		dto, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:             userID,
			RecipeIDs:          []uuid.UUID{r.ID()},
			ServingAdjustments: map[uuid.UUID]int{r.ID(): 8},
		})

		// Assert
		require.NoError(t, err)
		require.Len(t, dto.Items, 1)
		assert.Equal(t, 4.0, dto.Items[0].Amount)
	})

	t.Run("NoRecipeIDs_ShouldReturnValidationError", func(t *testing.T) {
		// Arrange
		svc := newService(newFakeRecipeRepo(), newFakeListRepo(), newFakeCache())

		// Act
		dto, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID: uuid.New(),
		})

		// Assert
		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeValidationFailed))
	})

	t.Run("UnknownRecipeID_ShouldReturnNotFound", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(userID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		svc := newService(newFakeRecipeRepo(r), newFakeListRepo(), newFakeCache())

		// Act
		dto, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    userID,
			RecipeIDs: []uuid.UUID{r.ID(), uuid.New()},
		})

		// Assert
		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeRecipeNotFound))
	})

	t.Run("ForeignDraft_ShouldReturnForbidden", func(t *testing.T) {
		// Arrange
		draft := testutils.NewRecipeBuilder().
			WithIngredient("rice", 1, "cup").
			MustBuild()
		svc := newService(newFakeRecipeRepo(draft), newFakeListRepo(), newFakeCache())

		// Act
		dto, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    uuid.New(),
			RecipeIDs: []uuid.UUID{draft.ID()},
		})

		// Assert
		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeInsufficientPermissions))
	})

	t.Run("ForeignPublishedRecipe_ShouldBeUsable", func(t *testing.T) {
		// Arrange
		published := testutils.NewRecipeBuilder().
			WithIngredient("rice", 1, "cup").
			Published().
			MustBuild()
		svc := newService(newFakeRecipeRepo(published), newFakeListRepo(), newFakeCache())

		// Act
		dto, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    uuid.New(),
			RecipeIDs: []uuid.UUID{published.ID()},
		})

		// Assert
		require.NoError(t, err)
		require.Len(t, dto.Items, 1)
	})
}

func TestGetGroceryList(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnList_ShouldReturnIt", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(userID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		svc := newService(newFakeRecipeRepo(r), newFakeListRepo(), newFakeCache())
		generated, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    userID,
			RecipeIDs: []uuid.UUID{r.ID()},
		})
		require.NoError(t, err)

		// Act
		dto, err := svc.GetGroceryList(ctx, generated.ID, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, generated.ID, dto.ID)
		assert.Equal(t, generated.Title, dto.Title)
	})

	t.Run("UnknownList_ShouldReturnNotFound", func(t *testing.T) {
		// Arrange
		svc := newService(newFakeRecipeRepo(), newFakeListRepo(), newFakeCache())

		// Act
		dto, err := svc.GetGroceryList(ctx, uuid.New(), uuid.New())

		// Assert
		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeGroceryListNotFound))
	})

	t.Run("SomeoneElsesList_ShouldReturnForbidden", func(t *testing.T) {
		// Arrange
		ownerID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(ownerID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		svc := newService(newFakeRecipeRepo(r), newFakeListRepo(), newFakeCache())
		generated, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    ownerID,
			RecipeIDs: []uuid.UUID{r.ID()},
		})
		require.NoError(t, err)

		// Act
		dto, err := svc.GetGroceryList(ctx, generated.ID, uuid.New())

		// Assert
		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeInsufficientPermissions))
	})

	t.Run("CacheMiss_ShouldFallBackToRepository", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(userID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		cache := newFakeCache()
		svc := newService(newFakeRecipeRepo(r), newFakeListRepo(), cache)
		generated, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    userID,
			RecipeIDs: []uuid.UUID{r.ID()},
		})
		require.NoError(t, err)
		require.NoError(t, cache.Delete(ctx, listCacheKey(generated.ID)))

		// Act
		dto, err := svc.GetGroceryList(ctx, generated.ID, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, generated.ID, dto.ID)

		// And the read re-warms the cache
		ok, err := cache.Exists(ctx, listCacheKey(generated.ID))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestDeleteGroceryList(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner_ShouldDeleteAndEvictCache", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(userID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		listRepo := newFakeListRepo()
		cache := newFakeCache()
		svc := newService(newFakeRecipeRepo(r), listRepo, cache)
		generated, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    userID,
			RecipeIDs: []uuid.UUID{r.ID()},
		})
		require.NoError(t, err)

		// Act
		err = svc.DeleteGroceryList(ctx, generated.ID, userID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, listRepo.lists)
		ok, err := cache.Exists(ctx, listCacheKey(generated.ID))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("NonOwner_ShouldReturnForbidden", func(t *testing.T) {
		// Arrange
		ownerID := uuid.New()
		r := testutils.NewRecipeBuilder().
			WithAuthor(ownerID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		svc := newService(newFakeRecipeRepo(r), newFakeListRepo(), newFakeCache())
		generated, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    ownerID,
			RecipeIDs: []uuid.UUID{r.ID()},
		})
		require.NoError(t, err)

		// Act & Assert
		err = svc.DeleteGroceryList(ctx, generated.ID, uuid.New())
		assert.True(t, errors.Is(err, errors.CodeInsufficientPermissions))
	})
}

func TestListGroceryLists(t *testing.T) {
	ctx := context.Background()

	t.Run("ShouldReturnOnlyOwnLists", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		otherID := uuid.New()
		mine := testutils.NewRecipeBuilder().
			WithAuthor(userID).
			WithIngredient("rice", 1, "cup").
			MustBuild()
		theirs := testutils.NewRecipeBuilder().
			WithAuthor(otherID).
			WithIngredient("flour", 2, "cups").
			MustBuild()
		svc := newService(newFakeRecipeRepo(mine, theirs), newFakeListRepo(), newFakeCache())

		_, err := svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    userID,
			RecipeIDs: []uuid.UUID{mine.ID()},
		})
		require.NoError(t, err)
		_, err = svc.GenerateGroceryList(ctx, inbound.GenerateGroceryListCommand{
			UserID:    otherID,
			RecipeIDs: []uuid.UUID{theirs.ID()},
		})
		require.NoError(t, err)

		// Act
		summaries, err := svc.ListGroceryLists(ctx, userID)

		// Assert
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, 1, summaries[0].ItemCount)
	})
}
