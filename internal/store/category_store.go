package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// CategoryState is a point-in-time snapshot of the category state.
type CategoryState struct {
	Category    *entity.Category
	Categories  []entity.Category
	Breadcrumbs []entity.Category
	Status      Status
}

// CategoryStore holds the category tree, the currently viewed category
// and its breadcrumb trail.
type CategoryStore struct {
	lifecycle
	repo repository.CategoryRepository

	category    *entity.Category
	categories  []entity.Category
	breadcrumbs []entity.Category
}

func NewCategoryStore(repo repository.CategoryRepository, events *Dispatcher) *CategoryStore {
	s := &CategoryStore{repo: repo}
	s.name = StoreCategory
	s.events = events

	return s
}

func (s *CategoryStore) State() CategoryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CategoryState{
		Category:    s.category,
		Categories:  slices.Clone(s.categories),
		Breadcrumbs: slices.Clone(s.breadcrumbs),
		Status:      s.status,
	}
}

// FetchCategories loads the category listing, nested when tree is set.
func (s *CategoryStore) FetchCategories(ctx context.Context, tree bool) error {
	gen := s.begin()

	categories, err := s.repo.List(ctx, tree)
	s.finish("fetch categories", gen, err, "Categories loaded", func() {
		s.categories = categories
	})

	return err
}

// FetchRootCategories loads only the top-level categories.
func (s *CategoryStore) FetchRootCategories(ctx context.Context) error {
	gen := s.begin()

	categories, err := s.repo.ListRoot(ctx)
	s.finish("fetch root categories", gen, err, "Categories loaded", func() {
		s.categories = categories
	})

	return err
}

// FetchCategory loads a category by ID.
func (s *CategoryStore) FetchCategory(ctx context.Context, id int, includeSubcategories bool) error {
	gen := s.begin()

	category, err := s.repo.Get(ctx, id, includeSubcategories)
	s.finish("fetch category", gen, err, "Category loaded", func() {
		s.category = category
	})

	return err
}

// FetchCategoryBySlug loads a category by slug.
func (s *CategoryStore) FetchCategoryBySlug(ctx context.Context, slug string, includeSubcategories bool) error {
	gen := s.begin()

	category, err := s.repo.GetBySlug(ctx, slug, includeSubcategories)
	s.finish("fetch category by slug", gen, err, "Category loaded", func() {
		s.category = category
	})

	return err
}

// FetchBreadcrumbs loads the ancestor trail for a category.
func (s *CategoryStore) FetchBreadcrumbs(ctx context.Context, id int) error {
	gen := s.begin()

	breadcrumbs, err := s.repo.Breadcrumbs(ctx, id)
	s.finish("fetch breadcrumbs", gen, err, "Breadcrumbs loaded", func() {
		s.breadcrumbs = breadcrumbs
	})

	return err
}

// CreateCategory adds a category to the listing.
func (s *CategoryStore) CreateCategory(ctx context.Context, input repository.CategoryInput) error {
	gen := s.begin()

	result, err := s.repo.Create(ctx, input)
	s.finish("create category", gen, err, orDefault(result.Message, "Category created"), func() {
		s.category = &result.Resource
		s.categories = append(s.categories, result.Resource)
	})

	return err
}

// UpdateCategory saves changes and refreshes the matching listing row.
func (s *CategoryStore) UpdateCategory(ctx context.Context, id int, input repository.CategoryInput) error {
	gen := s.begin()

	result, err := s.repo.Update(ctx, id, input)
	s.finish("update category", gen, err, orDefault(result.Message, "Category updated"), func() {
		s.adoptCategory(result.Resource)
	})

	return err
}

// DeleteCategory removes a category.
func (s *CategoryStore) DeleteCategory(ctx context.Context, id int) error {
	gen := s.begin()

	deleted, err := s.repo.Delete(ctx, id)
	s.finish("delete category", gen, err, orDefault(deleted.Message, "Category deleted"), func() {
		s.categories = slices.DeleteFunc(s.categories, func(c entity.Category) bool {
			return c.ID == id
		})
		if s.category != nil && s.category.ID == id {
			s.category = nil
		}
	})

	return err
}

// AddImage attaches an image to a category.
func (s *CategoryStore) AddImage(ctx context.Context, categoryID int, input repository.ImageInput) error {
	gen := s.begin()

	result, err := s.repo.AddImage(ctx, categoryID, input)
	s.finish("add category image", gen, err, orDefault(result.Message, "Image added"), func() {
		s.adoptCategory(result.Resource)
	})

	return err
}

// DeleteImage removes a category image.
func (s *CategoryStore) DeleteImage(ctx context.Context, categoryID, imageID int) error {
	gen := s.begin()

	result, err := s.repo.DeleteImage(ctx, categoryID, imageID)
	s.finish("delete category image", gen, err, orDefault(result.Message, "Image deleted"), func() {
		s.adoptCategory(result.Resource)
	})

	return err
}

func (s *CategoryStore) adoptCategory(category entity.Category) {
	s.category = &category
	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			s.categories[i] = category
			return
		}
	}
}
