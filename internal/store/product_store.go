package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ProductState is a point-in-time snapshot of the catalog state.
type ProductState struct {
	Product    *entity.Product
	Products   []entity.Product
	Count      int
	TotalPages int
	Page       int
	Status     Status
}

// ProductStore holds the product listing, the currently viewed product
// and the server's pagination metadata.
type ProductStore struct {
	lifecycle
	repo repository.ProductRepository

	product    *entity.Product
	products   []entity.Product
	count      int
	totalPages int
	page       int
}

func NewProductStore(repo repository.ProductRepository, events *Dispatcher) *ProductStore {
	s := &ProductStore{repo: repo}
	s.name = StoreProduct
	s.events = events

	return s
}

// State returns a snapshot. The listing is cloned so callers cannot
// mutate store state through it.
func (s *ProductStore) State() ProductState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ProductState{
		Product:    s.product,
		Products:   slices.Clone(s.products),
		Count:      s.count,
		TotalPages: s.totalPages,
		Page:       s.page,
		Status:     s.status,
	}
}

// FetchProducts loads one page of the catalog. The listing is replaced
// wholesale and the pagination metadata is taken from the response.
func (s *ProductStore) FetchProducts(ctx context.Context, filters repository.ProductFilters, opts repository.ListOptions) error {
	gen := s.begin()

	page, err := s.repo.List(ctx, filters, opts)
	s.finish("fetch products", gen, err, "Products loaded", func() {
		s.products = page.Items
		s.count = page.Count
		s.totalPages = page.TotalPages
		s.page = page.Page
	})

	return err
}

// FetchProduct loads a single product by ID into the detail slot.
func (s *ProductStore) FetchProduct(ctx context.Context, id int) error {
	gen := s.begin()

	product, err := s.repo.Get(ctx, id)
	s.finish("fetch product", gen, err, "Product loaded", func() {
		s.product = product
	})

	return err
}

// FetchProductBySlug loads a single product by slug.
func (s *ProductStore) FetchProductBySlug(ctx context.Context, slug string) error {
	gen := s.begin()

	product, err := s.repo.GetBySlug(ctx, slug)
	s.finish("fetch product by slug", gen, err, "Product loaded", func() {
		s.product = product
	})

	return err
}

// CreateProduct adds a product and appends it to the listing.
func (s *ProductStore) CreateProduct(ctx context.Context, input repository.ProductInput) error {
	gen := s.begin()

	result, err := s.repo.Create(ctx, input)
	s.finish("create product", gen, err, orDefault(result.Message, "Product created"), func() {
		s.product = &result.Resource
		s.products = append(s.products, result.Resource)
		s.count++
	})

	return err
}

// UpdateProduct saves changes and refreshes the matching listing row.
func (s *ProductStore) UpdateProduct(ctx context.Context, id int, input repository.ProductInput) error {
	gen := s.begin()

	result, err := s.repo.Update(ctx, id, input)
	s.finish("update product", gen, err, orDefault(result.Message, "Product updated"), func() {
		s.product = &result.Resource
		s.replaceRow(result.Resource)
	})

	return err
}

// DeleteProduct removes a product from the server and the listing.
func (s *ProductStore) DeleteProduct(ctx context.Context, id int) error {
	gen := s.begin()

	deleted, err := s.repo.Delete(ctx, id)
	s.finish("delete product", gen, err, orDefault(deleted.Message, "Product deleted"), func() {
		s.products = slices.DeleteFunc(s.products, func(p entity.Product) bool {
			return p.ID == id
		})
		if s.count > 0 {
			s.count--
		}
		if s.product != nil && s.product.ID == id {
			s.product = nil
		}
	})

	return err
}

// CreateVariant adds a variant; the server returns the owning product
// re-serialized, which replaces both the detail slot and the listing
// row.
func (s *ProductStore) CreateVariant(ctx context.Context, productID int, input repository.VariantInput) error {
	gen := s.begin()

	result, err := s.repo.CreateVariant(ctx, productID, input)
	s.finish("create variant", gen, err, orDefault(result.Message, "Variant created"), func() {
		s.adoptProduct(result.Product)
	})

	return err
}

// UpdateVariant saves variant changes.
func (s *ProductStore) UpdateVariant(ctx context.Context, productID, variantID int, input repository.VariantInput) error {
	gen := s.begin()

	result, err := s.repo.UpdateVariant(ctx, productID, variantID, input)
	s.finish("update variant", gen, err, orDefault(result.Message, "Variant updated"), func() {
		s.adoptProduct(result.Product)
	})

	return err
}

// DeleteVariant removes a variant.
func (s *ProductStore) DeleteVariant(ctx context.Context, productID, variantID int) error {
	gen := s.begin()

	deleted, err := s.repo.DeleteVariant(ctx, productID, variantID)
	s.finish("delete variant", gen, err, orDefault(deleted.Message, "Variant deleted"), func() {
		s.adoptProduct(deleted.Product)
	})

	return err
}

// AddImage attaches an image to a product.
func (s *ProductStore) AddImage(ctx context.Context, productID int, input repository.ImageInput) error {
	gen := s.begin()

	result, err := s.repo.AddImage(ctx, productID, input)
	s.finish("add product image", gen, err, orDefault(result.Message, "Image added"), func() {
		s.adoptProduct(result.Resource)
	})

	return err
}

// DeleteImage removes a product image.
func (s *ProductStore) DeleteImage(ctx context.Context, imageID int) error {
	gen := s.begin()

	result, err := s.repo.DeleteImage(ctx, imageID)
	s.finish("delete product image", gen, err, orDefault(result.Message, "Image deleted"), func() {
		s.adoptProduct(result.Resource)
	})

	return err
}

// adoptProduct replaces the detail slot and the listing row with a
// fresh server copy. Callers hold s.mu.
func (s *ProductStore) adoptProduct(product entity.Product) {
	s.product = &product
	s.replaceRow(product)
}

func (s *ProductStore) replaceRow(product entity.Product) {
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return
		}
	}
}
