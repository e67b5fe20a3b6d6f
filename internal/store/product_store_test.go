package store

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/apierror"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo returns canned pages and results, optionally blocking
// until released so tests can interleave operations.
type fakeProductRepo struct {
	repository.ProductRepository

	page    repository.Page[entity.Product]
	result  repository.Result[entity.Product]
	deleted repository.Deleted
	err     error

	block chan struct{}
}

func (f *fakeProductRepo) wait() {
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeProductRepo) List(ctx context.Context, _ repository.ProductFilters, _ repository.ListOptions) (repository.Page[entity.Product], error) {
	f.wait()
	return f.page, f.err
}

func (f *fakeProductRepo) Get(ctx context.Context, id int) (*entity.Product, error) {
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Product{ID: id}, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, _ repository.ProductInput) (repository.Result[entity.Product], error) {
	f.wait()
	return f.result, f.err
}

func (f *fakeProductRepo) Update(ctx context.Context, _ int, _ repository.ProductInput) (repository.Result[entity.Product], error) {
	f.wait()
	return f.result, f.err
}

func (f *fakeProductRepo) Delete(ctx context.Context, _ int) (repository.Deleted, error) {
	f.wait()
	return f.deleted, f.err
}

func productPage(ids ...int) repository.Page[entity.Product] {
	items := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		items = append(items, entity.Product{ID: id, Name: "product"})
	}

	return repository.Page[entity.Product]{Items: items, Count: 37, TotalPages: 4, Page: 2}
}

func TestProductStore_FetchProducts_ReplacesListing(t *testing.T) {
	repo := &fakeProductRepo{page: productPage(1, 2, 3)}
	store := NewProductStore(repo, NewDispatcher())

	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{}))

	state := store.State()
	require.Len(t, state.Products, 3)

	// The next page replaces the listing wholesale; nothing is
	// appended.
	repo.page = productPage(4, 5)
	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{Page: 3}))

	state = store.State()
	require.Len(t, state.Products, 2)
	assert.Equal(t, 4, state.Products[0].ID)
	assert.Equal(t, 5, state.Products[1].ID)
}

func TestProductStore_FetchProducts_KeepsServerPagination(t *testing.T) {
	repo := &fakeProductRepo{page: productPage(1)}
	store := NewProductStore(repo, NewDispatcher())

	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{}))

	state := store.State()
	assert.Equal(t, 37, state.Count)
	assert.Equal(t, 4, state.TotalPages)
	assert.Equal(t, 2, state.Page)
}

func TestProductStore_CreateProduct_AppendsToListing(t *testing.T) {
	repo := &fakeProductRepo{page: productPage(1, 2)}
	store := NewProductStore(repo, NewDispatcher())
	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{}))

	repo.result = repository.Result[entity.Product]{
		Resource: entity.Product{ID: 9, Name: "new"},
		Message:  "Product created successfully",
	}
	require.NoError(t, store.CreateProduct(context.Background(), repository.ProductInput{Name: "new"}))

	state := store.State()
	require.Len(t, state.Products, 3)
	assert.Equal(t, 9, state.Products[2].ID)
	assert.Equal(t, "Product created successfully", state.Status.Success)
}

func TestProductStore_UpdateProduct_ReplacesMatchingRow(t *testing.T) {
	repo := &fakeProductRepo{page: productPage(1, 2, 3)}
	store := NewProductStore(repo, NewDispatcher())
	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{}))

	repo.result = repository.Result[entity.Product]{Resource: entity.Product{ID: 2, Name: "renamed"}}
	require.NoError(t, store.UpdateProduct(context.Background(), 2, repository.ProductInput{Name: "renamed"}))

	state := store.State()
	require.Len(t, state.Products, 3)
	assert.Equal(t, "product", state.Products[0].Name)
	assert.Equal(t, "renamed", state.Products[1].Name)
	assert.Equal(t, "product", state.Products[2].Name)
}

func TestProductStore_UpdateProduct_NoMatchLeavesListingAlone(t *testing.T) {
	repo := &fakeProductRepo{page: productPage(1, 2)}
	store := NewProductStore(repo, NewDispatcher())
	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{}))

	repo.result = repository.Result[entity.Product]{Resource: entity.Product{ID: 99, Name: "elsewhere"}}
	require.NoError(t, store.UpdateProduct(context.Background(), 99, repository.ProductInput{}))

	state := store.State()
	require.Len(t, state.Products, 2)
	assert.Equal(t, 1, state.Products[0].ID)
	assert.Equal(t, 2, state.Products[1].ID)
}

func TestProductStore_DeleteProduct_FiltersListingAndClearsDetail(t *testing.T) {
	repo := &fakeProductRepo{page: productPage(1, 2, 3)}
	store := NewProductStore(repo, NewDispatcher())
	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{}))
	require.NoError(t, store.FetchProduct(context.Background(), 2))

	repo.deleted = repository.Deleted{ID: 2, Message: "Product deleted"}
	require.NoError(t, store.DeleteProduct(context.Background(), 2))

	state := store.State()
	require.Len(t, state.Products, 2)
	assert.Equal(t, 1, state.Products[0].ID)
	assert.Equal(t, 3, state.Products[1].ID)
	assert.Nil(t, state.Product)
}

func TestProductStore_StatusFlags_ExactlyOneOutcome(t *testing.T) {
	repo := &fakeProductRepo{page: productPage(1), block: make(chan struct{})}
	store := NewProductStore(repo, NewDispatcher())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{})
	}()

	// Loading is on while the request is in flight, with no outcome
	// yet.
	assert.Eventually(t, func() bool {
		return store.Status().Loading
	}, testWait, testTick)
	assert.Empty(t, store.Status().Error)
	assert.Empty(t, store.Status().Success)

	close(repo.block)
	wg.Wait()

	status := store.Status()
	assert.False(t, status.Loading)
	assert.Empty(t, status.Error)
	assert.NotEmpty(t, status.Success)
}

func TestProductStore_FailureSetsErrorOnly(t *testing.T) {
	repo := &fakeProductRepo{err: apierror.FromStatus(500, "upstream exploded")}
	store := NewProductStore(repo, NewDispatcher())

	err := store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{})
	require.Error(t, err)

	status := store.Status()
	assert.False(t, status.Loading)
	assert.Equal(t, "upstream exploded", status.Error)
	assert.Empty(t, status.Success)
}

// fnProductRepo routes List through a function so tests can control
// each call independently.
type fnProductRepo struct {
	repository.ProductRepository

	list func(opts repository.ListOptions) (repository.Page[entity.Product], error)
}

func (f *fnProductRepo) List(ctx context.Context, _ repository.ProductFilters, opts repository.ListOptions) (repository.Page[entity.Product], error) {
	return f.list(opts)
}

func TestProductStore_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	repo := &fnProductRepo{
		list: func(opts repository.ListOptions) (repository.Page[entity.Product], error) {
			if opts.Page == 1 {
				close(started)
				<-release
				return productPage(1), nil
			}
			return productPage(7, 8), nil
		},
	}
	store := NewProductStore(repo, NewDispatcher())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{Page: 1})
	}()
	<-started

	// A newer fetch starts and completes while the first request is
	// still in flight.
	require.NoError(t, store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{Page: 2}))

	close(release)
	wg.Wait()

	// The first response arrived last but its generation is stale;
	// the newer listing stands.
	state := store.State()
	require.Len(t, state.Products, 2)
	assert.Equal(t, 7, state.Products[0].ID)
	assert.Equal(t, 2, state.Page)
}

func TestProductStore_PublishesEventsForStaleCompletions(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("boom")}
	events := NewDispatcher()
	store := NewProductStore(repo, events)

	var mu sync.Mutex
	var seen []Event
	events.Subscribe(func(e Event) {
		mu.Lock()
		seen = append(seen, e)
		mu.Unlock()
	})

	_ = store.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.Equal(t, StoreProduct, seen[0].Store)
	assert.Error(t, seen[0].Err)
}
