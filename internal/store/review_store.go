package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ReviewState is a point-in-time snapshot of the review state.
type ReviewState struct {
	Review     *entity.Review
	Reviews    []entity.Review
	Count      int
	TotalPages int
	Page       int
	Status     Status
}

// ReviewStore holds the review listing for the currently viewed
// product.
type ReviewStore struct {
	lifecycle
	repo repository.ReviewRepository

	review     *entity.Review
	reviews    []entity.Review
	count      int
	totalPages int
	page       int
}

func NewReviewStore(repo repository.ReviewRepository, events *Dispatcher) *ReviewStore {
	s := &ReviewStore{repo: repo}
	s.name = StoreReview
	s.events = events

	return s
}

func (s *ReviewStore) State() ReviewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ReviewState{
		Review:     s.review,
		Reviews:    slices.Clone(s.reviews),
		Count:      s.count,
		TotalPages: s.totalPages,
		Page:       s.page,
		Status:     s.status,
	}
}

// FetchReviews loads one page of reviews.
func (s *ReviewStore) FetchReviews(ctx context.Context, filters repository.ReviewFilters, opts repository.ListOptions) error {
	gen := s.begin()

	page, err := s.repo.List(ctx, filters, opts)
	s.finish("fetch reviews", gen, err, "Reviews loaded", func() {
		s.reviews = page.Items
		s.count = page.Count
		s.totalPages = page.TotalPages
		s.page = page.Page
	})

	return err
}

// FetchReview loads a single review.
func (s *ReviewStore) FetchReview(ctx context.Context, id int) error {
	gen := s.begin()

	review, err := s.repo.Get(ctx, id)
	s.finish("fetch review", gen, err, "Review loaded", func() {
		s.review = review
	})

	return err
}

// CreateReview submits a review for a product.
func (s *ReviewStore) CreateReview(ctx context.Context, productID int, input repository.ReviewInput) error {
	gen := s.begin()

	result, err := s.repo.Create(ctx, productID, input)
	s.finish("create review", gen, err, orDefault(result.Message, "Review submitted"), func() {
		s.review = &result.Resource
		s.reviews = append(s.reviews, result.Resource)
		s.count++
	})

	return err
}

// UpdateReview saves changes to the author's review.
func (s *ReviewStore) UpdateReview(ctx context.Context, id int, input repository.ReviewInput) error {
	gen := s.begin()

	result, err := s.repo.Update(ctx, id, input)
	s.finish("update review", gen, err, orDefault(result.Message, "Review updated"), func() {
		s.review = &result.Resource
		for i := range s.reviews {
			if s.reviews[i].ID == result.Resource.ID {
				s.reviews[i] = result.Resource
				break
			}
		}
	})

	return err
}

// DeleteReview removes a review.
func (s *ReviewStore) DeleteReview(ctx context.Context, id int) error {
	gen := s.begin()

	deleted, err := s.repo.Delete(ctx, id)
	s.finish("delete review", gen, err, orDefault(deleted.Message, "Review deleted"), func() {
		s.reviews = slices.DeleteFunc(s.reviews, func(r entity.Review) bool {
			return r.ID == id
		})
		if s.count > 0 {
			s.count--
		}
		if s.review != nil && s.review.ID == id {
			s.review = nil
		}
	})

	return err
}
