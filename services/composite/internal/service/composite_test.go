package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/domain"
)

// --- Mock Gateways ---

type mockProductGateway struct {
	mock.Mock
}

func (m *mockProductGateway) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductGateway) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductGateway) DeleteProduct(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type mockReviewGateway struct {
	mock.Mock
}

func (m *mockReviewGateway) GetReviews(ctx context.Context, productID int) []domain.Review {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Review)
}

func (m *mockReviewGateway) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewGateway) DeleteReviews(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Test Helpers ---

const testCompositeAddress = "test-host/127.0.0.1:7000"

func newTestService(products *mockProductGateway, reviews *mockReviewGateway) *CompositeService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewCompositeService(products, reviews, testCompositeAddress, logger)
}

func titlePtr(s string) *string { return &s }

// --- GetProduct ---

func TestGetProduct_AggregatesProductAndReviews(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("GetProduct", ctx, 1).Return(&domain.Product{
		ProductID:      1,
		Name:           "widget",
		Status:         "AVAILABLE",
		ServiceAddress: "prod-host/10.0.0.2:7001",
	}, nil)
	reviews.On("GetReviews", ctx, 1).Return([]domain.Review{
		{ReviewID: "r-1", ProductID: "1", Rating: 8, ReviewText: "solid", ReviewTitle: titlePtr("nice"), ServiceAddress: "rev-host/10.0.0.3:7003"},
		{ReviewID: "r-2", ProductID: "1", Rating: 6, ReviewText: "ok"},
	})

	aggregate, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, aggregate.ProductID)
	assert.Equal(t, "widget", aggregate.Name)
	require.Len(t, aggregate.Reviews, 2)
	assert.Equal(t, "r-1", aggregate.Reviews[0].ReviewID)
	assert.Equal(t, "solid", aggregate.Reviews[0].ReviewContent)
	assert.Equal(t, 8, aggregate.Reviews[0].Rating)

	assert.Equal(t, testCompositeAddress, aggregate.ServiceAddresses.ProductCatalogService)
	assert.Equal(t, "prod-host/10.0.0.2:7001", aggregate.ServiceAddresses.ProductService)
	assert.Equal(t, "rev-host/10.0.0.3:7003", aggregate.ServiceAddresses.ReviewService)
}

func TestGetProduct_EveryReviewerIsPlaceholderUser(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("GetProduct", ctx, 1).Return(&domain.Product{ProductID: 1, Name: "widget"}, nil)
	reviews.On("GetReviews", ctx, 1).Return([]domain.Review{
		{ReviewID: "r-1", Rating: 8},
		{ReviewID: "r-2", Rating: 3},
	})

	aggregate, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	for _, summary := range aggregate.Reviews {
		assert.Equal(t, "user", summary.User)
	}
}

func TestGetProduct_NotFoundSkipsReviewFetch(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("GetProduct", ctx, 13).
		Return(nil, apperrors.NotFound("No product found for productId: 13"))

	_, err := svc.GetProduct(ctx, 13)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "No product found for productId: 13", apperrors.Message(err))
	reviews.AssertNotCalled(t, "GetReviews")
}

func TestGetProduct_EmptyReviewsStillSucceeds(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("GetProduct", ctx, 1).Return(&domain.Product{ProductID: 1, Name: "widget"}, nil)
	reviews.On("GetReviews", ctx, 1).Return([]domain.Review{})

	aggregate, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, aggregate.Reviews)
	assert.Empty(t, aggregate.Reviews)
	assert.Empty(t, aggregate.ServiceAddresses.ReviewService)
}

func TestGetProduct_InvalidID(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)

	_, err := svc.GetProduct(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	products.AssertNotCalled(t, "GetProduct")
}

func TestGetProduct_UpstreamStatusPreserved(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("GetProduct", ctx, 1).
		Return(nil, apperrors.Unexpected(503, "product-service returned status 503"))

	_, err := svc.GetProduct(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, 503, apperrors.HTTPStatus(err))
}

// --- CreateProduct ---

func TestCreateProduct_CreatesProductThenReviews(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).
		Return(&domain.Product{ProductID: 1, Name: "widget"}, nil)
	reviews.On("CreateReview", ctx, mock.AnythingOfType("*domain.Review")).
		Return(&domain.Review{ReviewID: "r-1"}, nil).Twice()

	aggregate := &domain.ProductAggregate{
		ProductID: 1,
		Name:      "widget",
		Reviews: []domain.ReviewSummary{
			{ReviewID: "r-1", Rating: 8, ReviewContent: "solid"},
			{ReviewID: "r-2", Rating: 6, ReviewContent: "ok"},
		},
	}

	require.NoError(t, svc.CreateProduct(ctx, aggregate))
	products.AssertExpectations(t)
	reviews.AssertExpectations(t)
}

func TestCreateProduct_ReviewsCarryPlaceholderUserID(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).
		Return(&domain.Product{ProductID: 1}, nil)

	var captured *domain.Review
	reviews.On("CreateReview", ctx, mock.AnythingOfType("*domain.Review")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Review)
		}).
		Return(&domain.Review{ReviewID: "r-1"}, nil)

	aggregate := &domain.ProductAggregate{
		ProductID: 1,
		Name:      "widget",
		Reviews:   []domain.ReviewSummary{{ReviewID: "r-1", Rating: 8}},
	}

	require.NoError(t, svc.CreateProduct(ctx, aggregate))
	require.NotNil(t, captured)
	require.NotNil(t, captured.UserID)
	assert.Equal(t, 1, *captured.UserID)
	assert.Equal(t, "1", captured.ProductID)
}

func TestCreateProduct_ProductFailureFlattensToBadRequest(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).
		Return(nil, apperrors.InvalidInput("Invalid productId: -1"))

	err := svc.CreateProduct(ctx, &domain.ProductAggregate{ProductID: -1, Name: "widget"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, "Invalid request: Invalid productId: -1", apperrors.Message(err))
	reviews.AssertNotCalled(t, "CreateReview")
}

func TestCreateProduct_ReviewFailureAbortsRemaining(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).
		Return(&domain.Product{ProductID: 1}, nil)
	reviews.On("CreateReview", ctx, mock.AnythingOfType("*domain.Review")).
		Return(nil, apperrors.InvalidInput("Duplicate key, Product Id: 1, Review Id: r-1")).Once()

	aggregate := &domain.ProductAggregate{
		ProductID: 1,
		Name:      "widget",
		Reviews: []domain.ReviewSummary{
			{ReviewID: "r-1", Rating: 8},
			{ReviewID: "r-2", Rating: 6},
		},
	}

	err := svc.CreateProduct(ctx, aggregate)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, "Invalid request: Duplicate key, Product Id: 1, Review Id: r-1", apperrors.Message(err))
	reviews.AssertNumberOfCalls(t, "CreateReview", 1)
}

func TestCreateProduct_TransportFailureFlattensToBadRequest(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	products.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).
		Return(nil, errors.New("call product service: connection refused"))

	err := svc.CreateProduct(ctx, &domain.ProductAggregate{ProductID: 1, Name: "widget"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, "Invalid request: call product service: connection refused", apperrors.Message(err))
}

// --- DeleteProduct ---

func TestDeleteProduct_DeletesReviewsThenProduct(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	reviews.On("DeleteReviews", ctx, 1).Return(nil)
	products.On("DeleteProduct", ctx, 1).Return(nil)

	require.NoError(t, svc.DeleteProduct(ctx, 1))
	reviews.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestDeleteProduct_ReviewFailureStopsProductDelete(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)
	ctx := context.Background()

	reviews.On("DeleteReviews", ctx, 1).Return(apperrors.Unexpected(503, "review-service returned status 503"))

	err := svc.DeleteProduct(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, 503, apperrors.HTTPStatus(err))
	products.AssertNotCalled(t, "DeleteProduct")
}

func TestDeleteProduct_InvalidID(t *testing.T) {
	products := new(mockProductGateway)
	reviews := new(mockReviewGateway)
	svc := newTestService(products, reviews)

	err := svc.DeleteProduct(context.Background(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	reviews.AssertNotCalled(t, "DeleteReviews")
}
