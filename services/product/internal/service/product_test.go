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
	pkgkafka "github.com/rickragav/ragav-ecommerce-sass-application/pkg/kafka"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/domain"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/event"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/repository"
)

// --- Mock Repository ---

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, productID int) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) Delete(ctx context.Context, productID int) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

// --- Test Helpers ---

const testServiceAddress = "test-host/127.0.0.1:7001"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(repo *mockProductRepository) *ProductService {
	logger := newTestLogger()
	// Create a Kafka producer that will fail silently in tests (no real broker).
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	kafkaProducer := pkgkafka.NewProducer(kafkaCfg, logger)
	producer := event.NewProducer(kafkaProducer, logger)
	return NewProductService(repo, producer, testServiceAddress, logger)
}

// --- Tests ---

func TestCreateProduct_Success(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	created, err := svc.CreateProduct(ctx, &domain.Product{ProductID: 1, Name: "widget"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ProductID)
	assert.Equal(t, domain.ProductStatusAvailable, created.Status)
	assert.Equal(t, testServiceAddress, created.ServiceAddress)
	repo.AssertExpectations(t)
}

func TestCreateProduct_InvalidProductID(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)

	for _, id := range []int{0, -1} {
		_, err := svc.CreateProduct(context.Background(), &domain.Product{ProductID: id, Name: "widget"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}

	_, err := svc.CreateProduct(context.Background(), &domain.Product{ProductID: -1, Name: "widget"})
	assert.Equal(t, "Invalid productId: -1", apperrors.Message(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateProduct_InvalidName(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)

	_, err := svc.CreateProduct(context.Background(), &domain.Product{ProductID: 1, Name: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateProduct_DuplicateKey(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(repository.ErrDuplicateKey)

	_, err := svc.CreateProduct(ctx, &domain.Product{ProductID: 7, Name: "widget"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "Duplicate key, Product Id: 7", apperrors.Message(err))
}

func TestCreateProduct_InvalidStatus(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)

	_, err := svc.CreateProduct(context.Background(), &domain.Product{ProductID: 1, Name: "widget", Status: "available"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGetProduct_Success(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, 1).Return(&domain.Product{ProductID: 1, Name: "widget", Status: domain.ProductStatusAvailable}, nil)

	product, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, product.ProductID)
	assert.Equal(t, testServiceAddress, product.ServiceAddress)
}

func TestGetProduct_InvalidID(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)

	_, err := svc.GetProduct(context.Background(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "Invalid productId: -1", apperrors.Message(err))
	repo.AssertNotCalled(t, "GetByID")
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, 13).Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetProduct(ctx, 13)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "No product found for productId: 13", apperrors.Message(err))
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, 1).Return(true, nil)

	require.NoError(t, svc.DeleteProduct(ctx, 1))
	repo.AssertExpectations(t)
}

func TestDeleteProduct_AbsentProductIsNotAnError(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, 42).Return(false, nil)

	require.NoError(t, svc.DeleteProduct(ctx, 42))
	repo.AssertExpectations(t)
}

func TestDeleteProduct_InvalidID(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)

	err := svc.DeleteProduct(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Delete")
}

func TestDeleteProduct_RepoError(t *testing.T) {
	repo := new(mockProductRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, 1).Return(false, errors.New("connection reset"))

	err := svc.DeleteProduct(ctx, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidInput)
}
