package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/storefront-labs/storefront-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "title", "slug", "description", "price", "status", "featured",
	"image_url", "vendor_id", "category_id", "created_at", "updated_at",
}

func TestNewCatalogRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCatalogRepo(db)
	assert.NotNil(t, repo, "NewCatalogRepo should return a non-nil repository")
}

func TestCatalogRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCatalogRepo(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("ListCategories_Success", func(t *testing.T) {
		// Arrange
		rows := mock.NewRows([]string{"id", "title", "slug", "active", "created_at", "updated_at"}).
			AddRow(int64(1), "Shirts", "shirts", true, now, now).
			AddRow(int64(2), "Shoes", "shoes", true, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).WillReturnRows(rows)

		// Act
		categories, err := repo.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "shirts", categories[0].Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListCategories_Empty", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).
			WillReturnRows(mock.NewRows([]string{"id", "title", "slug", "active", "created_at", "updated_at"}))

		// Act
		categories, err := repo.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, categories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListProducts_Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(57))

		joinedColumns := append(append([]string{}, productColumns...),
			"c_id", "c_title", "c_slug", "c_active", "c_created_at", "c_updated_at")

		rows := mock.NewRows(joinedColumns).
			AddRow(int64(1), "Linen Shirt", "linen-shirt", "Breathable", "19.99", "published", false,
				"https://cdn.example.com/1.jpg", int64(7), int64(1), now, now,
				int64(1), "Shirts", "shirts", true, now, now)

		// Page 2 of size 20 -> LIMIT 20 OFFSET 20
		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN categories")).
			WithArgs(20, 20).
			WillReturnRows(rows)

		// Act
		products, total, err := repo.ListProducts(ctx, 2, 20)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 57, total)
		require.Len(t, products, 1)
		assert.Equal(t, "linen-shirt", products[0].Slug)
		require.NotNil(t, products[0].Category)
		assert.Equal(t, "shirts", products[0].Category.Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListProducts_CountError", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
			WillReturnError(errors.New("timeout"))

		// Act
		products, total, err := repo.ListProducts(ctx, 1, 10)

		// Assert
		require.Error(t, err)
		assert.Nil(t, products)
		assert.Zero(t, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetProductBySlug_Success", func(t *testing.T) {
		// Arrange
		rows := mock.NewRows(productColumns).
			AddRow(int64(1), "Linen Shirt", "linen-shirt", "Breathable", "19.99", "published", false,
				"https://cdn.example.com/1.jpg", int64(7), int64(1), now, now)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE slug = $1")).
			WithArgs("linen-shirt").
			WillReturnRows(rows)

		// Act
		product, err := repo.GetProductBySlug(ctx, "linen-shirt")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(7), product.VendorID)
		assert.Equal(t, "19.99", product.Price.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetProductBySlug_NotFound", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta("WHERE slug = $1")).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductBySlug(ctx, "nope")

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetProductByID_Success", func(t *testing.T) {
		// Arrange
		rows := mock.NewRows(productColumns).
			AddRow(int64(42), "Linen Shirt", "linen-shirt", "Breathable", "19.99", "published", false,
				"https://cdn.example.com/1.jpg", int64(7), int64(1), now, now)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		// Act
		product, err := repo.GetProductByID(ctx, 42)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(42), product.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetTaxByCountry_Success", func(t *testing.T) {
		// Arrange
		rows := mock.NewRows([]string{"id", "country", "rate", "active"}).
			AddRow(int64(1), "India", "7.5", true)

		mock.ExpectQuery(regexp.QuoteMeta("FROM taxes")).
			WithArgs("India").
			WillReturnRows(rows)

		// Act
		tax, err := repo.GetTaxByCountry(ctx, "India")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "7.5", tax.Rate.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetTaxByCountry_NotFound", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta("FROM taxes")).
			WithArgs("Atlantis").
			WillReturnError(sql.ErrNoRows)

		// Act
		tax, err := repo.GetTaxByCountry(ctx, "Atlantis")

		// Assert - passed through raw so the cart service can default to zero
		assert.Nil(t, tax)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
