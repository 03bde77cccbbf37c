package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"glamgirl/internal/models"
	"glamgirl/internal/services"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Lipstick", Description: "Matte red lipstick", Price: "450.00", Category: 1, CategoryName: "Makeup", CreatedAt: day(1)},
		{ID: 2, Name: "Perfume", Description: "Floral eau de parfum", Price: "1500.00", Category: 2, CategoryName: "Fragrance", CreatedAt: day(2)},
		{ID: 3, Name: "Face Wash", Description: "Gentle daily cleanser", Price: "700.00", Category: 3, CategoryName: "Skincare", CreatedAt: day(3)},
		{ID: 4, Name: "Nail Polish", Description: "Glossy pink shade", Price: "250.00", Category: 1, CategoryName: "Makeup", CreatedAt: day(4)},
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterProducts_DefaultCriteriaSortsNewestFirst(t *testing.T) {
	result := services.FilterProducts(sampleProducts(), models.FilterCriteria{})
	assert.Equal(t, []int{4, 3, 2, 1}, ids(result))
}

func TestFilterProducts_Idempotent(t *testing.T) {
	criteria := models.FilterCriteria{Search: "a", PriceRange: models.Price500To1000, SortBy: models.SortName}
	first := services.FilterProducts(sampleProducts(), criteria)
	second := services.FilterProducts(first, criteria)
	assert.Equal(t, first, second)
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	services.FilterProducts(products, models.FilterCriteria{SortBy: models.SortPriceHigh})
	assert.Equal(t, []int{1, 2, 3, 4}, ids(products))
}

func TestFilterProducts_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	products := sampleProducts()

	result := services.FilterProducts(products, models.FilterCriteria{Search: "perf"})
	assert.Equal(t, []int{2}, ids(result))

	// Match on description.
	result = services.FilterProducts(products, models.FilterCriteria{Search: "CLEANSER"})
	assert.Equal(t, []int{3}, ids(result))

	// Match on category display name.
	result = services.FilterProducts(products, models.FilterCriteria{Search: "makeup", SortBy: models.SortName})
	assert.Equal(t, []int{1, 4}, ids(result))
}

func TestFilterProducts_CategoryFilter(t *testing.T) {
	result := services.FilterProducts(sampleProducts(), models.FilterCriteria{CategoryID: 1, SortBy: models.SortName})
	assert.Equal(t, []int{1, 4}, ids(result))
}

func TestFilterProducts_PriceBrackets(t *testing.T) {
	products := sampleProducts()

	result := services.FilterProducts(products, models.FilterCriteria{PriceRange: models.PriceUnder500, SortBy: models.SortName})
	assert.Equal(t, []int{1, 4}, ids(result))

	result = services.FilterProducts(products, models.FilterCriteria{PriceRange: models.Price500To1000})
	assert.Equal(t, []int{3}, ids(result))

	result = services.FilterProducts(products, models.FilterCriteria{PriceRange: models.PriceAbove1000})
	assert.Equal(t, []int{2}, ids(result))
}

func TestFilterProducts_BracketBoundariesAreInclusiveFor500To1000(t *testing.T) {
	products := []models.Product{
		{ID: 1, Price: "500.00"},
		{ID: 2, Price: "1000.00"},
		{ID: 3, Price: "499.99"},
		{ID: 4, Price: "1000.01"},
	}
	result := services.FilterProducts(products, models.FilterCriteria{PriceRange: models.Price500To1000, SortBy: models.SortPriceLow})
	assert.Equal(t, []int{1, 2}, ids(result))
}

func TestFilterProducts_OutOfBracketPriceNeverAppears(t *testing.T) {
	products := append(sampleProducts(), models.Product{ID: 9, Name: "Serum", Price: "1200.00", CreatedAt: day(9)})

	for _, bracket := range []models.PriceRange{models.PriceUnder500, models.Price500To1000} {
		result := services.FilterProducts(products, models.FilterCriteria{PriceRange: bracket})
		assert.NotContains(t, ids(result), 9, "1200.00 must not appear under %s", bracket)
	}
}

func TestFilterProducts_SortOrders(t *testing.T) {
	products := sampleProducts()

	result := services.FilterProducts(products, models.FilterCriteria{SortBy: models.SortPriceLow})
	assert.Equal(t, []int{4, 1, 3, 2}, ids(result))

	result = services.FilterProducts(products, models.FilterCriteria{SortBy: models.SortPriceHigh})
	assert.Equal(t, []int{2, 3, 1, 4}, ids(result))

	result = services.FilterProducts(products, models.FilterCriteria{SortBy: models.SortName})
	assert.Equal(t, []int{3, 1, 4, 2}, ids(result))

	// Unrecognized keys fall back to newest first.
	result = services.FilterProducts(products, models.FilterCriteria{SortBy: "bogus"})
	assert.Equal(t, []int{4, 3, 2, 1}, ids(result))
}

func TestFilterProducts_StableSortKeepsInputOrderOnTies(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "A", Price: "100.00"},
		{ID: 2, Name: "B", Price: "100.00"},
		{ID: 3, Name: "C", Price: "100.00"},
	}
	result := services.FilterProducts(products, models.FilterCriteria{SortBy: models.SortPriceLow})
	assert.Equal(t, []int{1, 2, 3}, ids(result))
}

func TestFilterProducts_UnparsablePrice(t *testing.T) {
	products := append(sampleProducts(), models.Product{ID: 9, Name: "Mystery", Price: "n/a", CreatedAt: day(9)})

	// Violates every bracket.
	for _, bracket := range []models.PriceRange{models.PriceUnder500, models.Price500To1000, models.PriceAbove1000} {
		result := services.FilterProducts(products, models.FilterCriteria{PriceRange: bracket})
		assert.NotContains(t, ids(result), 9)
	}

	// Dropped from price sorts.
	result := services.FilterProducts(products, models.FilterCriteria{SortBy: models.SortPriceLow})
	assert.NotContains(t, ids(result), 9)

	// Still present with no price criteria.
	result = services.FilterProducts(products, models.FilterCriteria{})
	assert.Contains(t, ids(result), 9)
}

func TestFilterProducts_EmptyInput(t *testing.T) {
	result := services.FilterProducts(nil, models.FilterCriteria{Search: "x", PriceRange: models.PriceUnder500})
	assert.Empty(t, result)
}
