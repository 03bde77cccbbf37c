package services

import (
	"sort"
	"strings"

	"glamgirl/internal/models"
)

// FilterProducts derives a catalog view from the full product list and the
// given criteria. It is pure: the input slice is never mutated and the same
// inputs always yield the same ordered output.
//
// Pipeline order is fixed: text search, category, price bracket, sort. Each
// stage passes everything through when its criterion is the zero value.
func FilterProducts(products []models.Product, criteria models.FilterCriteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(criteria.Search))

	for _, p := range products {
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		if criteria.CategoryID != 0 && p.Category != criteria.CategoryID {
			continue
		}
		if !matchesPriceRange(p, criteria.PriceRange) {
			continue
		}
		filtered = append(filtered, p)
	}

	return sortProducts(filtered, criteria.SortBy)
}

// matchesSearch reports whether any of name, description or category name
// contains the lowercased query.
func matchesSearch(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.CategoryName), query)
}

// matchesPriceRange checks the product price against a bracket. A price
// that does not parse violates every bracket but still passes "all" -- a
// bad record must not crash filtering, and must never show up in a range
// it cannot be proven to belong to.
func matchesPriceRange(p models.Product, bracket models.PriceRange) bool {
	switch bracket {
	case models.PriceUnder500, models.Price500To1000, models.PriceAbove1000:
	default:
		return true
	}

	price, err := p.PriceValue()
	if err != nil {
		return false
	}

	switch bracket {
	case models.PriceUnder500:
		return price < 500
	case models.Price500To1000:
		return price >= 500 && price <= 1000
	case models.PriceAbove1000:
		return price > 1000
	}
	return true
}

// sortProducts stable-sorts by the requested key; ties keep input order.
// Unrecognized keys fall back to newest-first. Products without a parsable
// price are dropped from price sorts, there is no honest position for them.
func sortProducts(products []models.Product, key models.SortKey) []models.Product {
	switch key {
	case models.SortPriceLow, models.SortPriceHigh:
		type priced struct {
			product models.Product
			price   float64
		}
		pricedList := make([]priced, 0, len(products))
		for _, p := range products {
			value, err := p.PriceValue()
			if err != nil {
				continue
			}
			pricedList = append(pricedList, priced{product: p, price: value})
		}
		sort.SliceStable(pricedList, func(i, j int) bool {
			if key == models.SortPriceHigh {
				return pricedList[i].price > pricedList[j].price
			}
			return pricedList[i].price < pricedList[j].price
		})
		out := make([]models.Product, len(pricedList))
		for i, entry := range pricedList {
			out[i] = entry.product
		}
		return out

	case models.SortName:
		out := make([]models.Product, len(products))
		copy(out, products)
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
		return out

	default: // SortNewest and anything unrecognized
		out := make([]models.Product, len(products))
		copy(out, products)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
		return out
	}
}
