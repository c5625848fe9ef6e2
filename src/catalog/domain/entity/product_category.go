package entity

import "strings"

// ProductCategory categoría de un producto
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "ELECTRONICS"
	CategoryClothing    ProductCategory = "CLOTHING"
	CategoryHomeDecor   ProductCategory = "HOME_DECOR"
	CategoryBeauty      ProductCategory = "BEAUTY"
	CategorySports      ProductCategory = "SPORTS"
	CategoryComputing   ProductCategory = "COMPUTING"
	CategoryFood        ProductCategory = "FOOD"
	CategoryHealth      ProductCategory = "HEALTH"
	CategoryKids        ProductCategory = "KIDS"
	CategoryAutomotive  ProductCategory = "AUTOMOTIVE"
	CategoryGardening   ProductCategory = "GARDENING"
	CategoryBooks       ProductCategory = "BOOKS"
	CategoryOther       ProductCategory = "OTHER"
)

// ProductCategories lista todas las categorías en orden de declaración
var ProductCategories = []ProductCategory{
	CategoryElectronics, CategoryClothing, CategoryHomeDecor, CategoryBeauty,
	CategorySports, CategoryComputing, CategoryFood, CategoryHealth,
	CategoryKids, CategoryAutomotive, CategoryGardening, CategoryBooks, CategoryOther,
}

// Description nombre amigable
func (c ProductCategory) Description() string {
	switch c {
	case CategoryElectronics:
		return "Electronics"
	case CategoryClothing:
		return "Clothing"
	case CategoryHomeDecor:
		return "Home & Decor"
	case CategoryBeauty:
		return "Beauty"
	case CategorySports:
		return "Sports"
	case CategoryComputing:
		return "Computing"
	case CategoryFood:
		return "Food & Beverages"
	case CategoryHealth:
		return "Health"
	case CategoryKids:
		return "Kids"
	case CategoryAutomotive:
		return "Automotive"
	case CategoryGardening:
		return "Gardening"
	case CategoryBooks:
		return "Books"
	case CategoryOther:
		return "Other"
	default:
		return ""
	}
}

// Valid indica si es una categoría conocida
func (c ProductCategory) Valid() bool {
	return c.Description() != ""
}

// Main es toda categoría excepto OTHER
func (c ProductCategory) Main() bool {
	return c.Valid() && c != CategoryOther
}

func (c ProductCategory) Technology() bool {
	return c == CategoryElectronics || c == CategoryComputing
}

func (c ProductCategory) Health() bool {
	return c == CategoryHealth || c == CategoryBeauty
}

// ParseProductCategory acepta el código o la descripción, sin distinguir mayúsculas
func ParseProductCategory(s string) (ProductCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range ProductCategories {
		if strings.EqualFold(string(c), s) || strings.EqualFold(c.Description(), s) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}
