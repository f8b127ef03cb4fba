package store

import (
	"strings"
)

// Sort keys accepted by the catalog listing.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// ProductFilter describes one catalog listing. The zero value lists every
// product, newest first.
type ProductFilter struct {
	ActiveOnly   bool
	FeaturedOnly bool
	CategoryID   string
	ExcludeID    string
	Search       string
	Sort         string
	Limit        int
}

const productColumns = `
		p.id, p.name, p.description, p.price, p.image_url, p.category_id,
		p.is_featured, p.is_active, p.created_at, p.updated_at,
		c.name AS category_name`

// BuildProductQuery composes the SELECT for a catalog listing together with
// its positional arguments.
func BuildProductQuery(f ProductFilter) (string, []any) {
	var qb strings.Builder
	var conds []string
	var args []any

	qb.WriteString("SELECT")
	qb.WriteString(productColumns)
	qb.WriteString(`
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id`)

	if f.ActiveOnly {
		conds = append(conds, "p.is_active = TRUE")
	}
	if f.FeaturedOnly {
		conds = append(conds, "p.is_featured = TRUE")
	}
	if f.CategoryID != "" {
		conds = append(conds, "p.category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.ExcludeID != "" {
		conds = append(conds, "p.id <> ?")
		args = append(args, f.ExcludeID)
	}
	// Surrounding spaces are dropped so " kopi " finds the same products as "kopi".
	if term := strings.TrimSpace(f.Search); term != "" {
		// backslash is MySQL's default LIKE escape character
		conds = append(conds, "LOWER(p.name) LIKE ?")
		args = append(args, "%"+escapeLike(strings.ToLower(term))+"%")
	}

	if len(conds) > 0 {
		qb.WriteString("\n\t\tWHERE ")
		qb.WriteString(strings.Join(conds, " AND "))
	}

	qb.WriteString("\n\t\tORDER BY ")
	qb.WriteString(orderClause(f.Sort))

	if f.Limit > 0 {
		qb.WriteString(" LIMIT ?")
		args = append(args, f.Limit)
	}
	return qb.String(), args
}

// Products without a price go last when sorting cheapest first and first
// when sorting most expensive first. MySQL alone would do the reverse.
func orderClause(sort string) string {
	switch sort {
	case SortPriceAsc:
		return "p.price IS NULL, p.price ASC"
	case SortPriceDesc:
		return "p.price IS NULL DESC, p.price DESC"
	case SortName:
		return "p.name ASC"
	default:
		return "p.created_at DESC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
