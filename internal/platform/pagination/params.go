package pagination

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// OrderByConfig configures sort validation.
type OrderByConfig struct {
	Default string
	Allowed []string
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int32, cfg PageSizeConfig) int32 {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return int32(pageSize)
}

// orderByRequest adapts a bare order_by string to ordering.Request.
type orderByRequest string

func (r orderByRequest) GetOrderBy() string { return string(r) }

// NormalizeOrderBy validates a "field[,asc|desc]" sort and applies the
// default when empty. A valid sort is returned as "field,asc" or
// "field,desc", with a missing direction read as asc.
func NormalizeOrderBy(sort string, cfg OrderByConfig) (string, error) {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		return cfg.Default, nil
	}

	field, direction, _ := strings.Cut(sort, ",")
	field = strings.TrimSpace(field)
	direction = strings.ToLower(strings.TrimSpace(direction))
	if field == "" {
		return "", fmt.Errorf("invalid sort %q: field is required", sort)
	}

	expr := field
	switch direction {
	case "":
		direction = "asc"
	case "asc":
	case "desc":
		expr += " desc"
	default:
		return "", fmt.Errorf("invalid sort direction %q", direction)
	}

	orderBy, err := ordering.ParseOrderBy(orderByRequest(expr))
	if err != nil {
		return "", fmt.Errorf("invalid sort %q: %w", sort, err)
	}
	if len(orderBy.Fields) != 1 {
		return "", fmt.Errorf("invalid sort %q: exactly one field is required", sort)
	}
	if err := orderBy.ValidateForPaths(cfg.Allowed...); err != nil {
		return "", fmt.Errorf("invalid sort %q: %w", sort, err)
	}
	return field + "," + direction, nil
}
