package service

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/maxviazov/pagination-service/internal/model"
)

// Query parameter names accepted by ParsePageQuery. "page" is an alias of current_page.
const (
	ParamTotalRecords = "total_records"
	ParamCurrentPage  = "current_page"
	ParamPage         = "page"
	ParamLimit        = "limit"
)

// ParsePageQuery coerces raw string values into a PageQuery, collecting one
// FieldError per missing or non-integer parameter. Range checks are left to Paginate.
func ParsePageQuery(raw map[string]string) (model.PageQuery, error) {
	var (
		q     model.PageQuery
		ferrs []FieldError
	)

	q.TotalRecords, ferrs = parseIntField(raw, ParamTotalRecords, ferrs)

	pageKey := ParamCurrentPage
	if _, ok := raw[ParamCurrentPage]; !ok {
		if _, alias := raw[ParamPage]; alias {
			pageKey = ParamPage
		}
	}
	q.CurrentPage, ferrs = parseIntField(raw, pageKey, ferrs)

	q.Limit, ferrs = parseIntField(raw, ParamLimit, ferrs)

	if err := NewInvalidInput(ferrs); err != nil {
		return model.PageQuery{}, err
	}
	return q, nil
}

func parseIntField(raw map[string]string, key string, ferrs []FieldError) (int, []FieldError) {
	v, ok := raw[key]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return 0, append(ferrs, FieldError{Field: key, Message: "is required"})
	}
	v, ok = decimalDigits(v)
	if !ok {
		return 0, append(ferrs, FieldError{Field: key, Message: "must be an integer"})
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, append(ferrs, FieldError{Field: key, Message: "must be an integer"})
	}
	return n, ferrs
}

// decimalDigits accepts an optionally signed run of ASCII digits and strips
// leading zeros. cast parses with base 0, so "010" would otherwise read as octal
// and "0x10" as hex; floats, exponents and digit separators are rejected too.
func decimalDigits(v string) (string, bool) {
	sign := ""
	if v[0] == '+' || v[0] == '-' {
		sign, v = v[:1], v[1:]
	}
	if v == "" {
		return "", false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	v = strings.TrimLeft(v, "0")
	if v == "" {
		return "0", true
	}
	if sign == "-" {
		return sign + v, true
	}
	return v, true
}
