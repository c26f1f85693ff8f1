// Package model contains the request and response shapes shared across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "github.com/maxviazov/pagination-service/pkg/paginator"

// PageQuery is the input of a pagination request. Page numbers are 1-based.
type PageQuery struct {
	TotalRecords int `json:"total_records" form:"total_records"`
	CurrentPage  int `json:"current_page" form:"current_page"`
	Limit        int `json:"limit" form:"limit"`
}

// PageMeta is the metadata returned for a PageQuery.
type PageMeta = paginator.Result
