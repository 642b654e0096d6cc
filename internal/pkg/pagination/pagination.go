package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit far from int overflow.
	MaxPage      = 1_000_000
)

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// FromQuery reads page and limit from the query string. Missing or invalid
// values fall back to the defaults and limit is capped at MaxLimit.
func FromQuery(c *gin.Context) Params {
	return New(atoi(c.Query("page")), atoi(c.Query("limit")))
}

// FromQueryLimit is FromQuery with a different default page size.
func FromQueryLimit(c *gin.Context, defaultLimit int) Params {
	limit := atoi(c.Query("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	return New(atoi(c.Query("page")), limit)
}

func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// Meta is the generic pagination block.
type Meta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

func (p Params) Meta(total int64) Meta {
	pages := p.TotalPages(total)
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
		HasNext:      p.Page < pages,
		HasPrev:      p.Page > 1,
	}
}

// ArticleMeta is the block returned by article listings.
type ArticleMeta struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalArticles int64 `json:"totalArticles"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

func (p Params) ArticleMeta(total int64) ArticleMeta {
	pages := p.TotalPages(total)
	return ArticleMeta{
		CurrentPage:   p.Page,
		TotalPages:    pages,
		TotalArticles: total,
		HasNextPage:   p.Page < pages,
		HasPrevPage:   p.Page > 1,
	}
}

// MessageMeta is the block returned by message listings.
type MessageMeta struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalMessages int64 `json:"totalMessages"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

func (p Params) MessageMeta(total int64) MessageMeta {
	pages := p.TotalPages(total)
	return MessageMeta{
		CurrentPage:   p.Page,
		TotalPages:    pages,
		TotalMessages: total,
		HasNextPage:   p.Page < pages,
		HasPrevPage:   p.Page > 1,
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
