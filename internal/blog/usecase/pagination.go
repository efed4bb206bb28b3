package usecase

import "math"

const (
	defaultPage int32 = 1
	defaultSize int32 = 10
)

// Pagination is the page window shared by list usecases. Zero values fall
// back to page 1 and 10 items. Page is capped so the offset stays far from
// the int32 range postgres accepts.
type Pagination struct {
	Page int32 `validate:"gte=0,lte=100000"`
	Size int32 `validate:"gte=0,lte=100"`
}

func (p Pagination) normalize() Pagination {
	if p.Page == 0 {
		p.Page = defaultPage
	}
	if p.Size == 0 {
		p.Size = defaultSize
	}
	return p
}

func (p Pagination) limitOffset() (limit, offset int32) {
	off := (int64(p.Page) - 1) * int64(p.Size)
	return p.Size, int32(min(max(off, 0), math.MaxInt32))
}
