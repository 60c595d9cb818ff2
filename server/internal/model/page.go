package model

import (
	"github.com/pkg/errors"

	"github.com/Astemirdum/shareit/server/internal/errs"
)

const (
	DefaultPageSize        = 10
	DefaultRequestPageSize = 20
)

// Page is a from/size window mapped onto page numbers: from selects the page it falls into.
type Page struct {
	From int `query:"from"`
	Size int `query:"size"`
}

func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, errors.Wrap(errs.ErrValidation, "from must be non-negative")
	}
	if size < 1 {
		return Page{}, errors.Wrap(errs.ErrValidation, "size must be positive")
	}
	return Page{From: from, Size: size}, nil
}

func (p Page) Offset() uint64 {
	return uint64((p.From / p.Size) * p.Size)
}

func (p Page) Limit() uint64 {
	return uint64(p.Size)
}
