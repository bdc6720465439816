package directory

import (
	"context"

	"github.com/Makepad-fr/staff/internal/model"
)

// Source yields the full employee list in one read.
type Source interface {
	Fetch(ctx context.Context) ([]model.Employee, error)
}
