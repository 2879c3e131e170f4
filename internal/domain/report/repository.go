package report

import "context"

type Repository interface {
	Save(ctx context.Context, r *Report) error
	Update(ctx context.Context, r *Report) error
	Delete(ctx context.Context, reportID uint) error
	GetByID(ctx context.Context, reportID uint) (*Report, error)
}
