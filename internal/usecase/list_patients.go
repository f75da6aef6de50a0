package usecase

import (
	"context"
	"strings"

	"github.com/sunriseclinic/recall-api/internal/entity"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ListPatientsUseCase struct {
	Repo PatientRepositoryInterface
}

func NewListPatientsUseCase(repo PatientRepositoryInterface) *ListPatientsUseCase {
	return &ListPatientsUseCase{Repo: repo}
}

// Execute never rejects bad input: anything malformed collapses to a default
// before it reaches the store. Unknown status values drop the filter entirely.
func (uc *ListPatientsUseCase) Execute(ctx context.Context, input ListPatientsInput) (*ListPatientsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filter := PatientFilter{
		Search: strings.TrimSpace(input.Search),
	}
	if status := entity.Status(input.Status); status.Valid() {
		filter.Status = status
	}

	records, total, err := uc.Repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []entity.Patient{}
	}

	return &ListPatientsOutput{
		Data: records,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}
