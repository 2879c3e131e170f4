package report

import (
	"fmt"
	"time"
)

// Report is the generic evidence record attached by reference from a work
// order: a description plus before/after photo URLs. The photos live in
// external object storage; only their URLs pass through here.
type Report struct {
	id             uint
	description    string
	beforePhotoURL string
	afterPhotoURL  string
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReport(description, beforePhotoURL, afterPhotoURL string) (*Report, error) {
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(beforePhotoURL) == 0 {
		return nil, fmt.Errorf("before photo is required")
	}
	if len(afterPhotoURL) == 0 {
		return nil, fmt.Errorf("after photo is required")
	}

	now := time.Now()
	return &Report{
		description:    description,
		beforePhotoURL: beforePhotoURL,
		afterPhotoURL:  afterPhotoURL,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructReport(
	id uint,
	description string,
	beforePhotoURL string,
	afterPhotoURL string,
	version int,
	createdAt, updatedAt time.Time,
) (*Report, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}

	return &Report{
		id:             id,
		description:    description,
		beforePhotoURL: beforePhotoURL,
		afterPhotoURL:  afterPhotoURL,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Report) ID() uint {
	return r.id
}

func (r *Report) Description() string {
	return r.description
}

func (r *Report) BeforePhotoURL() string {
	return r.beforePhotoURL
}

func (r *Report) AfterPhotoURL() string {
	return r.afterPhotoURL
}

func (r *Report) Version() int {
	return r.version
}

func (r *Report) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Report) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Report) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	return nil
}

// Edit replaces the report content while the parent ticket is still open.
func (r *Report) Edit(description, beforePhotoURL, afterPhotoURL string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(beforePhotoURL) == 0 {
		return fmt.Errorf("before photo is required")
	}
	if len(afterPhotoURL) == 0 {
		return fmt.Errorf("after photo is required")
	}

	r.description = description
	r.beforePhotoURL = beforePhotoURL
	r.afterPhotoURL = afterPhotoURL
	r.updatedAt = time.Now()
	r.version++

	return nil
}
