package repository

import (
	"context"

	"clinicstore/models"
	"clinicstore/util"
)

// Repository is the persistence contract shared by every record type.
// Save inserts when the record has no id yet and writes the generated id
// back into it; otherwise it overwrites the stored record.
type Repository[T any, ID comparable] interface {
	Get(ctx context.Context, id ID) (*T, error)
	Save(ctx context.Context, record *T) error
	Delete(ctx context.Context, id ID) error
}

type (
	DoctorStore       = Repository[models.Doctor, int64]
	PrescriptionStore = Repository[models.Prescription, string]
)

var ErrNotFound = util.ErrNotFound
