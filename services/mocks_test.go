package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"clinicstore/cache"
	"clinicstore/models"
	"clinicstore/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// --- MockDoctorRepository ---
var _ repository.DoctorStore = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	GetFunc    func(ctx context.Context, id int64) (*models.Doctor, error)
	SaveFunc   func(ctx context.Context, d *models.Doctor) error
	DeleteFunc func(ctx context.Context, id int64) error

	GetCallCount int32
}

func (m *MockDoctorRepository) Get(ctx context.Context, id int64) (*models.Doctor, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *MockDoctorRepository) Save(ctx context.Context, d *models.Doctor) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return errors.New("SaveFunc not implemented in mock")
}

func (m *MockDoctorRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

// newMemoryDoctorRepository backs the mock with a map and an id sequence.
func newMemoryDoctorRepository() *MockDoctorRepository {
	rows := map[int64]*models.Doctor{}
	var seq int64
	m := &MockDoctorRepository{}
	m.GetFunc = func(_ context.Context, id int64) (*models.Doctor, error) {
		d, ok := rows[id]
		if !ok {
			return nil, repository.ErrNotFound
		}
		return d.Clone(), nil
	}
	m.SaveFunc = func(_ context.Context, d *models.Doctor) error {
		if d.ID == 0 {
			seq++
			d.ID = seq
		} else if _, ok := rows[d.ID]; !ok {
			return repository.ErrNotFound
		}
		rows[d.ID] = d.Clone()
		return nil
	}
	m.DeleteFunc = func(_ context.Context, id int64) error {
		if _, ok := rows[id]; !ok {
			return repository.ErrNotFound
		}
		delete(rows, id)
		return nil
	}
	return m
}

// --- MockPrescriptionRepository ---
var _ repository.PrescriptionStore = (*MockPrescriptionRepository)(nil)

type MockPrescriptionRepository struct {
	GetFunc    func(ctx context.Context, id string) (*models.Prescription, error)
	SaveFunc   func(ctx context.Context, p *models.Prescription) error
	DeleteFunc func(ctx context.Context, id string) error

	GetCallCount int32
}

func (m *MockPrescriptionRepository) Get(ctx context.Context, id string) (*models.Prescription, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *MockPrescriptionRepository) Save(ctx context.Context, p *models.Prescription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return errors.New("SaveFunc not implemented in mock")
}

func (m *MockPrescriptionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func newMemoryPrescriptionRepository() *MockPrescriptionRepository {
	docs := map[string]models.Prescription{}
	var seq int
	m := &MockPrescriptionRepository{}
	m.GetFunc = func(_ context.Context, id string) (*models.Prescription, error) {
		p, ok := docs[id]
		if !ok {
			return nil, repository.ErrNotFound
		}
		return &p, nil
	}
	m.SaveFunc = func(_ context.Context, p *models.Prescription) error {
		if p.ID == "" {
			seq++
			p.ID = fmt.Sprintf("%024x", seq)
		} else if _, ok := docs[p.ID]; !ok {
			return repository.ErrNotFound
		}
		docs[p.ID] = *p
		return nil
	}
	m.DeleteFunc = func(_ context.Context, id string) error {
		if _, ok := docs[id]; !ok {
			return repository.ErrNotFound
		}
		delete(docs, id)
		return nil
	}
	return m
}

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(client, time.Minute), srv
}
