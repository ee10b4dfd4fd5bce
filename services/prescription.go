package services

import (
	"context"
	"log"

	"clinicstore/cache"
	"clinicstore/models"
	"clinicstore/repository"
)

// PrescriptionService stores appointmentId exactly as given; whether the
// appointment exists is not checked here.
type PrescriptionService struct {
	repo  repository.PrescriptionStore
	cache *cache.Cache
}

func NewPrescriptionService(repo repository.PrescriptionStore, c *cache.Cache) *PrescriptionService {
	return &PrescriptionService{repo: repo, cache: c}
}

/*
* Validate user inputs first
* Save to db, the store generates the id
* Set in cache
 */
func (s *PrescriptionService) CreatePrescription(ctx context.Context, req models.PrescriptionRequest) (*models.Prescription, error) {
	prescription, err := models.NewPrescription(req)
	if err != nil {
		log.Println("Error from NewPrescription: ", err)
		return nil, err
	}
	if err := s.repo.Save(ctx, prescription); err != nil {
		log.Println("Error from save prescription: ", err)
		return nil, err
	}
	if err := s.cache.SetCache(ctx, cache.PrescriptionKey(prescription.ID), prescription); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return prescription, nil
}

func (s *PrescriptionService) UpdatePrescription(ctx context.Context, id string, patch models.PrescriptionPatch) (*models.Prescription, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Println("Error from get prescription: ", err)
		return nil, err
	}
	updated, err := patch.ApplyTo(existing)
	if err != nil {
		log.Println("Error from ApplyTo: ", err)
		return nil, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		log.Println("Error from save prescription: ", err)
		return nil, err
	}

	key := cache.PrescriptionKey(id)
	if err := s.cache.DeleteCache(ctx, key); err != nil {
		log.Println("Failed deleting old prescription from cache:", err)
	}
	if err := s.cache.SetCache(ctx, key, updated); err != nil {
		log.Println("Failed caching updated prescription:", err)
	}
	return updated, nil
}

func (s *PrescriptionService) FetchPrescription(ctx context.Context, id string) (*models.Prescription, error) {
	key := cache.PrescriptionKey(id)
	var cached models.Prescription
	found, err := s.cache.GetCache(ctx, key, &cached)
	if err != nil {
		log.Println("Error from getCache: ", err)
	}
	if found {
		return &cached, nil
	}

	prescription, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Println("Error from get prescription: ", err)
		return nil, err
	}
	if err := s.cache.SetCache(ctx, key, prescription); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return prescription, nil
}

func (s *PrescriptionService) DeletePrescription(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Println("Error from delete prescription: ", err)
		return err
	}
	if err := s.cache.DeleteCache(ctx, cache.PrescriptionKey(id)); err != nil {
		log.Println("Error from deleteCache: ", err)
	}
	return nil
}
