package services

import (
	"context"
	"fmt"
	"log"

	"clinicstore/cache"
	"clinicstore/models"
	"clinicstore/repository"
	"clinicstore/util"

	"golang.org/x/crypto/bcrypt"
)

var passwordCost = bcrypt.DefaultCost

// doctorCacheEntry is the cached form of a doctor. Unlike models.Doctor it
// carries the password hash, so a cache hit is a complete record.
type doctorCacheEntry struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	AvailableTimes []string `json:"availableTimes"`
}

func newDoctorCacheEntry(d *models.Doctor) doctorCacheEntry {
	return doctorCacheEntry{
		ID:             d.ID,
		Name:           d.Name,
		Specialty:      d.Specialty,
		Email:          d.Email,
		Password:       d.Password,
		Phone:          d.Phone,
		AvailableTimes: d.AvailableTimes,
	}
}

func (e doctorCacheEntry) doctor() *models.Doctor {
	slots := e.AvailableTimes
	if slots == nil {
		slots = []string{}
	}
	return &models.Doctor{
		ID:             e.ID,
		Name:           e.Name,
		Specialty:      e.Specialty,
		Email:          e.Email,
		Password:       e.Password,
		Phone:          e.Phone,
		AvailableTimes: slots,
	}
}

type DoctorService struct {
	repo  repository.DoctorStore
	cache *cache.Cache
}

func NewDoctorService(repo repository.DoctorStore, c *cache.Cache) *DoctorService {
	return &DoctorService{repo: repo, cache: c}
}

/*
* Validate the request first
* Hash the password, the plain one is never stored
* Save to db, the store assigns the id
* Set in cache
 */
func (s *DoctorService) CreateDoctor(ctx context.Context, req models.DoctorRequest) (*models.Doctor, error) {
	doctor, err := models.NewDoctor(req)
	if err != nil {
		log.Println("Error from NewDoctor: ", err)
		return nil, err
	}
	doctor.Password, err = hashPassword(doctor.Password)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, doctor); err != nil {
		log.Println("Error from save doctor: ", err)
		return nil, err
	}
	if err := s.cache.SetCache(ctx, cache.DoctorKey(doctor.ID), newDoctorCacheEntry(doctor)); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return doctor, nil
}

/*
* Fetch the stored doctor from db
* Apply the patch on a copy and validate the merged record
* Rehash the password only when a new one was given
* Save, then delete from cache and set in cache
 */
func (s *DoctorService) UpdateDoctor(ctx context.Context, id int64, patch models.DoctorPatch) (*models.Doctor, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Println("Error from get doctor: ", err)
		return nil, err
	}
	updated, err := patch.ApplyTo(existing)
	if err != nil {
		log.Println("Error from ApplyTo: ", err)
		return nil, err
	}
	if patch.Password != nil {
		updated.Password, err = hashPassword(updated.Password)
		if err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		log.Println("Error from save doctor: ", err)
		return nil, err
	}

	key := cache.DoctorKey(id)
	if err := s.cache.DeleteCache(ctx, key); err != nil {
		log.Println("Failed deleting old doctor from cache:", err)
	}
	if err := s.cache.SetCache(ctx, key, newDoctorCacheEntry(updated)); err != nil {
		log.Println("Failed caching updated doctor:", err)
	}
	return updated, nil
}

/*
* Look in the cache first
* If not found go to db and cache what was found
 */
func (s *DoctorService) FetchDoctor(ctx context.Context, id int64) (*models.Doctor, error) {
	key := cache.DoctorKey(id)
	var cached doctorCacheEntry
	found, err := s.cache.GetCache(ctx, key, &cached)
	if err != nil {
		log.Println("Error from getCache: ", err)
	}
	if found {
		return cached.doctor(), nil
	}

	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Println("Error from get doctor: ", err)
		return nil, err
	}
	if err := s.cache.SetCache(ctx, key, newDoctorCacheEntry(doctor)); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return doctor, nil
}

func (s *DoctorService) DeleteDoctor(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Println("Error from delete doctor: ", err)
		return err
	}
	if err := s.cache.DeleteCache(ctx, cache.DoctorKey(id)); err != nil {
		log.Println("Error from deleteCache: ", err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		log.Println("Error from bcrypt: ", err)
		return "", fmt.Errorf("%s: %w", util.FAILED_TO_HASH_PASSWORD, err)
	}
	return string(hashed), nil
}
