package repository

import (
	"context"
	"errors"
	"log"

	"clinicstore/models"
	"clinicstore/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRow struct {
	ID             int64                    `gorm:"primaryKey;autoIncrement"`
	Name           string                   `gorm:"size:100;not null"`
	Specialty      string                   `gorm:"size:50;not null"`
	Email          string                   `gorm:"not null"`
	Password       string                   `gorm:"not null"`
	Phone          string                   `gorm:"size:10;not null"`
	AvailableTimes []doctorAvailableTimeRow `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

func (doctorRow) TableName() string { return util.DoctorTable }

// doctorAvailableTimeRow is one slot of the ordered availability list.
type doctorAvailableTimeRow struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	DoctorID int64  `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Slot     string `gorm:"not null"`
}

func (doctorAvailableTimeRow) TableName() string { return util.DoctorAvailableTimes }

type DoctorRepository struct {
	db *gorm.DB
}

var _ DoctorStore = (*DoctorRepository)(nil)

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// AutoMigrate creates the doctor table and its slot side table.
func (r *DoctorRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&doctorRow{}, &doctorAvailableTimeRow{})
}

func (r *DoctorRepository) Get(ctx context.Context, id int64) (*models.Doctor, error) {
	var row doctorRow
	err := r.db.WithContext(ctx).
		Preload("AvailableTimes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Println("Error from the first function: ", err)
		return nil, err
	}
	return toDoctor(&row), nil
}

/*
* New doctors are inserted and the generated id is written back
* Existing doctors get their columns overwritten
* Slots are replaced as a whole, keeping their order
 */
func (r *DoctorRepository) Save(ctx context.Context, d *models.Doctor) error {
	if d == nil {
		return util.ErrNilRecord
	}
	row := toDoctorRow(d)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if row.ID == 0 {
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return err
			}
		} else {
			var count int64
			if err := tx.Model(&doctorRow{}).Where("id = ?", row.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			err := tx.Model(&doctorRow{}).Where("id = ?", row.ID).Updates(map[string]interface{}{
				"name":      row.Name,
				"specialty": row.Specialty,
				"email":     row.Email,
				"password":  row.Password,
				"phone":     row.Phone,
			}).Error
			if err != nil {
				return err
			}
			if err := tx.Where("doctor_id = ?", row.ID).Delete(&doctorAvailableTimeRow{}).Error; err != nil {
				return err
			}
		}
		slots := toSlotRows(row.ID, d.AvailableTimes)
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Println("Error from save doctor: ", err)
		}
		return err
	}
	d.ID = row.ID
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", id).Delete(&doctorAvailableTimeRow{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&doctorRow{}, "id = ?", id)
		if res.Error != nil {
			log.Println("Error from delete doctor: ", res.Error)
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func toDoctorRow(d *models.Doctor) doctorRow {
	return doctorRow{
		ID:        d.ID,
		Name:      d.Name,
		Specialty: d.Specialty,
		Email:     d.Email,
		Password:  d.Password,
		Phone:     d.Phone,
	}
}

func toSlotRows(doctorID int64, slots []string) []doctorAvailableTimeRow {
	rows := make([]doctorAvailableTimeRow, 0, len(slots))
	for i, slot := range slots {
		rows = append(rows, doctorAvailableTimeRow{DoctorID: doctorID, Position: i, Slot: slot})
	}
	return rows
}

func toDoctor(row *doctorRow) *models.Doctor {
	slots := make([]string, 0, len(row.AvailableTimes))
	for _, s := range row.AvailableTimes {
		slots = append(slots, s.Slot)
	}
	return &models.Doctor{
		ID:             row.ID,
		Name:           row.Name,
		Specialty:      row.Specialty,
		Email:          row.Email,
		Password:       row.Password,
		Phone:          row.Phone,
		AvailableTimes: slots,
	}
}
