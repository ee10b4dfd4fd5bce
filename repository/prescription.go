package repository

import (
	"context"
	"errors"
	"log"

	"clinicstore/models"
	"clinicstore/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type prescriptionDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	PatientName   string             `bson:"patientName"`
	AppointmentID int64              `bson:"appointmentId"`
	Medication    string             `bson:"medication"`
	Dosage        string             `bson:"dosage"`
	DoctorNotes   string             `bson:"doctorNotes,omitempty"`
}

type PrescriptionRepository struct {
	collection *mongo.Collection
}

var _ PrescriptionStore = (*PrescriptionRepository)(nil)

func NewPrescriptionRepository(db *mongo.Database) *PrescriptionRepository {
	return &PrescriptionRepository{collection: db.Collection(util.PrescriptionCollection)}
}

func (r *PrescriptionRepository) Get(ctx context.Context, id string) (*models.Prescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc prescriptionDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Println("Error from findOne function: ", err)
		return nil, err
	}
	return toPrescription(&doc), nil
}

/*
* Without an id the document is inserted and the driver generated ObjectID is kept
* With an id the stored document is replaced
 */
func (r *PrescriptionRepository) Save(ctx context.Context, p *models.Prescription) error {
	if p == nil {
		return util.ErrNilRecord
	}
	doc := toPrescriptionDocument(p)
	if p.ID == "" {
		res, err := r.collection.InsertOne(ctx, doc)
		if err != nil {
			log.Println("Error from insertOne: ", err)
			return err
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return errors.New(util.UNEXPECTED_INSERTED_ID)
		}
		p.ID = oid.Hex()
		return nil
	}

	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return ErrNotFound
	}
	doc.ID = oid
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		log.Println("Error from replaceOne: ", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Println("Error from deleteOne: ", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func toPrescriptionDocument(p *models.Prescription) prescriptionDocument {
	return prescriptionDocument{
		PatientName:   p.PatientName,
		AppointmentID: p.AppointmentID,
		Medication:    p.Medication,
		Dosage:        p.Dosage,
		DoctorNotes:   p.DoctorNotes,
	}
}

func toPrescription(doc *prescriptionDocument) *models.Prescription {
	return &models.Prescription{
		ID:            doc.ID.Hex(),
		PatientName:   doc.PatientName,
		AppointmentID: doc.AppointmentID,
		Medication:    doc.Medication,
		Dosage:        doc.Dosage,
		DoctorNotes:   doc.DoctorNotes,
	}
}
