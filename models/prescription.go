package models

// Prescription is kept in the document store. AppointmentID is a bare
// reference; nothing here checks that the appointment exists.
type Prescription struct {
	ID            string `json:"id"`
	PatientName   string `json:"patientName" validate:"required,min=3,max=100"`
	AppointmentID int64  `json:"appointmentId"`
	Medication    string `json:"medication" validate:"required,min=3,max=100"`
	Dosage        string `json:"dosage"`
	DoctorNotes   string `json:"doctorNotes" validate:"max=200"`
}

// PrescriptionRequest is the inbound payload. AppointmentID and Dosage must
// be present, but zero and empty values are accepted.
type PrescriptionRequest struct {
	PatientName   string  `json:"patientName"`
	AppointmentID *int64  `json:"appointmentId"`
	Medication    string  `json:"medication"`
	Dosage        *string `json:"dosage"`
	DoctorNotes   string  `json:"doctorNotes"`
}

type PrescriptionPatch struct {
	PatientName   *string `json:"patientName,omitempty"`
	AppointmentID *int64  `json:"appointmentId,omitempty"`
	Medication    *string `json:"medication,omitempty"`
	Dosage        *string `json:"dosage,omitempty"`
	DoctorNotes   *string `json:"doctorNotes,omitempty"`
}

type PrescriptionResponse struct {
	ID            string `json:"id"`
	PatientName   string `json:"patientName"`
	AppointmentID int64  `json:"appointmentId"`
	Medication    string `json:"medication"`
	Dosage        string `json:"dosage"`
	DoctorNotes   string `json:"doctorNotes"`
}

func NewPrescription(req PrescriptionRequest) (*Prescription, error) {
	p := &Prescription{
		PatientName: req.PatientName,
		Medication:  req.Medication,
		DoctorNotes: req.DoctorNotes,
	}
	var missing []FieldViolation
	if req.AppointmentID == nil {
		missing = append(missing, FieldViolation{Field: "appointmentId", Rule: "required", Message: ruleMessage("required", "")})
	} else {
		p.AppointmentID = *req.AppointmentID
	}
	if req.Dosage == nil {
		missing = append(missing, FieldViolation{Field: "dosage", Rule: "required", Message: ruleMessage("required", "")})
	} else {
		p.Dosage = *req.Dosage
	}
	violations := append(ValidatePrescription(p), missing...)
	if err := newValidationError("prescription", violations); err != nil {
		return nil, err
	}
	return p, nil
}

func ValidatePrescription(p *Prescription) []FieldViolation {
	if p == nil {
		return []FieldViolation{{Field: "prescription", Rule: "required", Message: ruleMessage("required", "")}}
	}
	return checkStruct(p)
}

func (patch PrescriptionPatch) ApplyTo(p *Prescription) (*Prescription, error) {
	if p == nil {
		return nil, newValidationError("prescription", ValidatePrescription(nil))
	}
	out := *p
	if patch.PatientName != nil {
		out.PatientName = *patch.PatientName
	}
	if patch.AppointmentID != nil {
		out.AppointmentID = *patch.AppointmentID
	}
	if patch.Medication != nil {
		out.Medication = *patch.Medication
	}
	if patch.Dosage != nil {
		out.Dosage = *patch.Dosage
	}
	if patch.DoctorNotes != nil {
		out.DoctorNotes = *patch.DoctorNotes
	}
	if err := newValidationError("prescription", ValidatePrescription(&out)); err != nil {
		return nil, err
	}
	return &out, nil
}

func NewPrescriptionResponse(p *Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:            p.ID,
		PatientName:   p.PatientName,
		AppointmentID: p.AppointmentID,
		Medication:    p.Medication,
		Dosage:        p.Dosage,
		DoctorNotes:   p.DoctorNotes,
	}
}
