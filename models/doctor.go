package models

// Doctor is the practitioner record kept in the relational store.
// ID is assigned by the store on first insert. Password never leaves the
// process through JSON.
type Doctor struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name" validate:"required,min=3,max=100"`
	Specialty      string   `json:"specialty" validate:"required,min=3,max=50"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"-" validate:"required,min=6"`
	Phone          string   `json:"phone" validate:"required,phone10"`
	AvailableTimes []string `json:"availableTimes"`
}

// DoctorRequest is the inbound payload for a new doctor.
type DoctorRequest struct {
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	AvailableTimes []string `json:"availableTimes"`
}

// DoctorPatch carries the fields of a partial update. Nil means unchanged.
type DoctorPatch struct {
	Name           *string   `json:"name,omitempty"`
	Specialty      *string   `json:"specialty,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Password       *string   `json:"password,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	AvailableTimes *[]string `json:"availableTimes,omitempty"`
}

// DoctorResponse is the outward view of a doctor. It has no password field.
type DoctorResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	AvailableTimes []string `json:"availableTimes"`
}

func NewDoctor(req DoctorRequest) (*Doctor, error) {
	d := &Doctor{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		AvailableTimes: slotList(req.AvailableTimes),
	}
	if err := newValidationError("doctor", ValidateDoctor(d)); err != nil {
		return nil, err
	}
	return d, nil
}

func ValidateDoctor(d *Doctor) []FieldViolation {
	if d == nil {
		return []FieldViolation{{Field: "doctor", Rule: "required", Message: ruleMessage("required", "")}}
	}
	return checkStruct(d)
}

// ApplyTo returns a copy of d with the patch applied. d is never modified.
func (p DoctorPatch) ApplyTo(d *Doctor) (*Doctor, error) {
	if d == nil {
		return nil, newValidationError("doctor", ValidateDoctor(nil))
	}
	out := d.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Specialty != nil {
		out.Specialty = *p.Specialty
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Password != nil {
		out.Password = *p.Password
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.AvailableTimes != nil {
		out.AvailableTimes = copyStrings(*p.AvailableTimes)
	}
	out.AvailableTimes = slotList(out.AvailableTimes)
	if err := newValidationError("doctor", ValidateDoctor(out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Doctor) Clone() *Doctor {
	out := *d
	out.AvailableTimes = copyStrings(d.AvailableTimes)
	return &out
}

func NewDoctorResponse(d *Doctor) DoctorResponse {
	return DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Specialty:      d.Specialty,
		Email:          d.Email,
		Phone:          d.Phone,
		AvailableTimes: slotList(d.AvailableTimes),
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// slotList copies slots, turning nil into an empty list.
func slotList(in []string) []string {
	if in == nil {
		return []string{}
	}
	return copyStrings(in)
}
