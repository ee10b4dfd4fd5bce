package util

import "errors"

// Collections and tables
const (
	DoctorTable            = "doctors"
	DoctorAvailableTimes   = "doctor_available_times"
	PrescriptionCollection = "prescriptions"
)

// Cache key prefixes
const (
	DoctorKey       = "doctor:"
	PrescriptionKey = "prescription:"
)

const (
	RECORD_NOT_FOUND        = "record not found"
	NIL_RECORD              = "record must not be nil"
	FAILED_TO_HASH_PASSWORD = "failed to hash password"
	UNEXPECTED_INSERTED_ID  = "unexpected inserted id type"
)

var (
	ErrNotFound  = errors.New(RECORD_NOT_FOUND)
	ErrNilRecord = errors.New(NIL_RECORD)
)
