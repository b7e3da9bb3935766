package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job carries the display fields of a posting. Persisted job documents are
// handled as bson.M so employer-supplied fields round-trip untouched; this
// typed view exists for the read-side join onto applications.
type Job struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	HREmail        string             `bson:"hr_email" json:"hr_email"`
	Title          string             `bson:"title" json:"title"`
	Company        string             `bson:"company" json:"company"`
	CompanyLogo    string             `bson:"company_logo" json:"company_logo"`
	Location       string             `bson:"location" json:"location"`
	Status         string             `bson:"status" json:"status"`
	TotalApplicant int                `bson:"totalApplicant,omitempty" json:"totalApplicant,omitempty"`
}
