package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application links an applicant identity to a job. Like jobs, persisted
// applications are pass-through bson.M documents; JobID is the hex string of
// the referenced job's _id, compared as a plain string on the per-job listing.
type Application struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	JobID          string             `bson:"job_id" json:"job_id"`
	ApplicantEmail string             `bson:"applicant_email" json:"applicant_email"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
}
