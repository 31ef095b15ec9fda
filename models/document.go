package models

import "time"

// DocumentTypes recognised by the documents page filters.
var DocumentTypes = []string{
	"Receita",
	"Relatório",
	"Exame",
	"Atestado",
	"Outro",
}

// Document is a clinical document attached to a patient. The file lives in
// Cloudinary; StorageID is its public ID there. Download URLs are signed on
// demand and never stored.
type Document struct {
	ID          string    `bson:"id" json:"id"`
	DoctorID    string    `bson:"doctor_id" json:"doctorId"`
	PatientName string    `bson:"patient_name" json:"patientName"`
	Name        string    `bson:"name" json:"name"`
	Type        string    `bson:"type" json:"type"`
	StorageID   string    `bson:"storage_id" json:"-"`
	SizeBytes   int64     `bson:"size_bytes" json:"sizeBytes"`
	Date        string    `bson:"date" json:"date"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// DocumentFilter narrows a document listing. Zero values mean "all".
type DocumentFilter struct {
	Search      string `form:"search"`
	PatientName string `form:"patient"`
	Type        string `form:"type"`
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
}

// DocumentPage is one page of a filtered listing.
type DocumentPage struct {
	Documents []Document `json:"documents"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
}
