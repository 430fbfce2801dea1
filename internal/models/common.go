// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// JSONColumn stores a typed value as a PostgreSQL jsonb column.
type JSONColumn[T any] struct {
	Data T
}

func (j JSONColumn[T]) Value() (driver.Value, error) {
	return json.Marshal(j.Data)
}

func (j *JSONColumn[T]) Scan(value interface{}) error {
	if value == nil {
		var zero T
		j.Data = zero
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("jsonb column: expected []byte")
	}

	return json.Unmarshal(bytes, &j.Data)
}

func (j JSONColumn[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Data)
}

func (j *JSONColumn[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &j.Data)
}

// Enums
type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Collection names used by the snapshot export/import payload. The keys match
// the export files produced by earlier versions of the tool, so old snapshots
// import cleanly.
const (
	CollectionProposals            = "proposals"
	CollectionProjects             = "projects"
	CollectionProcesses            = "processes"
	CollectionPublications         = "publications"
	CollectionInfrastructure       = "infrastructure"
	CollectionPeople               = "people"
	CollectionOrganizations        = "organizations"
	CollectionCustomProgrammes     = "customProgrammes"
	CollectionPersonnelInvolvement = "personnelInvolvement"
	CollectionExploitation         = "exploitation"
	CollectionCompanyDescription   = "companyDescription"
)
