// internal/services/snapshot_service.go
package services

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gorm.io/gorm"

	"github.com/phixforge/phixforge-backend/internal/models"
)

// Snapshot is the whole-store export payload. The field keys match the JSON
// files produced by earlier versions of the tool, so those files import
// without conversion. Custom programmes travel as plain labels.
type Snapshot struct {
	Proposals            []models.Proposal             `json:"proposals"`
	Projects             []models.Project              `json:"projects"`
	Processes            []models.Process              `json:"processes"`
	Publications         []models.Publication          `json:"publications"`
	Infrastructure       []models.Infrastructure       `json:"infrastructure"`
	People               []models.Person               `json:"people"`
	Organizations        []models.Organization         `json:"organizations"`
	CustomProgrammes     []string                      `json:"customProgrammes"`
	PersonnelInvolvement []models.PersonnelInvolvement `json:"personnelInvolvement"`
	Exploitation         []models.Exploitation         `json:"exploitation"`
	CompanyDescription   []models.CompanyDescription   `json:"companyDescription"`
}

// ImportSummary reports how many records each collection received. A
// collection absent from the payload is left untouched and does not appear.
type ImportSummary map[string]int

type SnapshotService struct {
	db *gorm.DB
}

func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// Export marshals every collection into one indented JSON document.
func (s *SnapshotService) Export() ([]byte, error) {
	snapshot := Snapshot{
		CustomProgrammes: []string{},
	}

	loaders := []struct {
		name string
		dest interface{}
	}{
		{models.CollectionProposals, &snapshot.Proposals},
		{models.CollectionProjects, &snapshot.Projects},
		{models.CollectionProcesses, &snapshot.Processes},
		{models.CollectionPublications, &snapshot.Publications},
		{models.CollectionInfrastructure, &snapshot.Infrastructure},
		{models.CollectionPeople, &snapshot.People},
		{models.CollectionOrganizations, &snapshot.Organizations},
		{models.CollectionPersonnelInvolvement, &snapshot.PersonnelInvolvement},
		{models.CollectionExploitation, &snapshot.Exploitation},
		{models.CollectionCompanyDescription, &snapshot.CompanyDescription},
	}

	for _, loader := range loaders {
		if err := s.db.Order("created_at asc").Find(loader.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", loader.name, err)
		}
	}

	var programmes []models.CustomProgramme
	if err := s.db.Order("created_at asc").Find(&programmes).Error; err != nil {
		return nil, fmt.Errorf("failed to load custom programmes: %w", err)
	}
	for _, p := range programmes {
		snapshot.CustomProgrammes = append(snapshot.CustomProgrammes, p.Name)
	}

	return gojson.MarshalIndent(snapshot, "", "  ")
}

// Import replaces every collection present in the payload. Collections the
// payload omits keep their current contents; last write wins, there is no
// merging. The payload is decoded in full before anything is written and all
// writes share one transaction, so a malformed or partially unwritable
// snapshot leaves the store untouched.
func (s *SnapshotService) Import(data []byte) (ImportSummary, error) {
	var raw map[string]gojson.RawMessage
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid snapshot payload: %w", err)
	}

	summary := ImportSummary{}
	var writes []func(tx *gorm.DB) error

	if payload, ok := raw[models.CollectionProposals]; ok {
		var proposals []models.Proposal
		if err := gojson.Unmarshal(payload, &proposals); err != nil {
			return nil, fmt.Errorf("invalid proposals payload: %w", err)
		}
		for i := range proposals {
			normalizeProposal(&proposals[i])
		}
		writes = append(writes, func(tx *gorm.DB) error {
			return NewCollectionService[models.Proposal](tx, "").ReplaceAll(proposals)
		})
		summary[models.CollectionProposals] = len(proposals)
	}

	if err := stageCollection[models.Project](raw, models.CollectionProjects, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.Process](raw, models.CollectionProcesses, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.Publication](raw, models.CollectionPublications, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.Infrastructure](raw, models.CollectionInfrastructure, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.Person](raw, models.CollectionPeople, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.Organization](raw, models.CollectionOrganizations, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.PersonnelInvolvement](raw, models.CollectionPersonnelInvolvement, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.Exploitation](raw, models.CollectionExploitation, summary, &writes); err != nil {
		return nil, err
	}
	if err := stageCollection[models.CompanyDescription](raw, models.CollectionCompanyDescription, summary, &writes); err != nil {
		return nil, err
	}

	if payload, ok := raw[models.CollectionCustomProgrammes]; ok {
		var names []string
		if err := gojson.Unmarshal(payload, &names); err != nil {
			return nil, fmt.Errorf("invalid custom programmes payload: %w", err)
		}
		programmes := make([]models.CustomProgramme, 0, len(names))
		for _, name := range names {
			if name == "" {
				continue
			}
			programmes = append(programmes, models.CustomProgramme{Name: name})
		}
		writes = append(writes, func(tx *gorm.DB) error {
			return NewCollectionService[models.CustomProgramme](tx, "").ReplaceAll(programmes)
		})
		summary[models.CollectionCustomProgrammes] = len(programmes)
	}

	if len(writes) == 0 {
		return summary, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, write := range writes {
			if err := write(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// stageCollection decodes one collection of the payload and queues its write.
// Decoding happens up front so a bad payload fails before the transaction
// starts.
func stageCollection[T any](raw map[string]gojson.RawMessage, name string, summary ImportSummary, writes *[]func(tx *gorm.DB) error) error {
	payload, ok := raw[name]
	if !ok {
		return nil
	}

	var records []T
	if err := gojson.Unmarshal(payload, &records); err != nil {
		return fmt.Errorf("invalid %s payload: %w", name, err)
	}
	*writes = append(*writes, func(tx *gorm.DB) error {
		return NewCollectionService[T](tx, "").ReplaceAll(records)
	})
	summary[name] = len(records)
	return nil
}
