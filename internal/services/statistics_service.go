// internal/services/statistics_service.go
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/phixforge/phixforge-backend/internal/metrics"
	"github.com/phixforge/phixforge-backend/internal/models"
)

// ProposalSource yields a fully-materialized snapshot of the proposal
// collection. The metrics engine is a pure function of this snapshot; it
// never reads storage itself and never mutates what it is given.
type ProposalSource interface {
	Proposals() ([]models.Proposal, error)
}

type StatisticsService struct {
	source ProposalSource
	now    func() time.Time
}

func NewStatisticsService(source ProposalSource) *StatisticsService {
	return &StatisticsService{source: source, now: time.Now}
}

// Dashboard recomputes the full dashboard payload from a fresh snapshot.
// Recomputation is idempotent; callers invoke it on every mutation.
func (s *StatisticsService) Dashboard(filter metrics.Filter) (*metrics.DashboardStats, error) {
	proposals, err := s.source.Proposals()
	if err != nil {
		return nil, fmt.Errorf("failed to load proposals: %w", err)
	}

	stats := metrics.Dashboard(proposals, filter, s.now())
	return &stats, nil
}

// Filters lists the years and programmes the dashboard can be narrowed to.
func (s *StatisticsService) Filters() (*metrics.FilterOptions, error) {
	proposals, err := s.source.Proposals()
	if err != nil {
		return nil, fmt.Errorf("failed to load proposals: %w", err)
	}

	options := metrics.AvailableFilters(proposals)
	return &options, nil
}

// GormProposalSource reads the proposal snapshot from the database.
type GormProposalSource struct {
	db *gorm.DB
}

func NewGormProposalSource(db *gorm.DB) *GormProposalSource {
	return &GormProposalSource{db: db}
}

func (s *GormProposalSource) Proposals() ([]models.Proposal, error) {
	var proposals []models.Proposal
	if err := s.db.Order("created_at asc").Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}
