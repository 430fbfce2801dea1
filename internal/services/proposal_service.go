// internal/services/proposal_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phixforge/phixforge-backend/internal/metrics"
	"github.com/phixforge/phixforge-backend/internal/models"
	"github.com/phixforge/phixforge-backend/internal/utils"
)

var ErrProposalNotFound = errors.New("proposal not found")

type ProposalService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProposalService(db *gorm.DB) *ProposalService {
	return &ProposalService{db: db, now: time.Now}
}

type ProposalSearchParams struct {
	utils.PaginationParams
	Programme string `json:"programme,omitempty"`
	Granted   *bool  `json:"granted,omitempty"`
}

func (s *ProposalService) GetProposals(params ProposalSearchParams) ([]models.Proposal, int64, error) {
	query := s.db.Model(&models.Proposal{})

	if params.Programme != "" {
		query = query.Where("programme = ?", params.Programme)
	}
	if params.Granted != nil {
		query = query.Where("is_granted = ?", *params.Granted)
	}
	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("acronym ILIKE ? OR call ILIKE ? OR programme ILIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proposals: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "acronym", "programme", "deadline", "phix_budget"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var proposals []models.Proposal
	if err := query.Find(&proposals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch proposals: %w", err)
	}

	return proposals, total, nil
}

func (s *ProposalService) GetProposal(id uuid.UUID) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := s.db.First(&proposal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &proposal, nil
}

func (s *ProposalService) CreateProposal(proposal *models.Proposal) (*models.Proposal, error) {
	if err := utils.ValidateStruct(proposal); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	proposal.ID = uuid.Nil
	normalizeProposal(proposal)

	if err := s.db.Create(proposal).Error; err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return proposal, nil
}

// UpdateProposal replaces the stored record wholesale; edits are full-record
// writes, matching how the forms submit.
func (s *ProposalService) UpdateProposal(id uuid.UUID, proposal *models.Proposal) (*models.Proposal, error) {
	if err := utils.ValidateStruct(proposal); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.GetProposal(id)
	if err != nil {
		return nil, err
	}

	proposal.ID = existing.ID
	proposal.CreatedAt = existing.CreatedAt
	normalizeProposal(proposal)

	if err := s.db.Save(proposal).Error; err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}
	return proposal, nil
}

func (s *ProposalService) DeleteProposal(id uuid.UUID) error {
	result := s.db.Delete(&models.Proposal{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete proposal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProposalNotFound
	}
	return nil
}

// GetBudget returns the financial rollup plus the co-funding gap for one
// proposal. The figures come from the same engine the dashboard and the
// report exporter use, so the three surfaces never diverge.
func (s *ProposalService) GetBudget(id uuid.UUID) (*ProposalBudget, error) {
	proposal, err := s.GetProposal(id)
	if err != nil {
		return nil, err
	}

	rollup := metrics.BudgetRollup(proposal.WorkPackages.Data)
	budget := metrics.ProposalBudget(*proposal)
	return &ProposalBudget{
		BudgetBreakdown: rollup,
		CoFunding:       metrics.CoFundingGap(budget, proposal.FundedPercent),
	}, nil
}

type ProposalBudget struct {
	metrics.BudgetBreakdown
	CoFunding float64 `json:"coFunding"`
}

var ErrNoTimeline = errors.New("proposal has no timeline: not granted or missing start date")

// GetTimeline computes the progress figures for one granted proposal.
func (s *ProposalService) GetTimeline(id uuid.UUID) (*ProposalTimeline, error) {
	proposal, err := s.GetProposal(id)
	if err != nil {
		return nil, err
	}

	if !proposal.IsGranted || proposal.DurationMonths <= 0 {
		return nil, ErrNoTimeline
	}
	start, ok := metrics.ParseDate(proposal.StartDate)
	if !ok {
		return nil, ErrNoTimeline
	}

	now := s.now()
	return &ProposalTimeline{
		Timeline: metrics.ProjectTimeline(start, proposal.DurationMonths, proposal.ExtensionMonths, now),
		Status:   metrics.Classify(*proposal, now),
	}, nil
}

type ProposalTimeline struct {
	metrics.Timeline
	Status models.ProjectStatus `json:"status"`
}

// normalizeProposal enforces the record invariants before any write: the PHIX
// budget is recomputed from the work packages, and grant-only fields are
// cleared on ungranted proposals so downstream metrics never see them.
func normalizeProposal(p *models.Proposal) {
	if len(p.WorkPackages.Data) > 0 {
		p.PhixBudget = metrics.BudgetRollup(p.WorkPackages.Data).PhixBudget
	}

	if !p.IsGranted {
		p.IsCompleted = false
		p.StartDate = ""
		p.DurationMonths = 0
		p.ExtensionMonths = 0
	}
}
