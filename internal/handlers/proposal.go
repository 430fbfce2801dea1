// internal/handlers/proposal.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/phixforge/phixforge-backend/internal/models"
	"github.com/phixforge/phixforge-backend/internal/services"
	"github.com/phixforge/phixforge-backend/internal/utils"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
	reportService   *services.ReportService
}

func NewProposalHandler(proposalService *services.ProposalService, reportService *services.ReportService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
		reportService:   reportService,
	}
}

// GET /proposals
func (h *ProposalHandler) GetProposals(c *gin.Context) {
	params := services.ProposalSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if programme := c.Query("programme"); programme != "" {
		params.Programme = programme
	}
	if grantedStr := c.Query("granted"); grantedStr != "" {
		if granted, err := strconv.ParseBool(grantedStr); err == nil {
			params.Granted = &granted
		}
	}

	proposals, total, err := h.proposalService.GetProposals(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(proposals, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// POST /proposals
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var proposal models.Proposal
	if err := c.ShouldBindJSON(&proposal); err != nil {
		utils.BadRequestResponse(c, "Invalid proposal payload", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&proposal)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	created, err := h.proposalService.CreateProposal(&proposal)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, created)
}

// GET /proposals/:id
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.GetProposal(id)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	utils.SuccessResponse(c, proposal)
}

// PUT /proposals/:id
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var proposal models.Proposal
	if err := c.ShouldBindJSON(&proposal); err != nil {
		utils.BadRequestResponse(c, "Invalid proposal payload", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&proposal)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	updated, err := h.proposalService.UpdateProposal(id, &proposal)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	utils.SuccessResponse(c, updated)
}

// DELETE /proposals/:id
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.proposalService.DeleteProposal(id); err != nil {
		respondProposalError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// GET /proposals/:id/budget
func (h *ProposalHandler) GetProposalBudget(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	budget, err := h.proposalService.GetBudget(id)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	utils.SuccessResponse(c, budget)
}

// GET /proposals/:id/timeline
func (h *ProposalHandler) GetProposalTimeline(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	timeline, err := h.proposalService.GetTimeline(id)
	if err != nil {
		if errors.Is(err, services.ErrNoTimeline) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		respondProposalError(c, err)
		return
	}

	utils.SuccessResponse(c, timeline)
}

// GET /proposals/:id/report
func (h *ProposalHandler) GetProposalReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, fileName, err := h.reportService.BuildProposalReport(id)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := report.Write(c.Writer); err != nil {
		utils.InternalErrorResponse(c, "Failed to write report")
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func respondProposalError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrProposalNotFound) {
		utils.NotFoundResponse(c, "Proposal")
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}
