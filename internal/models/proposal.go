// internal/models/proposal.go
package models

import (
	"github.com/lib/pq"
)

// CostItem is a single described cost line inside a work package.
type CostItem struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// Task is a planned activity inside a work package.
type Task struct {
	Name           string `json:"name"`
	DurationMonths int    `json:"durationMonths"`
	Deliverable    string `json:"deliverable"`
	Milestone      string `json:"milestone"`
	Risk           string `json:"risk"`
	Mitigation     string `json:"mitigation"`
}

// WorkPackage carries the PHIX cost lines the budget rollup folds over.
type WorkPackage struct {
	Number           string     `json:"number"`
	Description      string     `json:"description"`
	LeadPartner      string     `json:"leadPartner"`
	InvolvedPartners []string   `json:"involvedPartners"`
	PhixPersonMonths float64    `json:"phixPersonMonths"`
	PersonMonthRate  float64    `json:"personMonthRate"`
	OtherCosts       []CostItem `json:"otherCosts"`
	TravelCosts      []CostItem `json:"travelCosts"`
	Tasks            []Task     `json:"tasks"`
}

type Partner struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Participant struct {
	Department string `json:"department"`
	Street     string `json:"street"`
	Town       string `json:"town"`
	Postcode   string `json:"postcode"`
	Country    string `json:"country"`
}

type Contact struct {
	Title      string `json:"title"`
	Gender     string `json:"gender"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

type Researcher struct {
	Title          string `json:"title"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Nationality    string `json:"nationality"`
	Email          string `json:"email"`
	CareerStage    string `json:"careerStage"`
	Role           string `json:"role"`
	IdentifierType string `json:"identifierType"`
	Identifier     string `json:"identifier"`
}

// PersonRole links a person from the reusable-data pool into a proposal.
type PersonRole struct {
	PersonID string `json:"personId"`
	Role     string `json:"role"`
}

// Proposal is the central record. PhixBudget is derived from the work
// packages on every write; it is never accepted from the client as-is.
type Proposal struct {
	BaseModel
	Acronym   string `json:"acronym" gorm:"size:100;index"`
	Programme string `json:"programme" gorm:"size:255;index"`
	Call      string `json:"call" gorm:"size:255"`
	Type      string `json:"type" gorm:"size:100"`

	// Submission facts
	Deadline      string  `json:"deadline" gorm:"size:30" validate:"proposal_date"`
	FundedPercent float64 `json:"fundedPercent" gorm:"type:decimal(5,2)" validate:"min=0,max=100"`
	TotalBudget   float64 `json:"totalBudget" gorm:"type:decimal(14,2)" validate:"min=0"`

	// Grant facts, meaningful only when IsGranted is set
	IsGranted       bool    `json:"isGranted" gorm:"index"`
	IsCompleted     bool    `json:"isCompleted"`
	StartDate       string  `json:"startDate,omitempty" gorm:"size:30" validate:"proposal_date"`
	DurationMonths  int     `json:"durationMonths,omitempty" validate:"min=0"`
	ExtensionMonths int     `json:"extensionMonths,omitempty" validate:"min=0"`
	PhixBudget      float64 `json:"phixBudget" gorm:"type:decimal(14,2)"`

	ProjectApplication string `json:"projectApplication" gorm:"size:255"`
	PicPlatform        string `json:"picPlatform" gorm:"size:255"`
	PhixRole           string `json:"phixRole" gorm:"size:255"`

	Wavelengths    pq.StringArray `json:"wavelengths" gorm:"type:text[]"`
	PhixOrgRoles   pq.StringArray `json:"phixOrgRoles" gorm:"type:text[]"`
	RolesInProject pq.StringArray `json:"rolesInProject" gorm:"type:text[]"`

	// References into reusable-data collections, by id
	PhixProcesses        pq.StringArray `json:"phixProcesses" gorm:"type:text[]"`
	Publications         pq.StringArray `json:"publications" gorm:"type:text[]"`
	RelatedProjects      pq.StringArray `json:"relatedProjects" gorm:"type:text[]"`
	Infrastructure       pq.StringArray `json:"infrastructure" gorm:"type:text[]"`
	Organizations        pq.StringArray `json:"organizations" gorm:"type:text[]"`
	PersonnelInvolvement pq.StringArray `json:"personnelInvolvement" gorm:"type:text[]"`
	Exploitation         pq.StringArray `json:"exploitation" gorm:"type:text[]"`
	CompanyDescription   pq.StringArray `json:"companyDescription" gorm:"type:text[]"`

	// Structured children, stored as jsonb
	WorkPackages   JSONColumn[[]WorkPackage] `json:"workPackages" gorm:"type:jsonb"`
	Partners       JSONColumn[[]Partner]     `json:"partners" gorm:"type:jsonb"`
	Participants   JSONColumn[[]Participant] `json:"participants" gorm:"type:jsonb"`
	MainContact    JSONColumn[Contact]       `json:"mainContact" gorm:"type:jsonb"`
	OtherContacts  JSONColumn[[]Contact]     `json:"otherContacts" gorm:"type:jsonb"`
	Researchers    JSONColumn[[]Researcher]  `json:"researchers" gorm:"type:jsonb"`
	SelectedPeople JSONColumn[[]PersonRole]  `json:"selectedPeople" gorm:"type:jsonb"`
}
