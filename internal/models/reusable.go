// internal/models/reusable.go
package models

// Reusable-data entities. These are flat records referenced from proposals by
// id; none of them carries derived state.

type Project struct {
	BaseModel
	Name             string        `json:"name" gorm:"size:255;index"`
	Call             string        `json:"call" gorm:"size:255"`
	Website          string        `json:"website" gorm:"size:500"`
	ShortDescription string        `json:"shortDescription" gorm:"type:text"`
	Status           ProjectStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
}

type Process struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;index"`
	Description string `json:"description" gorm:"type:text"`
}

type Publication struct {
	BaseModel
	Title    string `json:"title" gorm:"size:500"`
	Metadata string `json:"metadata" gorm:"type:text"`
}

type Infrastructure struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`
}

type Person struct {
	BaseModel
	Title       string `json:"title" gorm:"size:50"`
	FirstName   string `json:"firstName" gorm:"size:100"`
	LastName    string `json:"lastName" gorm:"size:100;index"`
	Email       string `json:"email" gorm:"size:255"`
	Position    string `json:"position" gorm:"size:255"`
	Gender      string `json:"gender" gorm:"size:50"`
	Nationality string `json:"nationality" gorm:"size:100"`
	CareerStage string `json:"careerStage" gorm:"size:100"`
}

type Department struct {
	Name     string `json:"name"`
	Street   string `json:"street"`
	Town     string `json:"town"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type Organization struct {
	BaseModel
	LegalName   string                   `json:"legalName" gorm:"size:255;index"`
	ShortName   string                   `json:"shortName" gorm:"size:100"`
	PicNumber   string                   `json:"picNumber" gorm:"size:50"`
	Departments JSONColumn[[]Department] `json:"departments" gorm:"type:jsonb"`
}

// InvolvementContact is a contact block with a structured address, as used by
// the personnel-involvement records.
type InvolvementContact struct {
	Title      string `json:"title"`
	Gender     string `json:"gender"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Street     string `json:"street"`
	Town       string `json:"town"`
	Postcode   string `json:"postcode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type PersonnelInvolvement struct {
	BaseModel
	MainContact   JSONColumn[InvolvementContact]   `json:"mainContact" gorm:"type:jsonb"`
	OtherContacts JSONColumn[[]InvolvementContact] `json:"otherContacts" gorm:"type:jsonb"`
}

type Exploitation struct {
	BaseModel
	Name                      string `json:"name" gorm:"size:255"`
	Description               string `json:"description" gorm:"type:text"`
	TargetedEndUsers          string `json:"targetedEndUsers" gorm:"type:text"`
	Competitors               string `json:"competitors" gorm:"type:text"`
	MarketOverview            string `json:"marketOverview" gorm:"type:text"`
	ValueProposition          string `json:"valueProposition" gorm:"type:text"`
	CommercializationMeasures string `json:"commercializationMeasures" gorm:"type:text"`
	AdditionalSupport         string `json:"additionalSupport" gorm:"type:text"`
	ExpectedRevenues          string `json:"expectedRevenues" gorm:"type:text"`
}

type CompanyDescription struct {
	BaseModel
	Description string `json:"description" gorm:"type:text"`
}

// CustomProgramme extends the fixed programme list with user-defined labels.
type CustomProgramme struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;uniqueIndex"`
}
