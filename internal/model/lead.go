package model

import "time"

// LeadStatus tracks how far an owner lead has been worked.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead is a "list your property" submission from an owner. Leads are relayed
// to the brokerage by email; they are never written into the catalog itself.
type Lead struct {
	ID            string     `json:"id" gorm:"type:uuid;primarykey"`
	Name          string     `json:"name" gorm:"type:varchar(100);not null"`
	Email         string     `json:"email" gorm:"type:varchar(255);not null"`
	Phone         string     `json:"phone" gorm:"type:varchar(20)"`
	PropertyType  string     `json:"property_type" gorm:"type:varchar(50)"`
	Location      string     `json:"location" gorm:"type:varchar(100)"`
	ExpectedPrice string     `json:"expected_price" gorm:"type:varchar(50)"`
	Details       string     `json:"details" gorm:"type:text"`
	Status        LeadStatus `json:"status" gorm:"type:varchar(20);default:'new'"`
	CreatedAt     time.Time  `json:"created_at"`
}
