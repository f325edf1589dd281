package domain

import "time"

// News Model
type News struct {
	ID            uint      `gorm:"primaryKey" json:"newsId"`               // Primary key
	CondominiumID uint      `gorm:"index;not null" json:"condominiumId"`    // Parent condominium
	Title         string    `gorm:"type:varchar(200)" json:"title"`         // Headline
	Description   string    `gorm:"type:text" json:"description"`           // Body
	Date          time.Time `json:"date"`                                   // Publication time
	IsDelete      bool      `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// Poll Model
type Poll struct {
	ID              uint      `gorm:"primaryKey" json:"pollId"`               // Primary key
	AdministratorID uint      `gorm:"index;not null" json:"administratorId"`  // Creating administrator
	CondominiumID   uint      `gorm:"index;not null" json:"condominiumId"`    // Parent condominium
	Title           string    `gorm:"type:varchar(200)" json:"title"`         // Question
	Description     string    `gorm:"type:text" json:"description"`           // Details
	StartDate       time.Time `json:"startDate"`                              // Voting opens
	EndDate         time.Time `json:"endDate"`                                // Voting closes
	IsDelete        bool      `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// Option Model
type Option struct {
	ID          uint   `gorm:"primaryKey" json:"optionId"`             // Primary key
	PollID      uint   `gorm:"index;not null" json:"pollId"`           // Parent poll
	Description string `gorm:"type:varchar(255)" json:"description"`   // Option text
	IsDelete    bool   `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// OptionResident Model
type OptionResident struct {
	ID             uint      `gorm:"primaryKey" json:"optionResidentId"`     // Primary key
	OptionID       uint      `gorm:"index;not null" json:"optionId"`         // Chosen option
	ResidentID     uint      `gorm:"index;not null" json:"residentId"`       // Voting resident
	ResidentUserID uint      `json:"residentUserId"`                         // Voting resident's user
	Comment        string    `gorm:"type:text" json:"comment"`               // Free-text comment
	Date           time.Time `json:"date"`                                   // When the vote was cast
	IsDelete       bool      `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// Models lists every persisted model in migration order
func Models() []any {
	return []any{
		&User{}, &Administrator{}, &Resident{}, &PlanMember{},
		&Condominium{}, &CondominiumRule{}, &Building{}, &Department{}, &ResidentDepartment{},
		&PaymentCategory{}, &Bill{}, &Payment{},
		&News{}, &Poll{}, &Option{}, &OptionResident{},
	}
}
