package domain

import "time"

// Principal kinds as reported to clients
const (
	KindAdministrator = "ADMINISTRADOR" // Administrator principal
	KindResident      = "RESIDENTE"     // Resident principal
)

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"userId"`                           // Primary key
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`             // First name
	LastName  string    `gorm:"type:varchar(100)" json:"lastName"`                  // Last name
	Email     string    `gorm:"type:varchar(150);index;not null" json:"email"`      // Login email, not unique across principal kinds
	Password  string    `gorm:"type:varchar(100);not null" json:"-"`                // Bcrypt hash, never serialised
	BirthDate time.Time `json:"birthDate"`                                          // Date of birth
	Gender    string    `gorm:"type:varchar(20)" json:"gender"`                     // Gender
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`                      // Phone number
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"` // Permanent bearer token
}

// Administrator Model
type Administrator struct {
	ID            uint  `gorm:"primaryKey" json:"administratorId"`                  // Primary key
	UserID        uint  `gorm:"index;not null" json:"userId"`                       // Foreign key to User
	User          *User `gorm:"constraint:OnUpdate:CASCADE;" json:"user,omitempty"` // Wrapped user
	PlanActivated bool  `json:"planActivated"`                                      // Subscription plan active
	IsBlocked     bool  `json:"isBlocked"`                                          // Blocked by the platform
}

// Resident Model
type Resident struct {
	ID        uint  `gorm:"primaryKey" json:"residentId"`                       // Primary key
	UserID    uint  `gorm:"index;not null" json:"userId"`                       // Foreign key to User
	User      *User `gorm:"constraint:OnUpdate:CASCADE;" json:"user,omitempty"` // Wrapped user
	IsBlocked bool  `json:"isBlocked"`                                          // Blocked by an administrator
}

// PlanMember Model
type PlanMember struct {
	ID              uint      `gorm:"primaryKey" json:"planMemberId"`         // Primary key
	AdministratorID uint      `gorm:"index;not null" json:"administratorId"`  // Foreign key to Administrator
	PlanName        string    `gorm:"type:varchar(100)" json:"planName"`      // Subscribed plan
	StartDate       time.Time `json:"startDate"`                              // Plan start
	EndDate         time.Time `json:"endDate"`                                // Plan end
	IsDelete        bool      `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}
