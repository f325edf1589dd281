package domain

import "time"

// PaymentCategory Model
type PaymentCategory struct {
	ID            uint   `gorm:"primaryKey" json:"paymentCategoryId"`    // Primary key
	CondominiumID uint   `gorm:"index;not null" json:"condominiumId"`    // Parent condominium
	Name          string `gorm:"type:varchar(100)" json:"name"`          // Category name
	Description   string `gorm:"type:text" json:"description"`           // Category description
	IsDelete      bool   `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// Bill Model
type Bill struct {
	ID                uint      `gorm:"primaryKey" json:"billId"`               // Primary key
	AdministratorID   uint      `gorm:"index;not null" json:"administratorId"`  // Issuing administrator
	CondominiumID     uint      `gorm:"index;not null" json:"condominiumId"`    // Parent condominium
	DepartmentID      uint      `gorm:"index;not null" json:"departmentId"`     // Billed department
	PaymentCategoryID uint      `gorm:"index" json:"paymentCategoryId"`         // Category
	Name              string    `gorm:"type:varchar(150)" json:"name"`          // Bill name
	Description       string    `gorm:"type:text" json:"description"`           // Bill description
	Amount            float64   `gorm:"not null;default:0" json:"amount"`       // Amount due
	StartDate         time.Time `json:"startDate"`                              // Billing period start
	EndDate           time.Time `json:"endDate"`                                // Billing period end
	IsDelete          bool      `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// Payment Model
type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"paymentId"`       // Primary key
	BillID         uint      `gorm:"index;not null" json:"billId"`      // Paid bill
	ResidentID     uint      `gorm:"index;not null" json:"residentId"`  // Paying resident
	ResidentUserID uint      `json:"residentUserId"`                    // Paying resident's user
	Amount         float64   `gorm:"not null;default:0" json:"amount"`  // Amount paid
	ConfirmPaid    bool      `json:"confirmPaid"`                       // Accepted by an administrator
	PaymentDate    time.Time `json:"paymentDate"`                       // When the payment was reported
	URLImage       string    `gorm:"type:varchar(500)" json:"urlImage"` // Receipt image
}
