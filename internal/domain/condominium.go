package domain

// Condominium Model
type Condominium struct {
	ID              uint   `gorm:"primaryKey" json:"condominiumId"`        // Primary key
	AdministratorID uint   `gorm:"index;not null" json:"administratorId"`  // Owning administrator
	Name            string `gorm:"type:varchar(150);not null" json:"name"` // Condominium name
	Address         string `gorm:"type:varchar(255)" json:"address"`       // Street address
	City            string `gorm:"type:varchar(100)" json:"city"`          // City
	IsDelete        bool   `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// CondominiumRule Model
type CondominiumRule struct {
	ID            uint   `gorm:"primaryKey" json:"condominiumRuleId"`    // Primary key
	CondominiumID uint   `gorm:"index;not null" json:"condominiumId"`    // Parent condominium
	Title         string `gorm:"type:varchar(150)" json:"title"`         // Rule title
	Description   string `gorm:"type:text" json:"description"`           // Rule body
	IsDelete      bool   `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}

// Building Model
type Building struct {
	ID            uint   `gorm:"primaryKey" json:"buildingId"`            // Primary key
	CondominiumID uint   `gorm:"index;not null" json:"condominiumId"`     // Parent condominium
	Name          string `gorm:"type:varchar(150)" json:"name"`           // Building name
	NumberOfHomes int    `gorm:"not null;default:0" json:"numberOfHomes"` // Derived from active departments
	IsDelete      bool   `gorm:"not null;default:false" json:"isDelete"`  // Soft-delete marker
}

// Department Model
type Department struct {
	ID            uint   `gorm:"primaryKey" json:"departmentId"`                    // Primary key
	BuildingID    uint   `gorm:"index;not null" json:"buildingId"`                  // Parent building
	CondominiumID uint   `gorm:"index;not null" json:"condominiumId"`               // Parent condominium
	Name          string `gorm:"type:varchar(150)" json:"name"`                     // Department name
	Code          string `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"` // Invite code residents join with
	LimitRegister int    `json:"limitRegister"`                                     // Maximum residents
	IsDelete      bool   `gorm:"not null;default:false" json:"isDelete"`            // Soft-delete marker
}

// ResidentDepartment Model
type ResidentDepartment struct {
	ID            uint `gorm:"primaryKey" json:"residentDepartmentId"` // Primary key
	ResidentID    uint `gorm:"index;not null" json:"residentId"`       // Linked resident
	DepartmentID  uint `gorm:"index;not null" json:"departmentId"`     // Linked department
	BuildingID    uint `gorm:"index;not null" json:"buildingId"`       // Department's building
	CondominiumID uint `gorm:"index;not null" json:"condominiumId"`    // Department's condominium
	IsDelete      bool `gorm:"not null;default:false" json:"isDelete"` // Soft-delete marker
}
