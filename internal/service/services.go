package service

import (
	"gorm.io/gorm" // GORM ORM library

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain" // Importing domain models
)

// Services bundles every entity service around one persistence handle. Build
// one per request (or per transaction) with New; the bundle holds no state of
// its own beyond that handle.
type Services struct {
	db *gorm.DB

	Users               UserService
	Administrators      AdministratorService
	Residents           ResidentService
	PlanMembers         PlanMemberService
	Condominiums        CondominiumService
	CondominiumRules    CondominiumRuleService
	Buildings           BuildingService
	Departments         DepartmentService
	ResidentDepartments ResidentDepartmentService
	PaymentCategories   PaymentCategoryService
	Bills               BillService
	Payments            PaymentService
	News                NewsService
	Polls               PollService
	Options             OptionService
	OptionResidents     OptionResidentService
}

// New binds a fresh service bundle to db.
func New(db *gorm.DB) *Services {
	return &Services{
		db:                  db,
		Users:               UserService{Store: Store[domain.User]{db: db}},
		Administrators:      AdministratorService{Store: Store[domain.Administrator]{db: db}},
		Residents:           ResidentService{Store: Store[domain.Resident]{db: db}},
		PlanMembers:         PlanMemberService{Store: Store[domain.PlanMember]{db: db}},
		Condominiums:        CondominiumService{Store: Store[domain.Condominium]{db: db}},
		CondominiumRules:    CondominiumRuleService{Store: Store[domain.CondominiumRule]{db: db}},
		Buildings:           BuildingService{Store: Store[domain.Building]{db: db}},
		Departments:         DepartmentService{Store: Store[domain.Department]{db: db}},
		ResidentDepartments: ResidentDepartmentService{Store: Store[domain.ResidentDepartment]{db: db}},
		PaymentCategories:   PaymentCategoryService{Store: Store[domain.PaymentCategory]{db: db}},
		Bills:               BillService{Store: Store[domain.Bill]{db: db}},
		Payments:            PaymentService{Store: Store[domain.Payment]{db: db}},
		News:                NewsService{Store: Store[domain.News]{db: db}},
		Polls:               PollService{Store: Store[domain.Poll]{db: db}},
		Options:             OptionService{Store: Store[domain.Option]{db: db}},
		OptionResidents:     OptionResidentService{Store: Store[domain.OptionResident]{db: db}},
	}
}

// Transaction runs fn with a bundle bound to a single database transaction.
// Returning an error from fn rolls the transaction back.
func (s *Services) Transaction(fn func(tx *Services) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx)) // Every service in the bundle shares tx
	})
}
