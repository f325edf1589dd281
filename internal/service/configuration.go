package service

import (
	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain" // Importing domain models
)

// CondominiumService manages condominiums
type CondominiumService struct{ Store[domain.Condominium] }

// GetAllByAdmin lists an administrator's active condominiums
func (s CondominiumService) GetAllByAdmin(administratorID uint) ([]domain.Condominium, error) {
	return s.listActive("administrator_id = ?", administratorID)
}

// CondominiumRuleService manages condominium rules
type CondominiumRuleService struct{ Store[domain.CondominiumRule] }

// GetAllByCondominium lists a condominium's active rules
func (s CondominiumRuleService) GetAllByCondominium(condominiumID uint) ([]domain.CondominiumRule, error) {
	return s.listActive("condominium_id = ?", condominiumID)
}

// BuildingService manages buildings
type BuildingService struct{ Store[domain.Building] }

// GetAllByCondominium lists a condominium's active buildings
func (s BuildingService) GetAllByCondominium(condominiumID uint) ([]domain.Building, error) {
	return s.listActive("condominium_id = ?", condominiumID)
}

// DepartmentService manages departments
type DepartmentService struct{ Store[domain.Department] }

// GetAllByBuilding lists a building's active departments
func (s DepartmentService) GetAllByBuilding(buildingID uint) ([]domain.Department, error) {
	return s.listActive("building_id = ?", buildingID)
}

// CountByBuilding counts the building's departments that are not soft-deleted.
func (s DepartmentService) CountByBuilding(buildingID uint) (int64, error) {
	return s.countActive("building_id = ?", buildingID)
}

// GetByCode finds an active department by its invite code.
func (s DepartmentService) GetByCode(code string) (*domain.Department, error) {
	if code == "" {
		return nil, ErrNotFound // No code names no department
	}
	return s.findOne("code = ? AND is_delete = ?", code, false)
}

// ResidentDepartmentService manages the links between residents and departments
type ResidentDepartmentService struct{ Store[domain.ResidentDepartment] }

// GetAllByCondominium lists the active links inside a condominium
func (s ResidentDepartmentService) GetAllByCondominium(condominiumID uint) ([]domain.ResidentDepartment, error) {
	return s.listActive("condominium_id = ?", condominiumID)
}

// GetAllByDepartment lists a department's active links
func (s ResidentDepartmentService) GetAllByDepartment(departmentID uint) ([]domain.ResidentDepartment, error) {
	return s.listActive("department_id = ?", departmentID)
}

// CreateDepartment inserts dept under its building and sets the building's
// home count to the number of active departments plus the new one. The count
// and both writes share one transaction.
func (s *Services) CreateDepartment(dept *domain.Department) (*domain.Department, error) {
	var saved *domain.Department
	err := s.Transaction(func(tx *Services) error {
		building, err := tx.Buildings.GetByID(dept.BuildingID) // Missing building aborts with ErrNotFound
		if err != nil {
			return err
		}
		n, err := tx.Departments.CountByBuilding(building.ID)
		if err != nil {
			return err
		}
		building.NumberOfHomes = int(n) + 1 // Existing active departments plus this one
		if _, err := tx.Buildings.Update(building); err != nil {
			return err
		}
		saved, err = tx.Departments.Insert(dept)
		return err // Any error rolls back the count as well
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
