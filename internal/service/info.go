package service

import (
	"fmt" // Error wrapping

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain" // Importing domain models
)

// BillService manages bills
type BillService struct{ Store[domain.Bill] }

// GetAllByDepartment lists a department's active bills
func (s BillService) GetAllByDepartment(departmentID uint) ([]domain.Bill, error) {
	return s.listActive("department_id = ?", departmentID)
}

// GetAllByCondominium lists every active bill in a condominium
func (s BillService) GetAllByCondominium(condominiumID uint) ([]domain.Bill, error) {
	return s.listActive("condominium_id = ?", condominiumID)
}

// PaymentService manages reported payments
type PaymentService struct{ Store[domain.Payment] }

// GetAllByBill lists a bill's payments. Payments have no soft-delete marker.
func (s PaymentService) GetAllByBill(billID uint) ([]domain.Payment, error) {
	out := []domain.Payment{} // Empty list rather than null
	if err := s.db.Where("bill_id = ?", billID).Order("payment_date desc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return out, nil
}

// PaymentCategoryService manages payment categories
type PaymentCategoryService struct{ Store[domain.PaymentCategory] }

// GetAllByCondominium lists a condominium's active payment categories
func (s PaymentCategoryService) GetAllByCondominium(condominiumID uint) ([]domain.PaymentCategory, error) {
	return s.listActive("condominium_id = ?", condominiumID)
}
