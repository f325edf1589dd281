package api

import (
	"time" // Payment timestamps

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain"     // Importing domain models
	"github.com/MarcoPr4do/Neighlink-Backend/internal/middleware" // Per-request services and principal
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response"   // Response envelope

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// BillRequest is the body for creating or updating a bill
type BillRequest struct {
	Name              string    `json:"name" binding:"required"` // Bill name
	Description       string    `json:"description"`             // Bill description
	Amount            float64   `json:"amount" binding:"gte=0"`  // Amount due
	StartDate         time.Time `json:"startDate"`               // Billing period start
	EndDate           time.Time `json:"endDate"`                 // Billing period end
	PaymentCategoryID uint      `json:"paymentCategoryId"`       // Category
}

// PaymentRequest is the body a resident sends when paying a bill
type PaymentRequest struct {
	Amount   float64 `json:"amount" binding:"gte=0"` // Amount paid
	URLImage string  `json:"urlImage"`               // Receipt image
}

// PaymentCategoryRequest is the body for creating or updating a payment category
type PaymentCategoryRequest struct {
	Name        string `json:"name" binding:"required"` // Category name
	Description string `json:"description"`             // Category description
}

// GetDepartmentBillsHandler lists a department's active bills
func GetDepartmentBillsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		departmentID, ok := idParam(c, "departmentId")
		if !ok {
			return
		}
		bills, err := middleware.ServicesFrom(c).Bills.GetAllByDepartment(departmentID)
		if err != nil {
			fail(c, "failed to list bills", err)
			return
		}
		response.Write(c, response.Ok(bills))
	}
}

// GetCondominiumBillsHandler lists a condominium's active bills
func GetCondominiumBillsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		bills, err := middleware.ServicesFrom(c).Bills.GetAllByCondominium(condominiumID)
		if err != nil {
			fail(c, "failed to list bills", err)
			return
		}
		response.Write(c, response.Ok(bills))
	}
}

// CreateBillHandler issues a bill to a department on behalf of the calling administrator
func CreateBillHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		departmentID, ok := idParam(c, "departmentId")
		if !ok {
			return
		}
		var req BillRequest
		if !bindBody(c, &req) {
			return
		}
		admin := middleware.PrincipalFrom(c).Administrator // Guaranteed by the route policy
		bill := &domain.Bill{
			AdministratorID:   admin.ID,              // Issuing administrator
			CondominiumID:     condominiumID,         // Parent condominium
			DepartmentID:      departmentID,          // Billed department
			PaymentCategoryID: req.PaymentCategoryID, // Category
			Name:              req.Name,              // Bill name
			Description:       req.Description,       // Bill description
			Amount:            req.Amount,            // Amount due
			StartDate:         req.StartDate,         // Period start
			EndDate:           req.EndDate,           // Period end
			IsDelete:          false,                 // Active
		}
		saved, err := middleware.ServicesFrom(c).Bills.Insert(bill)
		if err != nil {
			fail(c, "failed to create bill", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"administrator_id": admin.ID,     // Issuer
			"department_id":    departmentID, // Billed department
			"bill_id":          saved.ID,     // New bill
			"amount":           saved.Amount, // Amount due
		}).Info("Bill created")
		response.Write(c, response.Ok(saved))
	}
}

// UpdateBillHandler overwrites a bill's editable fields
func UpdateBillHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		billID, ok := idParam(c, "billId")
		if !ok {
			return
		}
		var req BillRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		bill, err := svc.Bills.GetByID(billID)
		if err != nil {
			failLookup(c, "failed to update bill", err)
			return
		}
		bill.Name = req.Name
		bill.Description = req.Description
		bill.Amount = req.Amount
		bill.StartDate = req.StartDate
		bill.EndDate = req.EndDate
		bill.PaymentCategoryID = req.PaymentCategoryID
		saved, err := svc.Bills.Update(bill)
		if err != nil {
			fail(c, "failed to update bill", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeleteBillHandler soft-deletes a bill
func DeleteBillHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		billID, ok := idParam(c, "billId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		bill, err := svc.Bills.GetByID(billID)
		if err != nil {
			failLookup(c, "failed to delete bill", err)
			return
		}
		bill.IsDelete = true
		if _, err := svc.Bills.Update(bill); err != nil {
			fail(c, "failed to delete bill", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}

// GetPaymentsHandler lists the payments reported against a bill
func GetPaymentsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		billID, ok := idParam(c, "billId")
		if !ok {
			return
		}
		payments, err := middleware.ServicesFrom(c).Payments.GetAllByBill(billID)
		if err != nil {
			fail(c, "failed to list payments", err)
			return
		}
		response.Write(c, response.Ok(payments))
	}
}

// CreatePaymentHandler records an unconfirmed payment by the calling resident
func CreatePaymentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		billID, ok := idParam(c, "billId")
		if !ok {
			return
		}
		var req PaymentRequest
		if !bindBody(c, &req) {
			return
		}
		resident := middleware.PrincipalFrom(c).Resident // Guaranteed by the route policy
		payment := &domain.Payment{
			BillID:         billID,          // Paid bill
			ResidentID:     resident.ID,     // Paying resident
			ResidentUserID: resident.UserID, // Paying resident's user
			Amount:         req.Amount,      // Amount paid
			ConfirmPaid:    false,           // Awaiting administrator review
			PaymentDate:    time.Now(),      // Reported now
			URLImage:       req.URLImage,    // Receipt image
		}
		saved, err := middleware.ServicesFrom(c).Payments.Insert(payment)
		if err != nil {
			fail(c, "failed to create payment", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"resident_id": resident.ID,  // Payer
			"bill_id":     billID,       // Paid bill
			"payment_id":  saved.ID,     // New payment
			"amount":      saved.Amount, // Amount paid
		}).Info("Payment reported")
		response.Write(c, response.Ok(saved))
	}
}

// AcceptPaymentHandler marks a payment as confirmed
func AcceptPaymentHandler(env *Env) gin.HandlerFunc { return reviewPayment(true) }

// DenyPaymentHandler marks a payment as not confirmed
func DenyPaymentHandler(env *Env) gin.HandlerFunc { return reviewPayment(false) }

// reviewPayment sets a payment's confirmation flag
func reviewPayment(confirmed bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID, ok := idParam(c, "payId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		payment, err := svc.Payments.GetByID(paymentID)
		if err != nil {
			failLookup(c, "failed to review payment", err)
			return
		}
		payment.ConfirmPaid = confirmed
		saved, err := svc.Payments.Update(payment)
		if err != nil {
			fail(c, "failed to review payment", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// GetPaymentCategoriesHandler lists a condominium's active payment categories
func GetPaymentCategoriesHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		categories, err := middleware.ServicesFrom(c).PaymentCategories.GetAllByCondominium(condominiumID)
		if err != nil {
			fail(c, "failed to list payment categories", err)
			return
		}
		response.Write(c, response.Ok(categories))
	}
}

// CreatePaymentCategoryHandler adds a payment category to a condominium
func CreatePaymentCategoryHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		var req PaymentCategoryRequest
		if !bindBody(c, &req) {
			return
		}
		category := &domain.PaymentCategory{
			CondominiumID: condominiumID,
			Name:          req.Name,
			Description:   req.Description,
			IsDelete:      false,
		}
		saved, err := middleware.ServicesFrom(c).PaymentCategories.Insert(category)
		if err != nil {
			fail(c, "failed to create payment category", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// UpdatePaymentCategoryHandler overwrites a payment category's name and description
func UpdatePaymentCategoryHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := idParam(c, "paymentCategoryId")
		if !ok {
			return
		}
		var req PaymentCategoryRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		category, err := svc.PaymentCategories.GetByID(categoryID)
		if err != nil {
			failLookup(c, "failed to update payment category", err)
			return
		}
		category.Name = req.Name
		category.Description = req.Description
		saved, err := svc.PaymentCategories.Update(category)
		if err != nil {
			fail(c, "failed to update payment category", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeletePaymentCategoryHandler soft-deletes a payment category
func DeletePaymentCategoryHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := idParam(c, "paymentCategoryId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		category, err := svc.PaymentCategories.GetByID(categoryID)
		if err != nil {
			failLookup(c, "failed to delete payment category", err)
			return
		}
		category.IsDelete = true
		if _, err := svc.PaymentCategories.Update(category); err != nil {
			fail(c, "failed to delete payment category", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}
