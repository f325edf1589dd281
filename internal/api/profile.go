package api

import (
	"errors"  // Error inspection
	"strconv" // Query parameter parsing
	"strings" // Email normalisation
	"time"    // Birth dates

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain"     // Importing domain models
	"github.com/MarcoPr4do/Neighlink-Backend/internal/middleware" // Per-request services and principal
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response"   // Response envelope
	"github.com/MarcoPr4do/Neighlink-Backend/internal/service"    // Entity services
	"github.com/MarcoPr4do/Neighlink-Backend/internal/utils"      // Password hashing and tokens

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// LoginResponse is the result of a successful login or token lookup
type LoginResponse struct {
	User     any    `json:"user"`     // Administrator or resident, with its user
	UserType string `json:"userType"` // ADMINISTRADOR or RESIDENTE
}

// RegisterRequest is the body for registering an administrator or resident
type RegisterRequest struct {
	Name      string    `json:"name" binding:"required"`            // First name
	LastName  string    `json:"lastName"`                           // Last name
	Email     string    `json:"email" binding:"required,email"`     // Login email
	Password  string    `json:"password" binding:"required,max=72"` // Plaintext password, hashed before storage
	BirthDate time.Time `json:"birthDate"`                          // Date of birth
	Gender    string    `json:"gender"`                             // Gender
	Phone     string    `json:"phone"`                              // Phone number
}

// CondominiumRequest is the body for creating or updating a condominium
type CondominiumRequest struct {
	Name    string `json:"name" binding:"required"` // Condominium name
	Address string `json:"address"`                 // Street address
	City    string `json:"city"`                    // City
}

// CondominiumRuleRequest is the body for creating or updating a rule
type CondominiumRuleRequest struct {
	Title       string `json:"title" binding:"required"` // Rule title
	Description string `json:"description"`              // Rule body
}

// ResidentDepartmentRequest is the body a resident joins a department with
type ResidentDepartmentRequest struct {
	Code string `json:"code" binding:"required"` // Department invite code
}

// LoginHandler answers with the principal resolved from the credentials
func LoginHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := middleware.PrincipalFrom(c) // Resolved by the credential policy
		logrus.WithFields(logrus.Fields{
			"user_type": principal.Kind, // Principal kind
		}).Info("User logged in")
		response.Write(c, response.Ok(LoginResponse{User: principal.Record(), UserType: principal.Kind}))
	}
}

// MeHandler answers with the principal behind the bearer token
func MeHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := middleware.PrincipalFrom(c)
		response.Write(c, response.Ok(LoginResponse{User: principal.Record(), UserType: principal.Kind}))
	}
}

// newUser builds an unsaved user with a hashed password and a fresh token
func newUser(req RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		Name:      req.Name,                                      // First name
		LastName:  req.LastName,                                  // Last name
		Email:     strings.ToLower(strings.TrimSpace(req.Email)), // Normalised email
		Password:  hash,                                          // Bcrypt hash
		BirthDate: req.BirthDate,                                 // Date of birth
		Gender:    req.Gender,                                    // Gender
		Phone:     req.Phone,                                     // Phone number
		Token:     utils.NewToken(),                              // Permanent bearer token
	}, nil
}

// RegisterResidentHandler creates a user and its resident
func RegisterResidentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if !bindBody(c, &req) {
			return
		}
		user, err := newUser(req)
		if err != nil {
			fail(c, "failed to register resident", err)
			return
		}
		saved, err := middleware.ServicesFrom(c).RegisterResident(user)
		if errors.Is(err, service.ErrEmailTaken) {
			response.Write(c, response.Conflict(err.Error()))
			return
		}
		if err != nil {
			fail(c, "failed to register resident", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"resident_id": saved.ID,     // New resident
			"user_id":     saved.UserID, // Wrapped user
		}).Info("Resident registered")
		response.Write(c, response.Ok(saved))
	}
}

// RegisterAdministratorHandler creates a user and its administrator with an active plan
func RegisterAdministratorHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if !bindBody(c, &req) {
			return
		}
		user, err := newUser(req)
		if err != nil {
			fail(c, "failed to register administrator", err)
			return
		}
		saved, err := middleware.ServicesFrom(c).RegisterAdministrator(user)
		if errors.Is(err, service.ErrEmailTaken) {
			response.Write(c, response.Conflict(err.Error()))
			return
		}
		if err != nil {
			fail(c, "failed to register administrator", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"administrator_id": saved.ID,     // New administrator
			"user_id":          saved.UserID, // Wrapped user
		}).Info("Administrator registered")
		response.Write(c, response.Ok(saved))
	}
}

// GetResidentHandler returns a resident with its user
func GetResidentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		residentID, ok := idParam(c, "residentId")
		if !ok {
			return
		}
		resident, err := middleware.ServicesFrom(c).Residents.GetByIDWithUser(residentID)
		if err != nil {
			failLookup(c, "failed to get resident", err)
			return
		}
		response.Write(c, response.Ok(resident))
	}
}

// GetPlanMembersHandler lists an administrator's plan memberships
func GetPlanMembersHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		administratorID, ok := idParam(c, "administratorId")
		if !ok {
			return
		}
		members, err := middleware.ServicesFrom(c).PlanMembers.GetAllByAdmin(administratorID)
		if err != nil {
			fail(c, "failed to list plan members", err)
			return
		}
		response.Write(c, response.Ok(members))
	}
}

// GetCondominiumsHandler lists an administrator's active condominiums
func GetCondominiumsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		administratorID, ok := idParam(c, "administratorId")
		if !ok {
			return
		}
		condominiums, err := middleware.ServicesFrom(c).Condominiums.GetAllByAdmin(administratorID)
		if err != nil {
			fail(c, "failed to list condominiums", err)
			return
		}
		response.Write(c, response.Ok(condominiums))
	}
}

// GetCondominiumHandler returns one condominium by id
func GetCondominiumHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		condominium, err := middleware.ServicesFrom(c).Condominiums.GetByID(condominiumID)
		if err != nil {
			failLookup(c, "failed to get condominium", err)
			return
		}
		response.Write(c, response.Ok(condominium))
	}
}

// CreateCondominiumHandler creates a condominium owned by the calling administrator
func CreateCondominiumHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CondominiumRequest
		if !bindBody(c, &req) {
			return
		}
		admin := middleware.PrincipalFrom(c).Administrator // Guaranteed by the route policy
		condominium := &domain.Condominium{
			AdministratorID: admin.ID,    // Owner
			Name:            req.Name,    // Condominium name
			Address:         req.Address, // Street address
			City:            req.City,    // City
			IsDelete:        false,       // Active
		}
		saved, err := middleware.ServicesFrom(c).Condominiums.Insert(condominium)
		if err != nil {
			fail(c, "failed to create condominium", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"administrator_id": admin.ID, // Owner
			"condominium_id":   saved.ID, // New condominium
		}).Info("Condominium created")
		response.Write(c, response.Ok(saved))
	}
}

// UpdateCondominiumHandler overwrites a condominium's editable fields
func UpdateCondominiumHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		var req CondominiumRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		condominium, err := svc.Condominiums.GetByID(condominiumID)
		if err != nil {
			failLookup(c, "failed to update condominium", err)
			return
		}
		condominium.Name = req.Name
		condominium.Address = req.Address
		condominium.City = req.City
		saved, err := svc.Condominiums.Update(condominium)
		if err != nil {
			fail(c, "failed to update condominium", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeleteCondominiumHandler soft-deletes a condominium
func DeleteCondominiumHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		condominium, err := svc.Condominiums.GetByID(condominiumID)
		if err != nil {
			failLookup(c, "failed to delete condominium", err)
			return
		}
		condominium.IsDelete = true
		if _, err := svc.Condominiums.Update(condominium); err != nil {
			fail(c, "failed to delete condominium", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}

// GetCondominiumRulesHandler lists a condominium's active rules
func GetCondominiumRulesHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		rules, err := middleware.ServicesFrom(c).CondominiumRules.GetAllByCondominium(condominiumID)
		if err != nil {
			fail(c, "failed to list condominium rules", err)
			return
		}
		response.Write(c, response.Ok(rules))
	}
}

// CreateCondominiumRuleHandler adds a rule to a condominium
func CreateCondominiumRuleHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		var req CondominiumRuleRequest
		if !bindBody(c, &req) {
			return
		}
		rule := &domain.CondominiumRule{
			CondominiumID: condominiumID,
			Title:         req.Title,
			Description:   req.Description,
		}
		saved, err := middleware.ServicesFrom(c).CondominiumRules.Insert(rule)
		if err != nil {
			fail(c, "failed to create condominium rule", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// UpdateCondominiumRuleHandler overwrites a rule's title and body
func UpdateCondominiumRuleHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		ruleID, ok := idParam(c, "condominiumRuleId")
		if !ok {
			return
		}
		var req CondominiumRuleRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		rule, err := svc.CondominiumRules.GetByID(ruleID)
		if err != nil {
			failLookup(c, "failed to update condominium rule", err)
			return
		}
		rule.Title = req.Title
		rule.Description = req.Description
		saved, err := svc.CondominiumRules.Update(rule)
		if err != nil {
			fail(c, "failed to update condominium rule", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeleteCondominiumRuleHandler soft-deletes a rule
func DeleteCondominiumRuleHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		ruleID, ok := idParam(c, "condominiumRuleId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		rule, err := svc.CondominiumRules.GetByID(ruleID)
		if err != nil {
			failLookup(c, "failed to delete condominium rule", err)
			return
		}
		rule.IsDelete = true
		if _, err := svc.CondominiumRules.Update(rule); err != nil {
			fail(c, "failed to delete condominium rule", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}

// GetResidentDepartmentsHandler lists links by condominium or, failing that, by department.
// With neither query parameter the list is empty.
func GetResidentDepartmentsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := middleware.ServicesFrom(c)
		var (
			links []domain.ResidentDepartment
			err   error
		)
		switch {
		case c.Query("condominiumId") != "":
			id, convErr := strconv.ParseUint(c.Query("condominiumId"), 10, 64)
			if convErr != nil {
				response.Write(c, response.NotFound())
				return
			}
			links, err = svc.ResidentDepartments.GetAllByCondominium(uint(id))
		case c.Query("departmentId") != "":
			id, convErr := strconv.ParseUint(c.Query("departmentId"), 10, 64)
			if convErr != nil {
				response.Write(c, response.NotFound())
				return
			}
			links, err = svc.ResidentDepartments.GetAllByDepartment(uint(id))
		default:
			links = []domain.ResidentDepartment{} // Nothing to scope by
		}
		if err != nil {
			fail(c, "failed to list resident departments", err)
			return
		}
		response.Write(c, response.Ok(links))
	}
}

// CreateResidentDepartmentHandler links the calling resident to the department owning the invite code
func CreateResidentDepartmentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResidentDepartmentRequest
		if !bindBody(c, &req) {
			return
		}
		resident := middleware.PrincipalFrom(c).Resident // Guaranteed by the route policy
		svc := middleware.ServicesFrom(c)
		department, err := svc.Departments.GetByCode(strings.TrimSpace(req.Code))
		if err != nil {
			failLookup(c, "failed to join department", err) // Unknown code is NotFound
			return
		}
		link := &domain.ResidentDepartment{
			ResidentID:    resident.ID,              // Joining resident
			DepartmentID:  department.ID,            // Joined department
			BuildingID:    department.BuildingID,    // Department's building
			CondominiumID: department.CondominiumID, // Department's condominium
			IsDelete:      false,                    // Active
		}
		saved, err := svc.ResidentDepartments.Insert(link)
		if err != nil {
			fail(c, "failed to join department", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"resident_id":   resident.ID,   // Joining resident
			"department_id": department.ID, // Joined department
		}).Info("Resident joined department")
		response.Write(c, response.Ok(saved))
	}
}

// DeleteResidentDepartmentHandler soft-deletes a resident's department link
func DeleteResidentDepartmentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		linkID, ok := idParam(c, "residentDepartmentId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		link, err := svc.ResidentDepartments.GetByID(linkID)
		if err != nil {
			failLookup(c, "failed to delete resident department", err)
			return
		}
		link.IsDelete = true
		if _, err := svc.ResidentDepartments.Update(link); err != nil {
			fail(c, "failed to delete resident department", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}
