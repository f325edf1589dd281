package api

import (
	"time" // Timestamps in logs

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain"     // Importing domain models
	"github.com/MarcoPr4do/Neighlink-Backend/internal/middleware" // Per-request services
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response"   // Response envelope

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// BuildingRequest is the body for creating or renaming a building
type BuildingRequest struct {
	Name string `json:"name" binding:"required"` // Building name
}

// DepartmentRequest is the body for creating or updating a department
type DepartmentRequest struct {
	ID            uint   `json:"id"`                      // Department to update (PUT only)
	Name          string `json:"name" binding:"required"` // Department name
	LimitRegister *int   `json:"limitRegister"`           // Maximum residents, defaults to 0
}

// GetBuildingsHandler lists a condominium's active buildings
func GetBuildingsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		buildings, err := middleware.ServicesFrom(c).Buildings.GetAllByCondominium(condominiumID)
		if err != nil {
			fail(c, "failed to list buildings", err)
			return
		}
		response.Write(c, response.Ok(buildings))
	}
}

// GetBuildingHandler returns one building by id
func GetBuildingHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		buildingID, ok := idParam(c, "buildingId")
		if !ok {
			return
		}
		building, err := middleware.ServicesFrom(c).Buildings.GetByID(buildingID)
		if err != nil {
			failLookup(c, "failed to get building", err)
			return
		}
		response.Write(c, response.Ok(building))
	}
}

// CreateBuildingHandler adds a building with no homes to a condominium
func CreateBuildingHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		var req BuildingRequest // Bind JSON request to struct
		if !bindBody(c, &req) {
			return
		}
		building := &domain.Building{
			CondominiumID: condominiumID, // Parent from the path
			Name:          req.Name,      // Building name
			NumberOfHomes: 0,             // Grows as departments are added
			IsDelete:      false,         // Active
		}
		saved, err := middleware.ServicesFrom(c).Buildings.Insert(building)
		if err != nil {
			fail(c, "failed to create building", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"condominium_id": condominiumID, // Parent condominium
			"building_id":    saved.ID,      // New building
		}).Info("Building created")
		response.Write(c, response.Ok(saved))
	}
}

// UpdateBuildingHandler renames a building
func UpdateBuildingHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		buildingID, ok := idParam(c, "buildingId")
		if !ok {
			return
		}
		var req BuildingRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		building, err := svc.Buildings.GetByID(buildingID) // Re-fetch before overwriting
		if err != nil {
			failLookup(c, "failed to update building", err)
			return
		}
		building.Name = req.Name
		saved, err := svc.Buildings.Update(building)
		if err != nil {
			fail(c, "failed to update building", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeleteBuildingHandler soft-deletes a building
func DeleteBuildingHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		buildingID, ok := idParam(c, "buildingId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		building, err := svc.Buildings.GetByID(buildingID)
		if err != nil {
			failLookup(c, "failed to delete building", err)
			return
		}
		building.IsDelete = true // Tombstone, the row stays
		if _, err := svc.Buildings.Update(building); err != nil {
			fail(c, "failed to delete building", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}

// GetDepartmentsHandler lists a building's active departments
func GetDepartmentsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		buildingID, ok := idParam(c, "buildingId")
		if !ok {
			return
		}
		departments, err := middleware.ServicesFrom(c).Departments.GetAllByBuilding(buildingID)
		if err != nil {
			fail(c, "failed to list departments", err)
			return
		}
		response.Write(c, response.Ok(departments))
	}
}

// GetDepartmentHandler returns one department by id
func GetDepartmentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		departmentID, ok := idParam(c, "departmentId")
		if !ok {
			return
		}
		department, err := middleware.ServicesFrom(c).Departments.GetByID(departmentID)
		if err != nil {
			failLookup(c, "failed to get department", err)
			return
		}
		response.Write(c, response.Ok(department))
	}
}

// CreateDepartmentHandler adds a department with a fresh invite code and
// recounts the building's homes
func CreateDepartmentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		buildingID, ok := idParam(c, "buildingId")
		if !ok {
			return
		}
		var req DepartmentRequest
		if !bindBody(c, &req) {
			return
		}
		limit := 0 // Unlimited unless given
		if req.LimitRegister != nil {
			limit = *req.LimitRegister
		}
		department := &domain.Department{
			BuildingID:    buildingID,                 // Parent building
			CondominiumID: condominiumID,              // Parent condominium
			Name:          req.Name,                   // Department name
			Code:          env.Codes.DepartmentCode(), // Invite code
			LimitRegister: limit,                      // Maximum residents
			IsDelete:      false,                      // Active
		}
		saved, err := middleware.ServicesFrom(c).CreateDepartment(department)
		if err != nil {
			failLookup(c, "failed to create department", err) // Missing building is NotFound
			return
		}
		logrus.WithFields(logrus.Fields{
			"building_id":   buildingID,                      // Parent building
			"department_id": saved.ID,                        // New department
			"timestamp":     time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Department created")
		response.Write(c, response.Ok(saved))
	}
}

// UpdateDepartmentHandler overwrites a department's name and limit; the id comes from the body
func UpdateDepartmentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DepartmentRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		department, err := svc.Departments.GetByID(req.ID)
		if err != nil {
			failLookup(c, "failed to update department", err)
			return
		}
		department.Name = req.Name
		department.LimitRegister = 0
		if req.LimitRegister != nil {
			department.LimitRegister = *req.LimitRegister
		}
		saved, err := svc.Departments.Update(department)
		if err != nil {
			fail(c, "failed to update department", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeleteDepartmentHandler soft-deletes a department
func DeleteDepartmentHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		departmentID, ok := idParam(c, "departmentId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		department, err := svc.Departments.GetByID(departmentID)
		if err != nil {
			failLookup(c, "failed to delete department", err)
			return
		}
		department.IsDelete = true
		if _, err := svc.Departments.Update(department); err != nil {
			fail(c, "failed to delete department", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}
