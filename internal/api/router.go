package api

import (
	"net/http" // HTTP status codes

	"github.com/MarcoPr4do/Neighlink-Backend/internal/auth"       // Route policies
	"github.com/MarcoPr4do/Neighlink-Backend/internal/middleware" // Shared middleware
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response"   // Response envelope

	"github.com/gin-gonic/gin"                                                     // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp"                      // Metrics endpoint
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin" // Request tracing
	"gorm.io/gorm"                                                                 // GORM ORM library
)

// Route is one endpoint with its authentication policy
type Route struct {
	Method  string                     // HTTP method
	Path    string                     // Path relative to the group
	Policy  auth.Policy                // Who may call it and what an unknown caller gets
	Handler func(*Env) gin.HandlerFunc // Handler constructor
}

// Group is a controller area sharing a path prefix
type Group struct {
	Prefix string  // Area prefix
	Routes []Route // Area endpoints
}

const (
	unauthorized = http.StatusUnauthorized // Unknown caller answered with 401
	notFound     = http.StatusNotFound     // Unknown caller answered with 404
)

// Routes is the complete endpoint table
func Routes() []Group {
	return []Group{
		{Prefix: "/configuration", Routes: []Route{
			{http.MethodGet, "/condominiums/:condominiumId/buildings", auth.Public, GetBuildingsHandler},
			{http.MethodGet, "/condominiums/:condominiumId/buildings/:buildingId", auth.Public, GetBuildingHandler},
			{http.MethodPost, "/condominiums/:condominiumId/buildings", auth.Public, CreateBuildingHandler},
			{http.MethodPut, "/condominiums/:condominiumId/buildings/:buildingId", auth.Public, UpdateBuildingHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/buildings/:buildingId", auth.Public, DeleteBuildingHandler},
			{http.MethodGet, "/condominiums/:condominiumId/buildings/:buildingId/departments", auth.Public, GetDepartmentsHandler},
			{http.MethodGet, "/condominiums/:condominiumId/buildings/:buildingId/departments/:departmentId", auth.Public, GetDepartmentHandler},
			{http.MethodPost, "/condominiums/:condominiumId/buildings/:buildingId/departments", auth.Public, CreateDepartmentHandler},
			{http.MethodPut, "/condominiums/:condominiumId/buildings/:buildingId/departments", auth.Public, UpdateDepartmentHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/buildings/:buildingId/departments/:departmentId", auth.Public, DeleteDepartmentHandler},
		}},
		{Prefix: "/info", Routes: []Route{
			{http.MethodGet, "/condominiums/:condominiumId/departments/:departmentId/bills", auth.Public, GetDepartmentBillsHandler},
			{http.MethodGet, "/condominiums/:condominiumId/bills", auth.Public, GetCondominiumBillsHandler},
			{http.MethodPost, "/condominiums/:condominiumId/departments/:departmentId/bills", auth.Admin(unauthorized), CreateBillHandler},
			{http.MethodPut, "/condominiums/:condominiumId/departments/:departmentId/bills/:billId", auth.Public, UpdateBillHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/departments/:departmentId/bills/:billId", auth.Public, DeleteBillHandler},
			{http.MethodGet, "/departments/:departmentId/bills/:billId/pays", auth.Public, GetPaymentsHandler},
			{http.MethodPost, "/departments/:departmentId/bills/:billId/pays", auth.Resident(notFound), CreatePaymentHandler},
			{http.MethodPut, "/departments/:departmentId/bills/:billId/pays/:payId/accept", auth.Public, AcceptPaymentHandler},
			{http.MethodPut, "/departments/:departmentId/bills/:billId/pays/:payId/denny", auth.Public, DenyPaymentHandler},
			{http.MethodPut, "/departments/:departmentId/bills/:billId/pays/:payId/deny", auth.Public, DenyPaymentHandler},
			{http.MethodGet, "/condominiums/:condominiumId/paymentCategories", auth.Public, GetPaymentCategoriesHandler},
			{http.MethodPost, "/condominiums/:condominiumId/paymentCategories", auth.Public, CreatePaymentCategoryHandler},
			{http.MethodPut, "/condominiums/:condominiumId/paymentCategories/:paymentCategoryId", auth.Public, UpdatePaymentCategoryHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/paymentCategories/:paymentCategoryId", auth.Public, DeletePaymentCategoryHandler},
		}},
		{Prefix: "/interaction", Routes: []Route{
			{http.MethodGet, "/condominiums/:condominiumId/news", auth.Public, GetNewsHandler},
			{http.MethodPost, "/condominiums/:condominiumId/news", auth.Public, CreateNewsHandler},
			{http.MethodPut, "/condominiums/:condominiumId/news/:newsId", auth.Public, UpdateNewsHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/news/:newsId", auth.Public, DeleteNewsHandler},
			{http.MethodGet, "/condominiums/:condominiumId/polls", auth.Public, GetPollsHandler},
			{http.MethodPost, "/condominiums/:condominiumId/polls", auth.Admin(unauthorized), CreatePollHandler},
			{http.MethodPut, "/condominiums/:condominiumId/polls/:pollId", auth.Public, UpdatePollHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/polls/:pollId", auth.Public, DeletePollHandler},
			{http.MethodGet, "/condominiums/:condominiumId/polls/:pollId/options", auth.Public, GetOptionsHandler},
			{http.MethodPost, "/condominiums/:condominiumId/polls/:pollId/options", auth.Admin(unauthorized), CreateOptionHandler},
			{http.MethodGet, "/condominiums/:condominiumId/polls/:pollId/responses", auth.Public, GetResponsesHandler},
			{http.MethodPost, "/condominiums/:condominiumId/polls/:pollId/responses", auth.Resident(unauthorized), CreateResponseHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/polls/:pollId/responses/:responseId", auth.Public, DeleteResponseHandler},
		}},
		{Prefix: "", Routes: []Route{
			// News deletion has always also answered outside /interaction
			{http.MethodDelete, "/condominiums/:condominiumId/news/:newsId", auth.Public, DeleteNewsHandler},
		}},
		{Prefix: "/profile", Routes: []Route{
			{http.MethodPost, "/users/auth", auth.Login, LoginHandler},
			{http.MethodGet, "/users/me", auth.Anyone(unauthorized), MeHandler},
			{http.MethodGet, "/residents/:residentId", auth.Public, GetResidentHandler},
			{http.MethodPost, "/residents", auth.Public, RegisterResidentHandler},
			{http.MethodPost, "/administrators", auth.Public, RegisterAdministratorHandler},
			{http.MethodGet, "/administrators/:administratorId/planMembers", auth.Public, GetPlanMembersHandler},
			{http.MethodGet, "/administrators/:administratorId/condominiums", auth.Public, GetCondominiumsHandler},
			{http.MethodGet, "/condominiums/:condominiumId", auth.Public, GetCondominiumHandler},
			{http.MethodPost, "/condominiums", auth.Admin(unauthorized), CreateCondominiumHandler},
			{http.MethodPut, "/condominiums/:condominiumId", auth.Public, UpdateCondominiumHandler},
			{http.MethodDelete, "/condominiums/:condominiumId", auth.Public, DeleteCondominiumHandler},
			{http.MethodGet, "/condominiums/:condominiumId/condominiumrules", auth.Public, GetCondominiumRulesHandler},
			{http.MethodPost, "/condominiums/:condominiumId/condominiumrules", auth.Admin(unauthorized), CreateCondominiumRuleHandler},
			{http.MethodPut, "/condominiums/:condominiumId/condominiumrules/:condominiumRuleId", auth.Public, UpdateCondominiumRuleHandler},
			{http.MethodDelete, "/condominiums/:condominiumId/condominiumrules/:condominiumRuleId", auth.Public, DeleteCondominiumRuleHandler},
			{http.MethodGet, "/residentdepartments", auth.Public, GetResidentDepartmentsHandler},
			{http.MethodPost, "/residentdepartments", auth.Resident(unauthorized), CreateResidentDepartmentHandler},
			{http.MethodDelete, "/residentdepartments/:residentDepartmentId", auth.Public, DeleteResidentDepartmentHandler},
		}},
	}
}

// NewRouter builds the engine with every route, the shared middleware and the operational endpoints
func NewRouter(db *gorm.DB, env *Env, serviceName string) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(
		middleware.Recovery(),           // Panics become internal error envelopes
		middleware.RequestLogger(),      // Logrus request log
		middleware.Metrics(),            // Prometheus counters
		otelgin.Middleware(serviceName), // Tracing spans
	)

	r.GET("/health", func(c *gin.Context) { response.Write(c, response.Ok("ok")) }) // Liveness
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))                                // Prometheus scrape

	// Every API route gets its own persistence handle
	for _, g := range Routes() {
		group := r.Group(g.Prefix, middleware.Services(db))
		for _, rt := range g.Routes {
			group.Handle(rt.Method, rt.Path, middleware.Authenticate(env.Resolver, rt.Policy), rt.Handler(env))
		}
	}
	r.NoRoute(func(c *gin.Context) { response.Write(c, response.NotFound()) }) // Unknown paths still get an envelope
	return r
}
