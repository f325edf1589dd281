package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MarcoPr4do/Neighlink-Backend/internal/auth"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/db/dbtest"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/middleware"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/service"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/utils"
)

func decode(w *httptest.ResponseRecorder) response.Response {
	var r response.Response
	ExpectWithOffset(1, json.Unmarshal(w.Body.Bytes(), &r)).To(Succeed())
	return r
}

var _ = Describe("Recovery", func() {
	It("turns a panic into an internal error envelope", func() {
		r := gin.New()
		r.Use(middleware.Recovery())
		r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		body := decode(w)
		Expect(body.Status).To(Equal(http.StatusInternalServerError))
		Expect(body.Message).To(Equal("Error => unexpected failure"))
		Expect(body.Message).NotTo(ContainSubstring("kaboom"))
	})
})

var _ = Describe("Authenticate", func() {
	var (
		router *gin.Engine
		token  string
	)

	// handler echoes the resolved principal kind, or "none"
	handler := func(c *gin.Context) {
		kind := "none"
		if p := middleware.PrincipalFrom(c); p != nil {
			kind = p.Kind
		}
		response.Write(c, response.Ok(kind))
	}

	BeforeEach(func() {
		gdb, err := dbtest.New()
		Expect(err).NotTo(HaveOccurred())
		hash, err := utils.HashPassword("pw")
		Expect(err).NotTo(HaveOccurred())
		token = utils.NewToken()
		_, err = service.New(gdb).RegisterResident(&domain.User{Name: "R", Email: "r@x.com", Password: hash, Token: token})
		Expect(err).NotTo(HaveOccurred())

		resolver := auth.NewResolver(nil)
		router = gin.New()
		router.Use(middleware.Services(gdb))
		router.GET("/public", middleware.Authenticate(resolver, auth.Public), handler)
		router.POST("/login", middleware.Authenticate(resolver, auth.Login), func(c *gin.Context) {
			// The body stays readable after the credential bind
			var again map[string]string
			Expect(c.ShouldBindBodyWithJSON(&again)).To(Succeed())
			Expect(again).To(HaveKeyWithValue("email", "r@x.com"))
			handler(c)
		})
		router.GET("/admin", middleware.Authenticate(resolver, auth.Admin(http.StatusUnauthorized)), handler)
		router.GET("/resident-404", middleware.Authenticate(resolver, auth.Resident(http.StatusNotFound)), handler)
	})

	serve := func(req *http.Request) (*httptest.ResponseRecorder, response.Response) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w, decode(w)
	}

	It("lets public routes through without a principal", func() {
		_, body := serve(httptest.NewRequest(http.MethodGet, "/public", nil))
		Expect(body.Result).To(Equal("none"))
	})

	It("resolves credentials and keeps the body for the handler", func() {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"r@x.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		w, body := serve(req)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(body.Result).To(Equal(domain.KindResident))
	})

	It("answers 500 when the credential body is not JSON", func() {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{`))
		w, body := serve(req)
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(body.Message).To(Equal("Error => invalid request body"))
	})

	It("answers 401 when the token is of the wrong kind", func() {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", token)
		w, body := serve(req)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(body.Message).To(Equal(response.MessageUnauthorized))
	})

	It("answers with the route's own status when nothing resolves", func() {
		w, body := serve(httptest.NewRequest(http.MethodGet, "/resident-404", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(body.Message).To(Equal(response.MessageNotFound))
		Expect(body.Result).To(BeNil())
	})

	It("stores the resolved principal for the handler", func() {
		req := httptest.NewRequest(http.MethodGet, "/resident-404", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w, body := serve(req)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(body.Result).To(Equal(domain.KindResident))
	})
})
