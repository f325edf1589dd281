package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/MarcoPr4do/Neighlink-Backend/internal/api"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/auth"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/db/dbtest"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/utils"
)

// envelope is the decoded response body
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// into decodes the result into dest
func (e envelope) into(dest any) {
	ExpectWithOffset(1, json.Unmarshal(e.Result, dest)).To(Succeed())
}

func (e envelope) isNull() bool {
	return len(e.Result) == 0 || string(e.Result) == "null"
}

// testServer wraps a router over a private database
type testServer struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer() *testServer {
	gdb, err := dbtest.New()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	codes, err := utils.NewCodeGenerator(1)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	env := &api.Env{Resolver: auth.NewResolver(nil), Codes: codes}
	return &testServer{db: gdb, router: api.NewRouter(gdb, env, "neighlink-test")}
}

// call performs a request with an optional Authorization token
func (s *testServer) call(method, path string, body any, token string) envelope {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", token)
	}
	return s.do(method, path, body, header)
}

// callWithHeader performs a bodyless request carrying a single header
func (s *testServer) callWithHeader(method, path, name, value string) envelope {
	header := http.Header{}
	header.Set(name, value)
	return s.do(method, path, nil, header)
}

// do performs a request and checks that the HTTP status mirrors the envelope
func (s *testServer) do(method, path string, body any, header http.Header) envelope {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		ExpectWithOffset(2, err).NotTo(HaveOccurred())
		payload = b
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	ExpectWithOffset(2, json.Unmarshal(w.Body.Bytes(), &env)).To(Succeed(), w.Body.String())
	ExpectWithOffset(2, w.Code).To(Equal(env.Status))
	return env
}

type registered struct {
	ID    uint
	Token string
}

// register creates a principal through the public endpoint and returns its id and token
func (s *testServer) register(kind, email, password string) registered {
	path := "/profile/residents"
	if kind == "admin" {
		path = "/profile/administrators"
	}
	env := s.call(http.MethodPost, path, map[string]any{"name": "Test", "email": email, "password": password}, "")
	ExpectWithOffset(1, env.Status).To(Equal(http.StatusOK), env.Message)
	var out struct {
		ResidentID      uint `json:"residentId"`
		AdministratorID uint `json:"administratorId"`
		User            struct {
			Token string `json:"token"`
		} `json:"user"`
	}
	env.into(&out)
	id := out.ResidentID
	if kind == "admin" {
		id = out.AdministratorID
	}
	ExpectWithOffset(1, id).NotTo(BeZero())
	ExpectWithOffset(1, out.User.Token).NotTo(BeEmpty())
	return registered{ID: id, Token: out.User.Token}
}
