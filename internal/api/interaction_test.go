package api_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain"
	"github.com/MarcoPr4do/Neighlink-Backend/internal/service"
)

var _ = Describe("Interaction", func() {
	var (
		srv      *testServer
		admin    registered
		resident registered
	)

	BeforeEach(func() {
		srv = newTestServer()
		admin = srv.register("admin", "adm@x.com", "pw")
		resident = srv.register("resident", "res@x.com", "pw")
	})

	Describe("news", func() {
		It("publishes, edits and tombstones news", func() {
			path := "/interaction/condominiums/1/news"
			env := srv.call(http.MethodPost, path, map[string]any{"title": "Water cut", "description": "Monday"}, "")
			Expect(env.Status).To(Equal(http.StatusOK))
			var n struct {
				ID    uint   `json:"newsId"`
				Title string `json:"title"`
			}
			env.into(&n)
			Expect(n.ID).NotTo(BeZero())

			srv.call(http.MethodPut, path+"/"+itoa(n.ID), map[string]any{"title": "Water cut moved"}, "").into(&n)
			Expect(n.Title).To(Equal("Water cut moved"))

			Expect(srv.call(http.MethodDelete, path+"/"+itoa(n.ID), nil, "").Status).To(Equal(http.StatusOK))
			var list []map[string]any
			srv.call(http.MethodGet, path, nil, "").into(&list)
			Expect(list).To(BeEmpty())
		})

		It("also deletes news through the unprefixed route", func() {
			var n struct {
				ID uint `json:"newsId"`
			}
			srv.call(http.MethodPost, "/interaction/condominiums/1/news", map[string]any{"title": "Elevator fixed"}, "").into(&n)

			Expect(srv.call(http.MethodDelete, "/condominiums/1/news/"+itoa(n.ID), nil, "").Status).To(Equal(http.StatusOK))
			var list []map[string]any
			srv.call(http.MethodGet, "/interaction/condominiums/1/news", nil, "").into(&list)
			Expect(list).To(BeEmpty())
		})

		It("answers 404 when deleting missing news", func() {
			Expect(srv.call(http.MethodDelete, "/interaction/condominiums/1/news/5", nil, "").Status).To(Equal(http.StatusNotFound))
		})
	})

	Describe("polls", func() {
		var pollID uint

		BeforeEach(func() {
			env := srv.call(http.MethodPost, "/interaction/condominiums/1/polls", map[string]any{"title": "Paint the hall?"}, admin.Token)
			Expect(env.Status).To(Equal(http.StatusOK))
			var p struct {
				ID              uint `json:"pollId"`
				AdministratorID uint `json:"administratorId"`
			}
			env.into(&p)
			Expect(p.AdministratorID).To(Equal(admin.ID))
			pollID = p.ID
		})

		pollPath := func() string { return "/interaction/condominiums/1/polls/" + itoa(pollID) }

		It("requires an administrator token to open a poll", func() {
			env := srv.call(http.MethodPost, "/interaction/condominiums/1/polls", map[string]any{"title": "x"}, resident.Token)
			Expect(env.Status).To(Equal(http.StatusUnauthorized))
		})

		It("answers OK when a poll is updated", func() {
			env := srv.call(http.MethodPut, pollPath(), map[string]any{"title": "Paint it blue?"}, "")
			Expect(env.Status).To(Equal(http.StatusOK))
			Expect(env.Message).To(Equal("SERVICE SUCCESS"))
		})

		It("collects votes across the poll's options", func() {
			var yes, no struct {
				ID uint `json:"optionId"`
			}
			srv.call(http.MethodPost, pollPath()+"/options", map[string]any{"description": "yes"}, admin.Token).into(&yes)
			srv.call(http.MethodPost, pollPath()+"/options", map[string]any{"description": "no"}, admin.Token).into(&no)

			var options []map[string]any
			srv.call(http.MethodGet, pollPath()+"/options", nil, "").into(&options)
			Expect(options).To(HaveLen(2))

			env := srv.call(http.MethodPost, pollPath()+"/responses", map[string]any{"optionId": yes.ID, "comment": "finally"}, resident.Token)
			Expect(env.Status).To(Equal(http.StatusOK))
			var vote struct {
				ID         uint `json:"optionResidentId"`
				ResidentID uint `json:"residentId"`
			}
			env.into(&vote)
			Expect(vote.ResidentID).To(Equal(resident.ID))
			Expect(srv.call(http.MethodPost, pollPath()+"/responses", map[string]any{"optionId": no.ID}, resident.Token).Status).To(Equal(http.StatusOK))

			var votes []map[string]any
			srv.call(http.MethodGet, pollPath()+"/responses", nil, "").into(&votes)
			Expect(votes).To(HaveLen(2))

			Expect(srv.call(http.MethodDelete, pollPath()+"/responses/"+itoa(vote.ID), nil, "").Status).To(Equal(http.StatusOK))
			srv.call(http.MethodGet, pollPath()+"/responses", nil, "").into(&votes)
			Expect(votes).To(HaveLen(1))
		})

		It("only accepts votes for live options of the same poll", func() {
			var other struct {
				ID uint `json:"pollId"`
			}
			srv.call(http.MethodPost, "/interaction/condominiums/1/polls", map[string]any{"title": "Other"}, admin.Token).into(&other)
			var foreign, mine struct {
				ID uint `json:"optionId"`
			}
			srv.call(http.MethodPost, "/interaction/condominiums/1/polls/"+itoa(other.ID)+"/options", map[string]any{"description": "elsewhere"}, admin.Token).into(&foreign)
			srv.call(http.MethodPost, pollPath()+"/options", map[string]any{"description": "here"}, admin.Token).into(&mine)

			env := srv.call(http.MethodPost, pollPath()+"/responses", map[string]any{"optionId": foreign.ID}, resident.Token)
			Expect(env.Status).To(Equal(http.StatusNotFound))
			Expect(env.isNull()).To(BeTrue())

			Expect(srv.call(http.MethodPost, pollPath()+"/responses", map[string]any{"optionId": 999}, resident.Token).Status).To(Equal(http.StatusNotFound))

			_, err := service.New(srv.db).Options.Update(&domain.Option{ID: mine.ID, PollID: pollID, Description: "here", IsDelete: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(srv.call(http.MethodPost, pollPath()+"/responses", map[string]any{"optionId": mine.ID}, resident.Token).Status).To(Equal(http.StatusNotFound))

			var votes []map[string]any
			srv.call(http.MethodGet, "/interaction/condominiums/1/polls/"+itoa(other.ID)+"/responses", nil, "").into(&votes)
			Expect(votes).To(BeEmpty())
		})

		It("answers 401 to votes without a resident token", func() {
			Expect(srv.call(http.MethodPost, pollPath()+"/responses", map[string]any{"optionId": 1}, admin.Token).Status).To(Equal(http.StatusUnauthorized))
		})

		It("answers 404 when adding an option to a missing poll", func() {
			env := srv.call(http.MethodPost, "/interaction/condominiums/1/polls/999/options", map[string]any{"description": "yes"}, admin.Token)
			Expect(env.Status).To(Equal(http.StatusNotFound))
		})

		It("hides deleted polls from the list", func() {
			Expect(srv.call(http.MethodDelete, pollPath(), nil, "").Status).To(Equal(http.StatusOK))
			var polls []map[string]any
			srv.call(http.MethodGet, "/interaction/condominiums/1/polls", nil, "").into(&polls)
			Expect(polls).To(BeEmpty())
		})
	})
})
