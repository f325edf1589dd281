package api_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Info", func() {
	var (
		srv      *testServer
		admin    registered
		resident registered
	)

	type bill struct {
		ID              uint    `json:"billId"`
		AdministratorID uint    `json:"administratorId"`
		Amount          float64 `json:"amount"`
		IsDelete        bool    `json:"isDelete"`
	}

	type payment struct {
		ID          uint `json:"paymentId"`
		ResidentID  uint `json:"residentId"`
		ConfirmPaid bool `json:"confirmPaid"`
	}

	createBill := func() bill {
		env := srv.call(http.MethodPost, "/info/condominiums/1/departments/3/bills",
			map[string]any{"name": "Maintenance", "amount": 120.5}, admin.Token)
		ExpectWithOffset(1, env.Status).To(Equal(http.StatusOK))
		var b bill
		env.into(&b)
		return b
	}

	BeforeEach(func() {
		srv = newTestServer()
		admin = srv.register("admin", "adm@x.com", "pw")
		resident = srv.register("resident", "res@x.com", "pw")
	})

	Describe("bills", func() {
		It("issues bills on behalf of the administrator", func() {
			b := createBill()
			Expect(b.ID).NotTo(BeZero())
			Expect(b.AdministratorID).To(Equal(admin.ID))
			Expect(b.Amount).To(Equal(120.5))
			Expect(b.IsDelete).To(BeFalse())

			var byDept, byCondo []bill
			srv.call(http.MethodGet, "/info/condominiums/1/departments/3/bills", nil, "").into(&byDept)
			srv.call(http.MethodGet, "/info/condominiums/1/bills", nil, "").into(&byCondo)
			Expect(byDept).To(HaveLen(1))
			Expect(byCondo).To(HaveLen(1))
		})

		It("answers 401 to callers without an administrator token", func() {
			body := map[string]any{"name": "Maintenance"}
			Expect(srv.call(http.MethodPost, "/info/condominiums/1/departments/3/bills", body, "").Status).To(Equal(http.StatusUnauthorized))
			Expect(srv.call(http.MethodPost, "/info/condominiums/1/departments/3/bills", body, resident.Token).Status).To(Equal(http.StatusUnauthorized))
		})

		It("updates and soft-deletes bills", func() {
			b := createBill()
			path := "/info/condominiums/1/departments/3/bills/" + itoa(b.ID)

			env := srv.call(http.MethodPut, path, map[string]any{"name": "Maintenance", "amount": 99}, "")
			Expect(env.Status).To(Equal(http.StatusOK))
			var updated bill
			env.into(&updated)
			Expect(updated.Amount).To(Equal(99.0))

			Expect(srv.call(http.MethodDelete, path, nil, "").Status).To(Equal(http.StatusOK))
			var list []bill
			srv.call(http.MethodGet, "/info/condominiums/1/bills", nil, "").into(&list)
			Expect(list).To(BeEmpty())
		})
	})

	Describe("payments", func() {
		var b bill

		BeforeEach(func() {
			b = createBill()
		})

		payPath := func() string { return "/info/departments/3/bills/" + itoa(b.ID) + "/pays" }

		It("records an unconfirmed payment by the resident", func() {
			env := srv.call(http.MethodPost, payPath(), map[string]any{"amount": 120.5, "urlImage": "https://img/1.png"}, resident.Token)
			Expect(env.Status).To(Equal(http.StatusOK))
			var p payment
			env.into(&p)
			Expect(p.ID).NotTo(BeZero())
			Expect(p.ResidentID).To(Equal(resident.ID))
			Expect(p.ConfirmPaid).To(BeFalse())

			var list []payment
			srv.call(http.MethodGet, payPath(), nil, "").into(&list)
			Expect(list).To(HaveLen(1))
		})

		It("answers 404 when no resident resolves", func() {
			env := srv.call(http.MethodPost, payPath(), map[string]any{"amount": 1}, "")
			Expect(env.Status).To(Equal(http.StatusNotFound))
			Expect(env.Message).To(Equal("ENTITY NOT FOUND"))

			Expect(srv.call(http.MethodPost, payPath(), map[string]any{"amount": 1}, admin.Token).Status).To(Equal(http.StatusNotFound))
		})

		It("accepts and denies payments through both deny spellings", func() {
			var p payment
			srv.call(http.MethodPost, payPath(), map[string]any{"amount": 10}, resident.Token).into(&p)

			var reviewed payment
			srv.call(http.MethodPut, payPath()+"/"+itoa(p.ID)+"/accept", nil, "").into(&reviewed)
			Expect(reviewed.ConfirmPaid).To(BeTrue())

			srv.call(http.MethodPut, payPath()+"/"+itoa(p.ID)+"/denny", nil, "").into(&reviewed)
			Expect(reviewed.ConfirmPaid).To(BeFalse())

			srv.call(http.MethodPut, payPath()+"/"+itoa(p.ID)+"/accept", nil, "").into(&reviewed)
			srv.call(http.MethodPut, payPath()+"/"+itoa(p.ID)+"/deny", nil, "").into(&reviewed)
			Expect(reviewed.ConfirmPaid).To(BeFalse())
		})

		It("answers 404 when reviewing a missing payment", func() {
			Expect(srv.call(http.MethodPut, payPath()+"/999/accept", nil, "").Status).To(Equal(http.StatusNotFound))
		})
	})

	Describe("payment categories", func() {
		It("supports the full lifecycle", func() {
			path := "/info/condominiums/4/paymentCategories"
			env := srv.call(http.MethodPost, path, map[string]any{"name": "Water"}, "")
			Expect(env.Status).To(Equal(http.StatusOK))
			var cat struct {
				ID   uint   `json:"paymentCategoryId"`
				Name string `json:"name"`
			}
			env.into(&cat)

			srv.call(http.MethodPut, path+"/"+itoa(cat.ID), map[string]any{"name": "Water & sewage"}, "").into(&cat)
			Expect(cat.Name).To(Equal("Water & sewage"))

			Expect(srv.call(http.MethodDelete, path+"/"+itoa(cat.ID), nil, "").Status).To(Equal(http.StatusOK))
			var list []map[string]any
			srv.call(http.MethodGet, path, nil, "").into(&list)
			Expect(list).To(BeEmpty())
		})
	})
})
