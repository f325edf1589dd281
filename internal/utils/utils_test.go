package utils_test

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/MarcoPr4do/Neighlink-Backend/internal/utils"
)

var _ = Describe("CodeGenerator", func() {
	It("rejects nodes outside the snowflake range", func() {
		_, err := utils.NewCodeGenerator(4096)
		Expect(err).To(HaveOccurred())
	})

	It("issues distinct non-empty codes", func() {
		g, err := utils.NewCodeGenerator(1)
		Expect(err).NotTo(HaveOccurred())

		seen := map[string]bool{}
		for i := 0; i < 500; i++ {
			code := g.DepartmentCode()
			Expect(code).NotTo(BeEmpty())
			Expect(seen).NotTo(HaveKey(code))
			seen[code] = true
		}
	})
})

var _ = Describe("NewToken", func() {
	It("returns 32 hex characters", func() {
		Expect(utils.NewToken()).To(MatchRegexp(`^[0-9a-f]{32}$`))
	})

	It("never repeats", func() {
		Expect(utils.NewToken()).NotTo(Equal(utils.NewToken()))
	})
})

var _ = Describe("Passwords", func() {
	It("matches only the password it was hashed from", func() {
		hash, err := utils.HashPassword("p1")
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).NotTo(Equal("p1"))
		Expect(utils.CheckPassword(hash, "p1")).To(BeTrue())
		Expect(utils.CheckPassword(hash, "p2")).To(BeFalse())
	})

	It("does not match a plaintext value stored as the hash", func() {
		Expect(utils.CheckPassword("p1", "p1")).To(BeFalse())
	})
})

var _ = Describe("Cache without Redis", func() {
	ctx := context.Background()

	It("always misses and accepts writes", func() {
		Expect(utils.SetCache(ctx, nil, "k", map[string]int{"a": 1}, time.Minute)).To(Succeed())

		var dest map[string]int
		found, err := utils.GetCache(ctx, nil, "k", &dest)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("keys tokens by principal kind", func() {
		Expect(utils.TokenCacheKey("RESIDENTE", "abc")).To(Equal("auth:RESIDENTE:token:abc"))
	})
})

var _ = Describe("Cache with Redis", func() {
	var (
		mr  *miniredis.Miniredis
		rdb *redis.Client
		ctx context.Context
	)

	BeforeEach(func() {
		mr = miniredis.RunT(GinkgoT())
		rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(rdb.Close)
		ctx = context.Background()
	})

	It("round-trips JSON values with the given TTL", func() {
		Expect(utils.SetCache(ctx, rdb, "k", map[string]int{"a": 1}, 30*time.Second)).To(Succeed())
		Expect(mr.TTL("k")).To(Equal(30 * time.Second))

		var dest map[string]int
		found, err := utils.GetCache(ctx, rdb, "k", &dest)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(dest).To(HaveKeyWithValue("a", 1))
	})

	It("reports a missing key as a plain miss", func() {
		var dest map[string]int
		found, err := utils.GetCache(ctx, rdb, "absent", &dest)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("surfaces undecodable values as errors", func() {
		Expect(mr.Set("bad", "{")).To(Succeed())
		var dest map[string]int
		_, err := utils.GetCache(ctx, rdb, "bad", &dest)
		Expect(err).To(HaveOccurred())
	})
})
