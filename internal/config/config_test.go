package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MarcoPr4do/Neighlink-Backend/internal/config"
)

// setenv sets k until the current test ends
func setenv(k, v string) {
	old, had := os.LookupEnv(k)
	Expect(os.Setenv(k, v)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(k, old)
		} else {
			os.Unsetenv(k)
		}
	})
}

var _ = Describe("LoadConfig", func() {
	It("falls back to defaults for unset variables", func() {
		for _, k := range []string{"APP_PORT", "DB_DRIVER", "DB_HOST", "DB_NAME", "NODE_ID", "SERVICE_NAME", "IS_PROD", "REDIS_DB"} {
			setenv(k, "")
		}
		cfg := config.LoadConfig()
		Expect(cfg.AppPort).To(Equal("8080"))
		Expect(cfg.DBDriver).To(Equal("mysql"))
		Expect(cfg.DBHost).To(Equal("127.0.0.1"))
		Expect(cfg.DBName).To(Equal("neighlink"))
		Expect(cfg.NodeID).To(Equal(int64(1)))
		Expect(cfg.ServiceName).To(Equal("neighlink-api"))
		Expect(cfg.IsProd).To(BeFalse())
		Expect(cfg.RedisDB).To(BeZero())
	})

	It("reads explicit values", func() {
		setenv("APP_PORT", "9090")
		setenv("DB_DRIVER", "sqlite")
		setenv("DB_PATH", "/tmp/n.db")
		setenv("REDIS_ADDR", "localhost:6379")
		setenv("REDIS_DB", "2")
		setenv("NODE_ID", "7")
		setenv("IS_PROD", "true")

		cfg := config.LoadConfig()
		Expect(cfg.AppPort).To(Equal("9090"))
		Expect(cfg.DBDriver).To(Equal("sqlite"))
		Expect(cfg.DBPath).To(Equal("/tmp/n.db"))
		Expect(cfg.RedisAddr).To(Equal("localhost:6379"))
		Expect(cfg.RedisDB).To(Equal(2))
		Expect(cfg.NodeID).To(Equal(int64(7)))
		Expect(cfg.IsProd).To(BeTrue())
	})
})
