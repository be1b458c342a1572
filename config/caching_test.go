package config

import (
	"github.com/creasty/defaults"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CachingConfig", func() {
	var cfg CachingConfig

	suiteBeforeEach()

	BeforeEach(func() {
		cfg = CachingConfig{}
		Expect(defaults.Set(&cfg)).Should(Succeed())
	})

	Describe("IsEnabled", func() {
		It("should be true by default", func() {
			Expect(cfg.IsEnabled()).Should(BeTrue())
		})

		When("max items count is zero", func() {
			It("should be false", func() {
				cfg.MaxItemsCount = 0

				Expect(cfg.IsEnabled()).Should(BeFalse())
				Expect(cfg.validate()).Should(BeEmpty())
			})
		})
	})

	Describe("validate", func() {
		It("should reject negative sizes", func() {
			cfg.MaxItemsCount = -5

			Expect(cfg.validate()).Should(HaveLen(1))
		})
	})

	Describe("LogConfig", func() {
		It("should log the size", func() {
			cfg.LogConfig(logger)

			Expect(hook.Messages).Should(ContainElement("maxItemsCount = 10000"))
		})
	})
})
