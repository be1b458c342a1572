package cmd

import (
	"io"
	"os"

	"github.com/0xERR0R/regdomain/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/0xERR0R/regdomain/helpertest"
)

var _ = Describe("root command", func() {
	When("Help command is called", func() {
		log.Log().ExitFunc = nil
		It("should execute without error", func() {
			c := NewRootCommand()
			c.SetOut(io.Discard)
			c.SetArgs([]string{"help"})
			err := c.Execute()
			Expect(err).Should(Succeed())
		})
	})

	When("Config provided", func() {
		var (
			tmpDir  *TmpFolder
			cfgFile string
		)

		BeforeEach(func() {
			configPath = defaultConfigPath

			tmpDir = NewTmpFolder("RootCommand")
			cfgFile = tmpDir.CreateStringFile("config.yml", corpusConfig("caching:", "  maxItemsCount: 7")...)
		})

		It("should accept the env var", func() {
			os.Setenv(configFileEnvVar, cfgFile)
			DeferCleanup(func() { os.Unsetenv(configFileEnvVar) })

			Expect(initConfig()).Should(Succeed())

			Expect(configPath).Should(Equal(cfgFile))
			Expect(cfg.Caching.MaxItemsCount).Should(Equal(7))
		})

		It("should use the defaults if the default file does not exist", func() {
			Expect(initConfig()).Should(Succeed())

			Expect(cfg.Caching.MaxItemsCount).Should(Equal(10000))
		})

		It("should fail for an explicit path which does not exist", func() {
			configPath = tmpDir.JoinPath("missing.yml")

			err := initConfig()
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("unable to load configuration"))
		})
	})

	Describe("Command execution", func() {
		It("should create root command with all subcommands", func() {
			cmd := NewRootCommand()

			subCmdNames := []string{}
			for _, subCmd := range cmd.Commands() {
				subCmdNames = append(subCmdNames, subCmd.Name())
			}

			Expect(subCmdNames).Should(ContainElements(
				"parse", "maindomain", "cdn", "registrant", "suffixes", "serve", "validate", "version",
			))
		})

		It("should set flags correctly", func() {
			cmd := NewRootCommand()

			configFlag := cmd.PersistentFlags().Lookup("config")
			Expect(configFlag).ShouldNot(BeNil())
			Expect(configFlag.Shorthand).Should(Equal("c"))
			Expect(configFlag.DefValue).Should(Equal(defaultConfigPath))
		})
	})
})
