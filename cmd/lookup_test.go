package cmd

import (
	"bytes"
	"encoding/json"

	"github.com/0xERR0R/regdomain/api"
	"github.com/0xERR0R/regdomain/domain"
	"github.com/0xERR0R/regdomain/helpertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Lookup commands", func() {
	var (
		cfgFile string
		out     *bytes.Buffer
	)

	BeforeEach(func() {
		tmpDir := helpertest.NewTmpFolder("config")
		cfgFile = tmpDir.CreateStringFile("config.yml", corpusConfig()...)

		out = new(bytes.Buffer)
	})

	execute := func(args ...string) error {
		c := NewRootCommand()
		c.SetOut(out)
		c.SetErr(new(bytes.Buffer))
		c.SetArgs(append(args, "--config", cfgFile))

		return c.Execute()
	}

	Describe("parse", func() {
		It("should print all parts", func() {
			Expect(execute("parse", "HTTP://WWW.Example.CO.UK:8080/path")).Should(Succeed())

			Expect(out.String()).Should(ContainSubstring("main domain: example.co.uk"))
			Expect(out.String()).Should(ContainSubstring("port:        8080"))
		})

		It("should print JSON", func() {
			Expect(execute("parse", "--json", "https://203.0.113.5")).Should(Succeed())

			var res api.ParseResult
			Expect(json.Unmarshal(out.Bytes(), &res)).Should(Succeed())
			Expect(res.IsIP).Should(BeTrue())
			Expect(res.MainDomain).Should(Equal("203.0.113.5"))
		})

		It("should fail for input which is not a domain", func() {
			err := execute("parse", "localhost")
			Expect(err).Should(MatchError(domain.ErrNotADomain))
		})

		It("should require an argument", func() {
			Expect(execute("parse")).ShouldNot(Succeed())
		})
	})

	Describe("maindomain", func() {
		It("should print one line per host", func() {
			Expect(execute("maindomain", "www.example.com", "a.b.example.co.uk", "www.example.zz")).Should(Succeed())

			Expect(out.String()).Should(Equal(
				"www.example.com\texample.com\n" +
					"a.b.example.co.uk\texample.co.uk\n" +
					"www.example.zz\tzz\n"))
		})
	})

	Describe("cdn", func() {
		It("should only match complete main domains", func() {
			Expect(execute("cdn", "cloudfront.net", "d1.cloudfront.net")).Should(Succeed())

			Expect(out.String()).Should(Equal("cloudfront.net\ttrue\nd1.cloudfront.net\tfalse\n"))
		})
	})

	Describe("registrant", func() {
		It("should print the record at the position of the suffix", func() {
			Expect(execute("registrant", "--json", ".uk")).Should(Succeed())

			var res api.RegistrantResult
			Expect(json.Unmarshal(out.Bytes(), &res)).Should(Succeed())
			Expect(res).Should(Equal(api.RegistrantResult{Suffix: ".uk", URL: "https://www.nic.uk"}))
		})

		It("should fail for country suffixes", func() {
			Expect(execute("registrant", ".co.uk")).Should(MatchError(domain.ErrNotFound))
		})
	})

	Describe("suffixes", func() {
		It("should list gtld before cctld", func() {
			Expect(execute("suffixes")).Should(Succeed())

			Expect(out.String()).Should(Equal(".com\n.uk\n.co.uk\n"))
		})
	})
})
