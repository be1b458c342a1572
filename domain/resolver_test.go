package domain

import (
	"sync"

	"github.com/0xERR0R/regdomain/corpus"
	"github.com/0xERR0R/regdomain/evt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// recordEvents collects the parameters of all events published on topic during the current test
func recordEvents(topic string) func() []string {
	var (
		mu     sync.Mutex
		events []string
	)

	handler := func(param string) {
		mu.Lock()
		defer mu.Unlock()

		events = append(events, param)
	}

	Expect(evt.Bus().Subscribe(topic, handler)).Should(Succeed())
	DeferCleanup(evt.Bus().Unsubscribe, topic, handler)

	return func() []string {
		mu.Lock()
		defer mu.Unlock()

		return append([]string(nil), events...)
	}
}

var _ = Describe("Resolver", func() {
	var sut *Resolver

	BeforeEach(func() {
		sut = NewResolver(testCorpus())
	})

	Describe("MainDomain", func() {
		DescribeTable("boundary search",
			func(host, expected string) {
				Expect(sut.MainDomain(host)).Should(Equal(expected))
			},
			Entry("global suffix", "www.example.com", "example.com"),
			Entry("country suffix wins over its last label", "www.example.co.uk", "example.co.uk"),
			Entry("deep subdomain", "a.b.c.example.com.cn", "example.com.cn"),
			Entry("single global suffix of a compound country", "example.uk", "example.uk"),
			Entry("country suffix itself", "co.uk", "co.uk"),
			Entry("upper case", "WWW.Example.ORG", "example.org"),
			Entry("unknown suffix falls back to the last label", "www.example.zz", "zz"),
			Entry("multi label gtld entries never match", "www.dept.gov.uk", "gov.uk"),
			Entry("single label cctld entries never match", "www.example.xx", "xx"),
			Entry("suffix is matched verbatim", "www.example.comx", "comx"),
			Entry("empty label stops the search", "a..example.com", ".example.com"),
			Entry("leading dot", ".com", ".com"),
			Entry("IP literal is not special", "1.2.3.4", "4"),
		)

		It("should reject hosts without dot", func() {
			_, err := sut.MainDomain("localhost")
			Expect(err).Should(MatchError(ErrNotADomain))

			_, err = sut.MainDomain("")
			Expect(err).Should(MatchError(ErrNotADomain))
		})

		It("should be idempotent for registrable domains", func() {
			for _, host := range []string{"www.example.com", "shop.example.net", "example.org"} {
				main, err := sut.MainDomain(host)
				Expect(err).Should(Succeed())

				Expect(sut.MainDomain(main)).Should(Equal(main))
			}
		})

		It("should decode punycode before matching", func() {
			Expect(sut.MainDomain("www.xn--55qx5d.xn--fiqs8s")).Should(Equal("公司.中国"))
		})

		It("should decode punycode next to labels with underscores", func() {
			failed := recordEvents(evt.IdnDecodeFailed)

			Expect(sut.MainDomain("_dmarc.xn--55qx5d.xn--fiqs8s")).Should(Equal("公司.中国"))
			Expect(failed()).Should(BeEmpty())
		})

		It("should publish the kind of the matched suffix", func() {
			events := recordEvents(evt.DomainResolved)

			_, _ = sut.MainDomain("www.example.co.uk")
			_, _ = sut.MainDomain("www.example.com")
			_, _ = sut.MainDomain("www.example.zz")

			Expect(events()).Should(Equal([]string{KindCctld, KindGtld, KindNone}))
		})

		When("decoding fails", func() {
			var codec *failingCodec

			BeforeEach(func() {
				codec = &failingCodec{}
				sut = NewResolver(testCorpus(), WithIdnCodec(codec))
			})

			It("should resolve the encoded host", func() {
				failed := recordEvents(evt.IdnDecodeFailed)

				Expect(sut.MainDomain("www.XN--bad.com")).Should(Equal("xn--bad.com"))
				Expect(codec.calls).Should(Equal([]string{"www.xn--bad.com"}))
				Expect(failed()).Should(Equal([]string{"www.xn--bad.com"}))
			})

			It("should not call the codec without punycode labels", func() {
				Expect(sut.MainDomain("www.example.com")).Should(Equal("example.com"))
				Expect(codec.calls).Should(BeEmpty())
			})
		})

		When("the corpus is empty", func() {
			BeforeEach(func() {
				sut = NewResolver(corpus.New(nil, nil, nil, nil))
			})

			It("should fall back to the last label", func() {
				Expect(sut.MainDomain("www.example.co.uk")).Should(Equal("uk"))
			})
		})
	})

	Describe("Parse", func() {
		It("should decompose and resolve a full URL", func() {
			res, err := sut.Parse("HTTP://WWW.Example.CO.UK:8080/path")
			Expect(err).Should(Succeed())
			Expect(res).Should(Equal(Result{
				Scheme:     "http",
				Domain:     "www.example.co.uk",
				MainDomain: "example.co.uk",
				Port:       "8080",
				URL:        "http://www.example.co.uk:8080/path",
			}))
		})

		It("should default scheme and port for bare hosts", func() {
			res, err := sut.Parse("example.com")
			Expect(err).Should(Succeed())
			Expect(res.Scheme).Should(Equal("http"))
			Expect(res.Port).Should(Equal("80"))
			Expect(res.MainDomain).Should(Equal("example.com"))
		})

		It("should return IP literals as their own main domain", func() {
			events := recordEvents(evt.DomainResolved)

			res, err := sut.Parse("https://203.0.113.5")
			Expect(err).Should(Succeed())
			Expect(res.IsIP).Should(BeTrue())
			Expect(res.Domain).Should(Equal("203.0.113.5"))
			Expect(res.MainDomain).Should(Equal("203.0.113.5"))
			Expect(res.Port).Should(Equal("443"))

			Expect(events()).Should(Equal([]string{KindIP}))
		})

		It("should return IPv6 literals as their own main domain", func() {
			res, err := sut.Parse("http://[::ffff:192.0.2.1]/")
			Expect(err).Should(Succeed())
			Expect(res.IsIP).Should(BeTrue())
			Expect(res.MainDomain).Should(Equal("::ffff:192.0.2.1"))
		})

		It("should report the decoded domain", func() {
			res, err := sut.Parse("https://www.xn--55qx5d.xn--fiqs8s/index.html")
			Expect(err).Should(Succeed())
			Expect(res.Domain).Should(Equal("www.公司.中国"))
			Expect(res.MainDomain).Should(Equal("公司.中国"))
			Expect(res.URL).Should(Equal("https://www.xn--55qx5d.xn--fiqs8s/index.html"))
		})

		It("should reject input without dot", func() {
			_, err := sut.Parse("localhost:8080")
			Expect(err).Should(MatchError(ErrNotADomain))
		})

		DescribeTable("extracted hosts without dot",
			func(input string) {
				events := recordEvents(evt.DomainResolved)

				res, err := sut.Parse(input)
				Expect(err).Should(MatchError(ErrNotADomain))
				Expect(res).Should(BeZero())
				Expect(events()).Should(BeEmpty())
			},
			Entry("dot only in the path", "http://localhost/a.b"),
			Entry("unsupported scheme becomes the host", "ftp://example.com"),
			Entry("dot only in the query", "https://intranet?next=a.b"),
		)
	})

	Describe("IsCdn", func() {
		It("should match main domains exactly", func() {
			Expect(sut.IsCdn("cloudfront.net")).Should(BeTrue())
			Expect(sut.IsCdn("d111.cloudfront.net")).Should(BeFalse())
			Expect(sut.IsCdn("front.net")).Should(BeFalse())
			Expect(sut.IsCdn("example.com")).Should(BeFalse())
		})
	})

	Describe("RegistrantInfo", func() {
		It("should return the record at the position of the suffix", func() {
			Expect(sut.RegistrantInfo(".com")).Should(Equal(corpus.RegistrantRecord{
				URL:         "https://www.verisign.com",
				RegisterURL: "https://www.verisign.com/register",
				Whois:       "whois.verisign-grs.com",
			}))

			rec, err := sut.RegistrantInfo(".org")
			Expect(err).Should(Succeed())
			Expect(rec).Should(Equal(corpus.RegistrantRecord{URL: "https://pir.org"}))
		})

		It("should return an empty record if the registrant list is shorter", func() {
			Expect(sut.RegistrantInfo(".uk")).Should(BeZero())
		})

		DescribeTable("unknown suffixes",
			func(suffix string) {
				_, err := sut.RegistrantInfo(suffix)
				Expect(err).Should(MatchError(ErrNotFound))
			},
			Entry("country suffix", ".co.uk"),
			Entry("missing dot", "com"),
			Entry("unknown", ".zz"),
			Entry("empty", ""),
		)
	})

	Describe("SuffixDomains", func() {
		It("should list gtld followed by cctld", func() {
			Expect(sut.SuffixDomains()).Should(Equal([]string{
				".com", ".net", ".org", ".uk", ".cn", ".中国", ".gov.uk",
				".co.uk", ".org.uk", ".com.cn", ".xx",
			}))
		})
	})
})

var _ = Describe("IDNACodec", func() {
	sut := NewIDNACodec()

	It("should decode punycode labels", func() {
		res := sut.Decode("xn--55qx5d.xn--fiqs8s")
		Expect(res.Failed()).Should(BeFalse())
		Expect(res.Value).Should(Equal("公司.中国"))
	})

	It("should keep labels which are no valid host names", func() {
		res := sut.Decode("_dmarc.xn--55qx5d.xn--fiqs8s")
		Expect(res.Failed()).Should(BeFalse())
		Expect(res.Value).Should(Equal("_dmarc.公司.中国"))
	})

	It("should return the input on failure", func() {
		res := sut.Decode("xn--$$$.com")
		Expect(res.Failed()).Should(BeTrue())
		Expect(res.Value).Should(Equal("xn--$$$.com"))
	})
})
