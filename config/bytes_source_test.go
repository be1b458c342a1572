package config

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BytesSource", func() {
	Describe("UnmarshalText", func() {
		var s BytesSource

		BeforeEach(func() {
			s = BytesSource{}
		})

		It("should treat a single line as file path", func() {
			Expect(s.UnmarshalText([]byte("/data/gtld.txt"))).Should(Succeed())
			Expect(s).Should(Equal(BytesSource{Type: BytesSourceTypeFile, From: "/data/gtld.txt"}))
		})

		It("should strip the file scheme", func() {
			Expect(s.UnmarshalText([]byte("file:///data/gtld.txt"))).Should(Succeed())
			Expect(s.From).Should(Equal("/data/gtld.txt"))
		})

		It("should treat multiple lines as inline text", func() {
			Expect(s.UnmarshalText([]byte(".com\n.net\n"))).Should(Succeed())
			Expect(s.Type).Should(Equal(BytesSourceTypeText))
			Expect(s.From).Should(Equal(".com\n.net\n"))
		})

		It("should reject remote sources", func() {
			Expect(s.UnmarshalText([]byte("http://example.com/list.txt"))).ShouldNot(Succeed())
			Expect(s.UnmarshalText([]byte("https://example.com/list.txt"))).ShouldNot(Succeed())
		})
	})

	Describe("String", func() {
		It("should show files with their scheme", func() {
			Expect(BytesSource{Type: BytesSourceTypeFile, From: "/a.txt"}.String()).Should(Equal("file:///a.txt"))
		})

		It("should truncate long inline text", func() {
			Expect(TextBytesSource(".com", ".net").String()).Should(Equal(".com..."))
			Expect(TextBytesSource("a-rather-long-line").String()).Should(Equal("a-rather-lon..."))
			Expect(TextBytesSource("short").String()).Should(Equal("short"))
		})
	})

	Describe("IsEmpty", func() {
		It("should be true only without content", func() {
			Expect(BytesSource{}.IsEmpty()).Should(BeTrue())
			Expect(TextBytesSource(".com").IsEmpty()).Should(BeFalse())
		})
	})
})
