package parsers

import (
	"bufio"
	"context"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Lines", func() {
	var (
		sutReader io.Reader
		sut       SeriesParser[string]
	)

	JustBeforeEach(func() {
		sut = Lines(sutReader)
	})

	When("it has normal lines", func() {
		BeforeEach(func() {
			sutReader = linesReader("first", "second")
		})

		It("returns them all", func() {
			str, err := sut.Next(context.Background())
			Expect(err).Should(Succeed())
			Expect(str).Should(Equal("first"))
			Expect(sut.Position()).Should(Equal("line 1"))

			str, err = sut.Next(context.Background())
			Expect(err).Should(Succeed())
			Expect(str).Should(Equal("second"))
			Expect(sut.Position()).Should(Equal("line 2"))

			_, err = sut.Next(context.Background())
			Expect(err).Should(MatchError(io.EOF))
			Expect(IsNonResumableErr(err)).Should(BeTrue())
			Expect(sut.Position()).Should(Equal("line 3"))
		})
	})

	When("it has empty and commented lines", func() {
		BeforeEach(func() {
			sutReader = linesReader("", "  ", "# comment", "value # trailing", "\r")
		})

		It("skips them", func() {
			str, err := sut.Next(context.Background())
			Expect(err).Should(Succeed())
			Expect(str).Should(Equal("value"))
			Expect(sut.Position()).Should(Equal("line 4"))

			_, err = sut.Next(context.Background())
			Expect(err).Should(MatchError(io.EOF))
		})
	})

	When("there's a scan error", func() {
		BeforeEach(func() {
			sutReader = linesReader("too long " + strings.Repeat(".", bufio.MaxScanTokenSize))
		})

		It("fails", func() {
			_, err := sut.Next(context.Background())
			Expect(err).ShouldNot(Succeed())
			Expect(IsNonResumableErr(err)).Should(BeTrue())
		})
	})
})

var _ = Describe("RawLines", func() {
	It("keeps empty lines and comments so positions match line numbers", func() {
		sut := RawLines(strings.NewReader(".com\r\n\r\n# x\n .net \nlast"))

		var res []string

		for {
			str, err := sut.Next(context.Background())
			if err != nil {
				Expect(err).Should(MatchError(io.EOF))

				break
			}

			res = append(res, str)
		}

		Expect(res).Should(Equal([]string{".com", "", "# x", ".net", "last"}))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RawLines(linesReader("a")).Next(ctx)
		Expect(err).Should(MatchError(context.Canceled))
		Expect(IsNonResumableErr(err)).Should(BeTrue())
	})
})

func linesReader(lines ...string) io.Reader {
	data := strings.Join(lines, "\n") + "\n"

	return strings.NewReader(data)
}
