package helpertest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// GetIntPort returns an port for the current testing
// process by adding the current ginkgo parallel process to
// the base port and returning it as int
func GetIntPort(port int) int {
	return port + ginkgo.GinkgoParallelProcess()
}

// GetStringPort returns an port for the current testing
// process by adding the current ginkgo parallel process to
// the base port and returning it as string
func GetStringPort(port int) string {
	return fmt.Sprintf("%d", GetIntPort(port))
}

// DoGetRequest performs a GET request against the handler
func DoGetRequest(ctx context.Context, url string, handler http.Handler) (*httptest.ResponseRecorder, *bytes.Buffer) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	gomega.ExpectWithOffset(1, err).Should(gomega.Succeed())

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, r)

	return rr, rr.Body
}

// HaveStatusCode checks the status code of a recorded response
func HaveStatusCode(code int) types.GomegaMatcher {
	return gomega.WithTransform(func(rr *httptest.ResponseRecorder) int {
		return rr.Code
	}, gomega.Equal(code))
}

// HaveContentType checks the Content-Type header of a recorded response
func HaveContentType(contentType string) types.GomegaMatcher {
	return gomega.WithTransform(func(rr *httptest.ResponseRecorder) string {
		return rr.Header().Get("Content-Type")
	}, gomega.HavePrefix(contentType))
}
