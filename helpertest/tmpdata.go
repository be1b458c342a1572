package helpertest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// TmpFolder is a temporary directory removed when the current test ends
type TmpFolder struct {
	Path string
}

// NewTmpFolder creates a temporary folder and registers its cleanup with ginkgo
func NewTmpFolder(prefix string) *TmpFolder {
	if len(prefix) == 0 {
		prefix = "regdomain"
	}

	path, err := os.MkdirTemp("", prefix)
	gomega.ExpectWithOffset(1, err).Should(gomega.Succeed())

	ginkgo.DeferCleanup(os.RemoveAll, path)

	return &TmpFolder{Path: path}
}

// JoinPath returns the absolute path of name inside the folder
func (tf *TmpFolder) JoinPath(name string) string {
	return filepath.Join(tf.Path, name)
}

// CreateStringFile writes the lines, separated by "\n", to a new file and returns its path
func (tf *TmpFolder) CreateStringFile(name string, lines ...string) string {
	path := tf.JoinPath(name)

	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600)
	gomega.ExpectWithOffset(1, err).Should(gomega.Succeed())

	return path
}

// CreateSubFolder creates a directory inside the folder and returns its path
func (tf *TmpFolder) CreateSubFolder(name string) string {
	path := tf.JoinPath(name)

	gomega.ExpectWithOffset(1, os.Mkdir(path, 0o700)).Should(gomega.Succeed())

	return path
}
