package util_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"

	"github.com/eopatcher/eopatcher/formatter"
	"github.com/eopatcher/eopatcher/util"
)

var _ = Describe("InitLog", func() {

	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "eopatcher_log_test_tmp_*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(util.InitLog("info", util.ConsoleLog, formatter.TextFormat)).To(Succeed())
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	Context("with a json log file", func() {
		It("should write one json document per entry", func() {
			logPath := filepath.Join(tmpDir, "patcher.log")
			Expect(util.InitLog("debug", logPath, formatter.JSONFormat)).To(Succeed())

			log.WithField(formatter.RunField, "cs1v0").Debug("staging ready")

			content, err := os.ReadFile(logPath)
			Expect(err).NotTo(HaveOccurred())

			var doc map[string]interface{}
			Expect(json.Unmarshal(content, &doc)).To(Succeed())
			Expect(doc).To(HaveKeyWithValue("msg", "staging ready"))
			Expect(doc).To(HaveKeyWithValue(formatter.RunField, "cs1v0"))
			Expect(doc).To(HaveKey(formatter.SourceField))
		})
	})

	Context("with invalid input", func() {
		It("should reject an unknown level", func() {
			Expect(util.InitLog("loud", util.ConsoleLog, formatter.TextFormat)).NotTo(Succeed())
		})

		It("should reject an unknown format", func() {
			Expect(util.InitLog("info", util.ConsoleLog, "xml")).NotTo(Succeed())
		})
	})
})
