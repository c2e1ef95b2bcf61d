package service

import (
	"os"
	"testing"

	"github.com/MKhiriev/go-pass-autofill/internal/utils"
)

func TestMain(m *testing.M) {
	utils.InitHasherPool(utils.DeriveUsageHashKey("test-agent-secret"))
	os.Exit(m.Run())
}
