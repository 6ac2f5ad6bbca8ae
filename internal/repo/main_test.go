package repo_test

import (
	"os"
	"testing"

	"github.com/pkordes/traivel/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunMigrated(m))
}
