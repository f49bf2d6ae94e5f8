package staging

import (
	"testing"

	"textractkit/testutil"
)

func TestStagingDoesNotCallTextract(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.TextractRuntimeForbidden, "staging only uploads to S3")
}
