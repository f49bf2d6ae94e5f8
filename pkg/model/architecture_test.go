package model

import (
	"testing"

	"textractkit/testutil"
)

func TestModelHelpersHaveNoRuntimeDeps(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.InternalImportForbidden, "model helpers are public API")
	testutil.AssertNoTransitiveDependency(t, ".", testutil.SDKImportForbidden, "model helpers must not pull in the AWS SDK")
}
