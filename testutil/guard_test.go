package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type recorder struct {
	msg string
}

func (r *recorder) Fatalf(format string, args ...any) { r.msg = fmt.Sprintf(format, args...) }

func writeSource(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		pred func(string) bool
		in   string
		want bool
	}{
		{SDKImportForbidden, "github.com/aws/aws-sdk-go-v2", true},
		{SDKImportForbidden, "github.com/aws/aws-sdk-go-v2/service/s3", true},
		{SDKImportForbidden, "github.com/aws/smithy-go", false},
		{SDKImportForbidden, "github.com/aws/aws-sdk-go-v2x", false},
		{TextractRuntimeForbidden, "github.com/aws/aws-sdk-go-v2/service/textract", true},
		{TextractRuntimeForbidden, "github.com/aws/aws-sdk-go-v2/service/textract/types", true},
		{TextractRuntimeForbidden, "github.com/aws/aws-sdk-go-v2/service/s3", false},
		{TextractRuntimeForbidden, "textractkit/pkg/textract", false},
		{InternalImportForbidden, "textractkit/internal/jobs", true},
		{InternalImportForbidden, "internal/wire", true},
		{InternalImportForbidden, "textractkit/pkg/model", false},
	}
	for _, c := range cases {
		if got := c.pred(c.in); got != c.want {
			t.Fatalf("predicate(%q)=%v want %v", c.in, got, c.want)
		}
	}

	combined := Any(SDKImportForbidden, InternalImportForbidden)
	if !combined("textractkit/internal/wire") || !combined("github.com/aws/aws-sdk-go-v2/aws") {
		t.Fatalf("Any should match either predicate")
	}
	if combined("fmt") {
		t.Fatalf("Any matched an allowed path")
	}
}

func TestAssertNoDirectImportsIgnoresTestsAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "x.go", "package tmp\nimport \"fmt\"\nfunc X() { fmt.Println(1) }\n")
	writeSource(t, dir, "x_test.go", "package tmp\nimport _ \"github.com/aws/aws-sdk-go-v2/aws\"\n")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeSource(t, filepath.Join(dir, "sub"), "sub.go", "package sub\nimport _ \"github.com/aws/aws-sdk-go-v2/aws\"\n")

	AssertNoDirectImports(t, dir, SDKImportForbidden, "model stays SDK free")
}

func TestDirectImportViolations(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go", "package tmp\nimport (\n\t\"fmt\"\n\ttt \"github.com/aws/aws-sdk-go-v2/service/textract\"\n)\nvar _ = fmt.Sprint\nvar _ tt.Options\n")

	viols, err := directImportViolations(dir, TextractRuntimeForbidden)
	if err != nil {
		t.Fatalf("directImportViolations: %v", err)
	}
	if len(viols) != 1 || viols[0] != "github.com/aws/aws-sdk-go-v2/service/textract (in a.go)" {
		t.Fatalf("unexpected violations %v", viols)
	}

	writeSource(t, dir, "broken.go", "package tmp\nimport (")
	if _, err := directImportViolations(dir, TextractRuntimeForbidden); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := directImportViolations(filepath.Join(dir, "missing"), TextractRuntimeForbidden); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestTransitiveDependencyViolations(t *testing.T) {
	prev := goListDeps
	t.Cleanup(func() { goListDeps = prev })

	goListDeps = func(string) ([]byte, error) {
		return []byte("fmt\n\ngithub.com/aws/aws-sdk-go-v2/aws\ntextractkit/pkg/model\n"), nil
	}
	viols, _, err := transitiveDependencyViolations(".", SDKImportForbidden)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(viols) != 1 || viols[0] != "github.com/aws/aws-sdk-go-v2/aws" {
		t.Fatalf("unexpected violations %v", viols)
	}

	goListDeps = func(string) ([]byte, error) { return []byte("boom"), errors.New("exit 1") }
	if _, out, err := transitiveDependencyViolations(".", SDKImportForbidden); err == nil || string(out) != "boom" {
		t.Fatalf("expected go list failure, got %v %q", err, out)
	}
}

func TestFailIfViolations(t *testing.T) {
	var r recorder
	failIfViolations(&r, "direct imports", "reason", nil)
	if r.msg != "" {
		t.Fatalf("unexpected failure %q", r.msg)
	}
	failIfViolations(&r, "direct imports", "reason", []string{"a", "b"})
	if !strings.Contains(r.msg, "forbidden direct imports detected (reason)") || !strings.Contains(r.msg, "a\nb") {
		t.Fatalf("unexpected message %q", r.msg)
	}
}

func TestIsolateAWSEnv(t *testing.T) {
	t.Setenv("AWS_PROFILE", "corp")
	t.Setenv("AWS_CA_BUNDLE", "/etc/ssl/corp.pem")

	IsolateAWSEnv(t)

	if v := os.Getenv("AWS_PROFILE"); v != "" {
		t.Fatalf("AWS_PROFILE = %q", v)
	}
	if v := os.Getenv("AWS_CA_BUNDLE"); v != "" {
		t.Fatalf("AWS_CA_BUNDLE = %q", v)
	}
	if _, err := os.Stat(os.Getenv("AWS_CONFIG_FILE")); !os.IsNotExist(err) {
		t.Fatalf("shared config file should not exist, stat err = %v", err)
	}
}

func TestWriteCABundle(t *testing.T) {
	path := WriteCABundle(t)
	//nolint:gosec // test reads its own temp file.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read bundle: %v", err)
	}
	if !strings.HasPrefix(string(data), "-----BEGIN CERTIFICATE-----") {
		t.Fatalf("unexpected bundle %q", data)
	}
}
