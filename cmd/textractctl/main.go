// Command textractctl runs Amazon Textract analyses, tracks asynchronous jobs,
// and stages documents in S3. See internal/config for the TEXTRACTKIT_*
// environment variables it reads.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"textractkit/internal/cli"
)

var exitFunc = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		exitFunc(1)
	}
}
