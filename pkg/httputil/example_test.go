package httputil_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ontouml/ontokit/pkg/httputil"
)

func ExampleRetryConfirmed() {
	attempts := 0
	send := func() error {
		attempts++
		if attempts < 3 {
			return httputil.Retryable(errors.New("server unreachable"))
		}
		return nil
	}
	confirm := func(_ context.Context, err error) bool {
		fmt.Println("failed:", err, "- retrying")
		return true
	}

	err := httputil.RetryConfirmed(context.Background(), confirm, send)
	fmt.Println("attempts:", attempts, "err:", err)
	// Output:
	// failed: server unreachable - retrying
	// failed: server unreachable - retrying
	// attempts: 3 err: <nil>
}
