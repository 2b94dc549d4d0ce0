package lite

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/core"
)

// TestURLProcessingDirectly runs the URL pipeline without HTTP requests
func TestURLProcessingDirectly(t *testing.T) {
	urls := []string{
		// valid by structure (never fetched)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		// invalid by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(urls)

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
}

func processRequest(urls []string) []string {
	ctx := context.Background()

	finallyHandlers := FinallyHandlers[int, string, error]{
		OnSuccess: func(ctx context.Context, r int) string {
			return fmt.Sprintf("title length: %d", r)
		},
		OnError: func(ctx context.Context, err error) string {
			return "invalid"
		},
	}

	return core.FromChanMany(ctx,
		Finally(ctx,
			Turnout(ctx,
				Turnout(ctx,
					Run(ctx,
						core.ToChanManyResults[string, error](ctx, urls),
						Validate(validateURLTest), 2),
					AndThen(mockFetchTitle), 2),
				AndThen(calculateTitleLength), 2),
			finallyHandlers,
		),
	)
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(ctx context.Context, url string) rop.Result[string, error] {
	if valid, _ := validateURLTest(ctx, url); valid {
		return rop.Ok[string, error]("Mock Page Title for " + url)
	}
	return rop.Err[string](fmt.Errorf("invalid URL"))
}

func validateURLTest(_ context.Context, url string) (bool, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, fmt.Errorf("URL must start with http:// or https://")
	}
	return true, nil
}

func calculateTitleLength(_ context.Context, title string) rop.Result[int, error] {
	return rop.Ok[int, error](len(title))
}
