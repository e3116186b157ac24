package httpsource

import (
	"fmt"
	"os"
	"strings"
)

// EnvBaseURL overrides the download base URL when set to a non-empty value.
// The value is normalized to end with a slash.
const EnvBaseURL = "DICOM_TEST_FILES_URL"

const (
	// DefaultBaseURL is the canonical data directory of the dicom-test-files
	// repository.
	DefaultBaseURL = "https://raw.githubusercontent.com/robyoung/dicom-test-files/master/data/"

	rawGitHubUserContentURL = "https://raw.githubusercontent.com"
)

// ResolveBaseURL determines the base URL for the current environment.
//
// Precedence: the DICOM_TEST_FILES_URL environment variable; on GitHub
// Actions pull requests against a dicom-test-files repository, the raw
// contents of the contributing branch; otherwise DefaultBaseURL.
func ResolveBaseURL() (string, error) {
	if url := os.Getenv(EnvBaseURL); url != "" {
		return EnsureTrailingSlash(url), nil
	}

	// CI is always "true" on GitHub Actions.
	if os.Getenv("CI") == "true" {
		repo := os.Getenv("GITHUB_REPOSITORY")
		if strings.HasSuffix(repo, "/dicom-test-files") {
			event, ok := os.LookupEnv("GITHUB_EVENT_NAME")
			if !ok {
				return "", fmt.Errorf("%w: GITHUB_EVENT_NAME not set", ErrResolveURL)
			}
			if event == "pull_request" {
				headRef, ok := os.LookupEnv("GITHUB_HEAD_REF")
				if !ok {
					return "", fmt.Errorf("%w: GITHUB_HEAD_REF not set", ErrResolveURL)
				}
				return fmt.Sprintf("%s/%s/%s/data/", rawGitHubUserContentURL, repo, headRef), nil
			}
		}
	}

	return DefaultBaseURL, nil
}

// EnsureTrailingSlash appends a trailing slash when url lacks one.
func EnsureTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}
