// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/distro/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_profile_error",
			code:    errors.ErrInvalidProfile,
			message: "profile name must only contain letters, numbers, and underscores: my-site",
			wantStr: "[INVALID_PROFILE] profile name must only contain letters, numbers, and underscores: my-site",
		},
		{
			name:    "no_releases_error",
			code:    errors.ErrNoReleases,
			message: "latest Drupal release not found",
			wantStr: "[NO_RELEASES] latest Drupal release not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidCoreVersion, "core version not valid: %s", "99")
	if err.Message != "core version not valid: 99" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("connection refused")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrNetwork, "release lookup failed")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[NETWORK] release lookup failed: connection refused"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrNetwork, "release lookup failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTemplateNotFound, "file not found: build.xml").
		WithDetail("path", "build.xml")

	if err.Details["path"] != "build.xml" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "build.xml")
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "build.xml" {
		t.Errorf("GetErrorDetails() path = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNoReleases, "error 1")
	err2 := errors.New(errors.ErrNoReleases, "error 2")
	err3 := errors.New(errors.ErrNetwork, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should work with DistroError")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrFilesystem, "cannot write"),
			code:     errors.ErrFilesystem,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrFilesystem, "cannot write"),
			code:     errors.ErrVCS,
			expected: false,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrFilesystem,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrFilesystem,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrVCS, "git failed")); got != errors.ErrVCS {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrVCS)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestIsRetryable(t *testing.T) {
	if !errors.IsRetryable(errors.New(errors.ErrNetwork, "timeout")) {
		t.Error("network errors should be retryable")
	}
	if errors.IsRetryable(errors.New(errors.ErrNoReleases, "empty feed")) {
		t.Error("empty results should not be retryable")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("permission denied")
	fsErr := errors.Wrap(rootCause, errors.ErrFilesystem, "cannot create acme/7.x")
	runErr := errors.Wrap(fsErr, errors.ErrInternal, "materialize failed")

	if !errors.IsErrorCode(runErr, errors.ErrInternal) {
		t.Error("Top level should have ErrInternal code")
	}

	var distroErr *errors.DistroError
	if stderrors.As(runErr.Unwrap(), &distroErr) {
		if !errors.IsErrorCode(distroErr, errors.ErrFilesystem) {
			t.Error("Middle error should have ErrFilesystem code")
		}
	}

	if !stderrors.Is(runErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
