package services_test

import (
	"strings"
	"testing"

	"github.com/abrezinsky/reviewwheel/internal/errors"
	"github.com/abrezinsky/reviewwheel/internal/services"
)

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     errors.Kind
		contains string
	}{
		{"ErrInvalidQRSize", services.ErrInvalidQRSize, errors.ErrInvalidInput, "1024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("expected %q to contain %q", tt.err.Error(), tt.contains)
			}
			if errors.KindOf(tt.err) != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, errors.KindOf(tt.err))
			}
		})
	}
}
