package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCantonName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "simple name",
			input: "Bern",
			want:  "Bern",
		},
		{
			name:  "name with umlaut",
			input: "Zürich",
			want:  "Zürich",
		},
		{
			name:  "decomposed umlaut is normalized",
			input: "Zu\u0308rich",
			want:  "Zürich",
		},
		{
			name:  "dots and spaces",
			input: "  St. Gallen ",
			want:  "St. Gallen",
		},
		{
			name:  "hyphen",
			input: "Basel-Landschaft",
			want:  "Basel-Landschaft",
		},
		{
			name:    "empty",
			input:   "   ",
			wantErr: true,
			errMsg:  "canton cannot be empty",
		},
		{
			name:    "only html",
			input:   "<b></b>",
			wantErr: true,
			errMsg:  "canton cannot be empty",
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 101),
			wantErr: true,
			errMsg:  "canton too long (max 100 characters)",
		},
		{
			name:    "sql injection attempt",
			input:   "Bern'; DROP TABLE plants; --",
			wantErr: true,
			errMsg:  "canton contains invalid characters",
		},
		{
			name:    "path traversal",
			input:   "../../etc/passwd",
			wantErr: true,
			errMsg:  "canton contains invalid characters",
		},
		{
			name:    "digits",
			input:   "Kanton 1",
			wantErr: true,
			errMsg:  "canton contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCantonName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePaging(t *testing.T) {
	assert.Empty(t, ValidatePaging(50, 0, 500))
	assert.Empty(t, ValidatePaging(500, 10, 500))

	errs := ValidatePaging(0, -1, 500)
	assert.Equal(t, []string{"limit must be between 1 and 500"}, errs["limit"])
	assert.Equal(t, []string{"offset must be non-negative"}, errs["offset"])

	errs = ValidatePaging(501, 0, 500)
	assert.Contains(t, errs, "limit")
	assert.NotContains(t, errs, "offset")
}

func TestValidateChoice(t *testing.T) {
	allowed := []string{"capacity", "municipality"}
	assert.NoError(t, ValidateChoice("sort", "capacity", allowed))

	err := ValidateChoice("sort", "lat", allowed)
	assert.EqualError(t, err, "sort must be one of: capacity, municipality")
}

func TestSanitizeInput(t *testing.T) {
	// only tags are removed, their text stays
	assert.Equal(t, "alert(1)Bern", SanitizeInput("  <script>alert(1)</script>Bern "))
	assert.Equal(t, "alert(1)Bern", SanitizeInput("<script>alert(1)</script>Bern"))
	assert.Equal(t, "Bern", SanitizeInput(" <b>Bern</b> "))
	assert.Equal(t, "", SanitizeInput("<br/>"))
}
