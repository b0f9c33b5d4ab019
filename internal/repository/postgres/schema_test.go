package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation", &pq.Error{Code: "23505"}, true},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
		{"other pq error", &pq.Error{Code: "23502"}, false},
		{"not a pq error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestNullInt64RoundTrip(t *testing.T) {
	req := require.New(t)
	req.Equal(sql.NullInt64{}, nullInt64(nil))
	req.Nil(fromNullInt64(sql.NullInt64{}))

	v := int64(1669947792)
	got := fromNullInt64(nullInt64(&v))
	req.NotNil(got)
	req.Equal(v, *got)
}
