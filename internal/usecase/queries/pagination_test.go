//go:build unit

package queries_test

import (
	"testing"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name  string
		from  int64
		size  int64
		want  queries.Page
		errIs error
	}{
		{name: "defaults", from: 0, size: 0, want: queries.Page{Limit: 0, Offset: 0}},
		{name: "window", from: 10, size: 5, want: queries.Page{Limit: 5, Offset: 10}},
		{name: "size only", from: 0, size: 20, want: queries.Page{Limit: 20, Offset: 0}},
		{name: "negative from", from: -1, size: 5, errIs: errs.ErrInvalidInput},
		{name: "negative size", from: 0, size: -5, errIs: errs.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := queries.NewPage(tc.from, tc.size)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
