//go:build unit

package queries_test

import (
	"testing"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  queries.State
		errIs error
	}{
		{name: "empty defaults to ALL", raw: "", want: queries.StateAll},
		{name: "all", raw: "ALL", want: queries.StateAll},
		{name: "current", raw: "CURRENT", want: queries.StateCurrent},
		{name: "past", raw: "PAST", want: queries.StatePast},
		{name: "future", raw: "FUTURE", want: queries.StateFuture},
		{name: "waiting", raw: "WAITING", want: queries.StateWaiting},
		{name: "rejected", raw: "REJECTED", want: queries.StateRejected},
		{name: "lowercase accepted", raw: "current", want: queries.StateCurrent},
		{name: "mixed case accepted", raw: "PaSt", want: queries.StatePast},
		{name: "unknown value", raw: "UNSUPPORTED_STATUS", errIs: errs.ErrUnsupportedState},
		{name: "approved is not a filter state", raw: "APPROVED", errIs: errs.ErrUnsupportedState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := queries.ParseState(tc.raw)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
