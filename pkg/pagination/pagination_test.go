package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

func TestFromQueryDefaultsToUnbounded(t *testing.T) {
	params, err := FromQuery(url.Values{})
	require.NoError(t, err)
	assert.Zero(t, params.Limit)
	assert.Zero(t, params.Offset)
}

func TestFromQueryParsesValues(t *testing.T) {
	params, err := FromQuery(url.Values{"limit": {"10"}, "offset": {"20"}})
	require.NoError(t, err)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 20, params.Offset)
}

func TestFromQueryCapsLimit(t *testing.T) {
	params, err := FromQuery(url.Values{"limit": {"5000"}})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, params.Limit)
}

func TestFromQueryRejectsBadInput(t *testing.T) {
	for _, values := range []url.Values{
		{"limit": {"abc"}},
		{"limit": {"-1"}},
		{"offset": {"-5"}},
		{"offset": {"x"}},
	} {
		_, err := FromQuery(values)
		require.Error(t, err)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}
