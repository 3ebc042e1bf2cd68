package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleJSONRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleStaff, RoleManager, RoleAdmin} {
		data, err := json.Marshal(r)
		require.NoError(t, err)

		var got Role
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r, got)
	}
}

func TestRoleUnmarshalNumeric(t *testing.T) {
	var r Role
	require.NoError(t, json.Unmarshal([]byte(`2`), &r))
	assert.Equal(t, RoleAdmin, r)
}

func TestParseRoleUnknownDefaultsToStaff(t *testing.T) {
	assert.Equal(t, RoleStaff, ParseRole("intern"))
	assert.Equal(t, "staff", Role(99).String())
}
