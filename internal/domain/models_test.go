package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDDecodesStringsAndNumbers(t *testing.T) {
	var r SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "type": "claim", "title": "c"}`), &r))
	assert.Equal(t, ID("42"), r.ID)
	assert.Equal(t, 42, r.ID.Int())

	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc-1", "type": "member", "title": "m"}`), &r))
	assert.Equal(t, ID("abc-1"), r.ID)
	assert.Equal(t, 0, r.ID.Int())
}

func TestIDRejectsOtherTypes(t *testing.T) {
	var r SearchResult
	err := json.Unmarshal([]byte(`{"id": {"v": 1}}`), &r)
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"ADMIN":    RoleAdmin,
		"admin":    RoleAdmin,
		" Provider ": RoleProvider,
		"patient":  RolePatient,
		"GUEST":    RoleGuest,
		"":         RoleGuest,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRole("WIZARD")
	require.Error(t, err)
}

func TestMemberFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Member{FirstName: "Jane", LastName: "Doe"}.FullName())
	assert.Equal(t, "Jane", Member{FirstName: "Jane"}.FullName())
}
