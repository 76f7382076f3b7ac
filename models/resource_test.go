package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceKind(t *testing.T) {
	tests := []struct {
		in   string
		want ResourceKind
	}{
		{"articles", Articles},
		{"Article", Articles},
		{" projects ", Projects},
		{"tech", Technologies},
		{"marketplace", MarketplaceItems},
		{"marketplace-items", MarketplaceItems},
		{"MESSAGE", Messages},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResourceKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseResourceKind_Unknown(t *testing.T) {
	_, err := ParseResourceKind("users")
	assert.ErrorIs(t, err, ErrUnknownResourceKind)
}

func TestResourceKind_Paths(t *testing.T) {
	assert.Equal(t, "/admin/articles", Articles.Path())
	assert.Equal(t, "/admin/marketplace-items/12", MarketplaceItems.ItemPath("12"))
	assert.Equal(t, "/admin/projects/a%2Fb", Projects.ItemPath("a/b"))
}

func TestAllResourceKinds_SevenKindsAllValid(t *testing.T) {
	kinds := AllResourceKinds()
	require.Len(t, kinds, 7)
	for _, k := range kinds {
		assert.True(t, k.Valid(), k)
		assert.NotEmpty(t, k.Fields(), k)
	}
	assert.False(t, ResourceKind("users").Valid())

	// mutating the copy must not leak into the package list
	kinds[0] = "users"
	assert.Equal(t, Articles, AllResourceKinds()[0])
}

func TestResourceKind_Creatable(t *testing.T) {
	assert.True(t, Articles.Creatable())
	assert.False(t, Messages.Creatable())
}

func TestResourceKind_TitleField(t *testing.T) {
	assert.Equal(t, FieldTitle, Articles.TitleField())
	assert.Equal(t, FieldName, Technologies.TitleField())
	assert.Equal(t, FieldSubject, Messages.TitleField())
}
