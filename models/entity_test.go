package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_IDFromNumberAndString(t *testing.T) {
	var list []Entity
	require.NoError(t, json.Unmarshal([]byte(`[{"id":7,"title":"a"},{"id":"abc"},{"title":"no id"}]`), &list))

	assert.Equal(t, ID("7"), list[0].ID())
	assert.Equal(t, ID("abc"), list[1].ID())
	assert.True(t, list[2].ID().IsZero())

	big := Entity{FieldID: json.Number("9007199254740993")}
	assert.Equal(t, ID("9007199254740993"), big.ID())
}

func TestEntity_Bool(t *testing.T) {
	e := Entity{"a": true, "b": "oui", "c": float64(0), "d": "nope", "n1": json.Number("1"), "n0": json.Number("0")}
	assert.True(t, e.Bool("a"))
	assert.True(t, e.Bool("b"))
	assert.False(t, e.Bool("c"))
	assert.False(t, e.Bool("d"))
	assert.True(t, e.Bool("n1"))
	assert.False(t, e.Bool("n0"))
	assert.False(t, e.Bool("missing"))
}

func TestEntity_CloneIsIndependent(t *testing.T) {
	e := Entity{"title": "x"}
	c := e.Clone()
	c["title"] = "y"
	assert.Equal(t, "x", e.String("title"))
}

func TestBuildEntity_AppliesDefaultsAndTypes(t *testing.T) {
	got := BuildEntity(MarketplaceItems, map[string]string{
		FieldName:        "Payment API",
		FieldDescription: "Pay",
		FieldIcon:        "Zap",
		FieldPrice:       "€49",
		FieldCategory:    "API",
		FieldFeatures:    "fast, cheap",
		FieldPopular:     "yes",
		"unknown":        "dropped",
	})

	assert.Equal(t, DefaultMarketplacePeriod, got[FieldPeriod])
	assert.Equal(t, true, got[FieldPopular])
	assert.Equal(t, "€49", got[FieldPrice])
	assert.NotContains(t, got, "unknown")
}

func TestBuildEntity_ProjectStatusDefault(t *testing.T) {
	got := BuildEntity(Projects, map[string]string{FieldTitle: "Site", FieldDescription: "d"})
	assert.Equal(t, DefaultProjectStatus, got[FieldStatus])
}

func TestFormValues_RoundTrip(t *testing.T) {
	e := Entity{FieldID: float64(3), FieldName: "Go", FieldIcon: "Code"}
	values := FormValues(Technologies, e)
	assert.Equal(t, map[string]string{FieldName: "Go", FieldIcon: "Code"}, values)
}

func TestCountUnread(t *testing.T) {
	msgs := []Entity{
		{FieldRead: true},
		{FieldRead: false},
		{},
	}
	assert.Equal(t, 2, CountUnread(msgs))
}

func TestID_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(User{ID: "42", Name: "A"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":42`)

	b, err = json.Marshal(User{ID: "x-1"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":"x-1"`)
}

func TestID_MarshalJSON_NonCanonicalNumbersStayStrings(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{"42", `42`},
		{"-3", `-3`},
		{"0", `0`},
		{"007", `"007"`},
		{"+5", `"+5"`},
		{"-0", `"-0"`},
		{"99999999999999999999", `"99999999999999999999"`},
		{"", `null`},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			b, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))

			var back ID
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, tt.id, back)
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Admin", User{}.DisplayName())
	assert.Equal(t, "Jeanne", User{Name: " Jeanne "}.DisplayName())
}
