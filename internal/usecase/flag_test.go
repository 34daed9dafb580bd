package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlag_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"on"`, true},
		{`"On"`, true},
		{`"true"`, true},
		{`"1"`, true},
		{`"off"`, false},
		{`"false"`, false},
		{`""`, false},
	}

	for _, tc := range cases {
		var f Flag
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &f), tc.raw)
		assert.Equal(t, tc.want, f.Bool(), tc.raw)
	}
}

func TestFlag_UnmarshalJSON_Invalid(t *testing.T) {
	var f Flag

	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`42`), &f))
}

func TestFlag_ProductInputCheckboxEncoding(t *testing.T) {
	var input ProductInput
	raw := `{"name":"Folding chair","on_sell":"on","in_stock":true}`

	require.NoError(t, json.Unmarshal([]byte(raw), &input))
	assert.True(t, input.OnSell.Bool())
	assert.True(t, input.InStock.Bool())
}

func TestFlag_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		OnSell Flag `json:"on_sell"`
	}{OnSell: true})

	require.NoError(t, err)
	assert.JSONEq(t, `{"on_sell":true}`, string(out))
}
