package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunemakerPatch_PotionHotkeyPresence(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *string
	}{
		{name: "absent", body: `{"spellHotkey":"F7"}`},
		{name: "null", body: `{"potionHotkey":null}`, wantSet: true},
		{name: "value", body: `{"potionHotkey":"F3"}`, wantSet: true, wantValue: func() *string { s := "F3"; return &s }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch RunemakerPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))

			assert.Equal(t, tt.wantSet, patch.PotionHotkey.Set)
			assert.Equal(t, tt.wantValue, patch.PotionHotkey.Value)
		})
	}
}

func TestRunemakerPatch_MarshalOmitsUnsetHotkey(t *testing.T) {
	spell := "F7"

	body, err := json.Marshal(RunemakerPatch{SpellHotkey: &spell})
	require.NoError(t, err)
	assert.JSONEq(t, `{"spellHotkey":"F7"}`, string(body))

	body, err = json.Marshal(RunemakerPatch{PotionHotkey: Null()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"potionHotkey":null}`, string(body))
}

func TestNullableString_RejectsNonString(t *testing.T) {
	var patch RunemakerPatch

	err := json.Unmarshal([]byte(`{"potionHotkey":12}`), &patch)
	assert.Error(t, err)
}
