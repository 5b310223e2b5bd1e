package texcache

import (
	"encoding/json"
	"testing"
)

func TestStripNamespace(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "prefixed", ref: "minecraft:block/stone", want: "block/stone"},
		{name: "bare", ref: "block/stone", want: "block/stone"},
		{name: "custom namespace", ref: "mymod:block/gadget", want: "block/gadget"},
		{name: "no path", ref: "minecraft:stone", want: "stone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripNamespace(tt.ref); got != tt.want {
				t.Errorf("stripNamespace(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestShortKey(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "prefixed path", ref: "minecraft:block/grass_block", want: "grass_block"},
		{name: "bare path", ref: "block/cube_all", want: "cube_all"},
		{name: "no segments", ref: "stone", want: "stone"},
		{name: "deep path", ref: "minecraft:block/special/thing", want: "thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortKey(tt.ref); got != tt.want {
				t.Errorf("shortKey(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestPatchSculkSensorUV(t *testing.T) {
	raw := `{
		"elements": [{
			"from": [0, 0, 0],
			"to": [16, 8, 16],
			"faces": {
				"north": {"uv": [0, 8, 16, 16], "texture": "#side"},
				"east": {"uv": [0, 8, 16, 16], "texture": "#side"},
				"up": {"uv": [0, 0, 16, 16], "texture": "#top"}
			}
		}]
	}`
	var model map[string]any
	if err := json.Unmarshal([]byte(raw), &model); err != nil {
		t.Fatal(err)
	}

	patchSculkSensorUV(model)

	faces := model["elements"].([]any)[0].(map[string]any)["faces"].(map[string]any)
	want := []any{float64(0), float64(0), float64(16), float64(8)}
	for _, side := range []string{"north", "east"} {
		uv := faces[side].(map[string]any)["uv"].([]any)
		for i := range want {
			if uv[i] != want[i] {
				t.Fatalf("%s uv = %v, want %v", side, uv, want)
			}
		}
	}

	upUV := faces["up"].(map[string]any)["uv"].([]any)
	if upUV[3] != float64(16) {
		t.Errorf("up uv should be untouched, got %v", upUV)
	}
}

func TestPatchSculkSensorUVNoElements(t *testing.T) {
	model := map[string]any{"textures": map[string]any{"all": "block/sculk"}}
	patchSculkSensorUV(model) // must not panic
}
