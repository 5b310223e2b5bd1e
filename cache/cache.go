// Package cache reads a texture cache produced by the texcache
// builder: a textures.json document plus a textures/ tree of PNGs.
package cache

import "encoding/json"

// BlockState is one block's entry in textures.json. Model references
// are already shortened to bare model names.
type BlockState struct {
	Variants  map[string]Variants `json:"variants,omitempty"`
	Multipart []MultipartCase     `json:"multipart,omitempty"`
}

// MultipartCase is one entry of a multipart blockstate. The condition
// is kept raw; only the applied models matter for rendering.
type MultipartCase struct {
	When  json.RawMessage `json:"when,omitempty"`
	Apply Variants        `json:"apply"`
}

// Variant selects one model with an optional rotation.
type Variant struct {
	Model  string `json:"model"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	UVLock bool   `json:"uvlock,omitempty"`
	Weight int    `json:"weight,omitempty"`
}

// Variants is a list of weighted variants. Blockstate JSON writes a
// single variant as a bare object and alternatives as an array; both
// forms decode into the same slice.
type Variants []Variant

func (v *Variants) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var list []Variant
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*v = list
		return nil
	}
	var one Variant
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*v = Variants{one}
	return nil
}

// Model is one resolved model document from the "models" mapping.
type Model struct {
	Parent           string            `json:"parent,omitempty"`
	AmbientOcclusion *bool             `json:"ambientocclusion,omitempty"`
	Textures         map[string]string `json:"textures,omitempty"`
	Elements         []Element         `json:"elements,omitempty"`
}

// Element is one cuboid of a model's geometry, in 0..16 coordinates.
type Element struct {
	From     [3]float64      `json:"from"`
	To       [3]float64      `json:"to"`
	Rotation *Rotation       `json:"rotation,omitempty"`
	Shade    *bool           `json:"shade,omitempty"`
	Faces    map[string]Face `json:"faces,omitempty"`
}

type Rotation struct {
	Origin  [3]float64 `json:"origin"`
	Axis    string     `json:"axis"`
	Angle   float64    `json:"angle"`
	Rescale bool       `json:"rescale,omitempty"`
}

// Face describes one side of an element. Texture is either a concrete
// path or a "#name" variable resolved through the model's texture map.
type Face struct {
	UV        []float64 `json:"uv,omitempty"`
	Texture   string    `json:"texture"`
	Cullface  string    `json:"cullface,omitempty"`
	Rotation  int       `json:"rotation,omitempty"`
	TintIndex *int      `json:"tintindex,omitempty"`
}
