package dusk

// CompositeInputs is everything the scene compositor reads for one frame.
type CompositeInputs struct {
	Main     *Texture
	Lighting *Texture
	// Blur holds the pyramid levels; levels 1 and 2 are bound as the
	// half and quarter resolution glow sources.
	Blur         [PyramidLevels]*Texture
	Displacement *Texture
	Ambient      float64
	Darkness     Color
	// WaterLevel is the water surface in view space (world level minus the
	// view's top edge).
	WaterLevel float64
	ViewHeight float64
}

// UnderwaterVisible reports whether the water surface is above the bottom of
// the view. A surface exactly at the bottom edge counts as dry.
func UnderwaterVisible(waterLevel, viewHeight float64) bool {
	return waterLevel < viewHeight
}

// Compositor combines the scene, lighting buffer, and glow into the final
// target using either the dry or the water technique.
type Compositor struct {
	dry, water Technique
}

// NewCompositor creates a compositor with the dry and water techniques.
func NewCompositor(dry, water Technique) *Compositor {
	return &Compositor{dry: dry, water: water}
}

// Material builds the composition material for in. The second result
// reports whether the water technique was chosen.
func (c *Compositor) Material(in CompositeInputs) (Material, bool) {
	underwater := UnderwaterVisible(in.WaterLevel, in.ViewHeight)

	var m Material
	if underwater {
		m = NewMaterial(c.water)
	} else {
		m = NewMaterial(c.dry)
	}
	m.Blend = BlendNone
	m.SetTexture(SlotMainTex, in.Main)
	m.SetTexture(SlotLightTex, in.Lighting)
	m.SetTexture(SlotBlurHalfTex, in.Blur[1])
	m.SetTexture(SlotBlurQuarterTex, in.Blur[2])
	m.SetFloat(UniformAmbientLight, in.Ambient)
	m.SetColor(UniformDarknessColor, in.Darkness)
	if underwater {
		m.SetTexture(SlotDisplacementTex, in.Displacement)
		m.SetFloat(UniformWaterLevel, in.WaterLevel/in.ViewHeight)
	}
	return m, underwater
}

// Combine draws the composition into dst, overwriting its previous contents.
// It reports whether the water technique was used.
func (c *Compositor) Combine(dev Device, dst *RenderTarget, in CompositeInputs) (bool, error) {
	m, underwater := c.Material(in)
	if err := blitFull(dev, dst, &m); err != nil {
		return underwater, deviceErr("combine scene", err)
	}
	return underwater, nil
}
