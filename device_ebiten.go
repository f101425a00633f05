package dusk

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// maxQuadsPerDraw keeps vertex indices inside uint16 range.
const maxQuadsPerDraw = 16383

// slotGlowMix is a backend slot holding the average of the half and
// quarter blur levels. It lets the water technique keep image 3 for the
// displacement texture within Ebitengine's four source images.
const slotGlowMix = "glowMix"

// mixedSlots lists the material slots averaged into each backend slot.
var mixedSlots = map[string][]string{
	slotGlowMix: {SlotBlurHalfTex, SlotBlurQuarterTex},
}

// builtinSlots maps each embedded technique to the texture slots bound to
// Kage image indices 0-3. Slots a material binds that are not listed here
// are ignored by that technique.
var builtinSlots = map[string][4]string{
	TechniqueLighting:          {SlotNormalBuffer},
	TechniqueLightingNoise:     {SlotNormalBuffer, SlotNoiseTex},
	TechniqueDownsample:        {SlotMainTex},
	TechniqueBlur:              {SlotMainTex},
	TechniqueCombineScene:      {SlotMainTex, SlotLightTex, SlotBlurHalfTex, SlotBlurQuarterTex},
	TechniqueCombineSceneWater: {SlotMainTex, SlotLightTex, slotGlowMix, SlotDisplacementTex},
	TechniqueResizeHQ2x:        {SlotMainTex},
	TechniqueResize3xBRZ:       {SlotMainTex},
	TechniqueResize4xBRZ:       {SlotMainTex},
	TechniqueResizeCRT:         {SlotMainTex},
}

// neutralNormal is the aux-buffer clear value: a normal facing the viewer.
var neutralNormal = color.RGBA{R: 128, G: 128, B: 255, A: 255}

// EbitenDrawer is an Object that draws itself during generic render steps
// of an EbitenDevice. Objects that do not implement it are not drawn.
type EbitenDrawer interface {
	// DrawTo draws the object onto dst. offset is subtracted from world
	// positions; it is zero for screen-space steps.
	DrawTo(dst *ebiten.Image, offset Vec2, tint Color)
}

// ebitenTechnique is a compiled Kage program. A nil shader is the native
// Solid technique.
type ebitenTechnique struct {
	name   string
	shader *ebiten.Shader
	slots  [4]string
}

func (t *ebitenTechnique) Name() string { return t.name }

// ebitenTexture wraps an offscreen ebiten.Image.
type ebitenTexture struct {
	img    *ebiten.Image
	filter FilterMode
}

func (t *ebitenTexture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ebitenTexture) WritePixels(pix []byte) error {
	w, h := t.Size()
	if len(pix) != 4*w*h {
		return fmt.Errorf("write pixels: got %d bytes, want %d", len(pix), 4*w*h)
	}
	t.img.WritePixels(pix)
	return nil
}

func (t *ebitenTexture) ReadPixels(pix []byte) error {
	w, h := t.Size()
	if len(pix) != 4*w*h {
		return fmt.Errorf("read pixels: got %d bytes, want %d", len(pix), 4*w*h)
	}
	t.img.ReadPixels(pix)
	return nil
}

func (t *ebitenTexture) Dispose() {
	t.img.Deallocate()
}

type stageKey struct {
	slot, w, h int
	mixed      bool
}

// EbitenDevice implements Device on top of Ebitengine. Every format is
// stored as RGBA. Technique programs are compiled on first use from the
// embedded Kage sources or from sources registered with RegisterTechnique.
type EbitenDevice struct {
	screen     *ebiten.Image
	techniques map[string]*ebitenTechnique
	sources    map[string]techniqueSource

	whiteImage *ebiten.Image
	whiteSub   *ebiten.Image
	staging    map[stageKey]*ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
	uniforms map[string]any
	sources  []*Texture
}

type techniqueSource struct {
	src   []byte
	slots [4]string
}

// NewEbitenDevice creates a device. Call SetScreen before each frame.
func NewEbitenDevice() *EbitenDevice {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &EbitenDevice{
		techniques: map[string]*ebitenTechnique{
			TechniqueSolid: {name: TechniqueSolid},
		},
		sources:    make(map[string]techniqueSource),
		whiteImage: white,
		whiteSub:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		staging:    make(map[stageKey]*ebiten.Image),
		uniforms:   make(map[string]any, maxUniforms),
	}
}

// SetScreen sets the display surface targeted by a nil destination.
func (d *EbitenDevice) SetScreen(screen *ebiten.Image) {
	d.screen = screen
}

// RegisterTechnique adds or replaces a Kage technique. slots names the
// material texture slots bound to image indices 0-3. The program is
// compiled immediately.
func (d *EbitenDevice) RegisterTechnique(name string, src []byte, slots [4]string) error {
	if name == TechniqueSolid {
		return errors.New("dusk: cannot replace the Solid technique")
	}
	t, err := compileTechnique(name, src, slots)
	if err != nil {
		return err
	}
	d.sources[name] = techniqueSource{src: src, slots: slots}
	if old, ok := d.techniques[name]; ok && old.shader != nil {
		old.shader.Deallocate()
	}
	d.techniques[name] = t
	return nil
}

func compileTechnique(name string, src []byte, slots [4]string) (*ebitenTechnique, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrShaderUnavailable, name, err)
	}
	return &ebitenTechnique{name: name, shader: s, slots: slots}, nil
}

// Technique implements Device.
func (d *EbitenDevice) Technique(name string) (Technique, error) {
	if t, ok := d.techniques[name]; ok {
		return t, nil
	}
	slots, ok := builtinSlots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown technique", ErrShaderUnavailable, name)
	}
	src, err := shaderFS.ReadFile("shaders/" + name + ".kage")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrShaderUnavailable, name, err)
	}
	t, err := compileTechnique(name, src, slots)
	if err != nil {
		return nil, err
	}
	d.techniques[name] = t
	return t, nil
}

// CreateTexture implements Device.
func (d *EbitenDevice) CreateTexture(width, height int, _ PixelFormat, filter FilterMode) (NativeTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidTargetSize
	}
	return &ebitenTexture{img: ebiten.NewImage(width, height), filter: filter}, nil
}

// Blit implements Device.
func (d *EbitenDevice) Blit(dst *RenderTarget, m *Material, area Rect) error {
	img, err := d.targetImage(dst)
	if err != nil {
		return err
	}
	t, err := d.technique(m)
	if err != nil {
		return err
	}

	x0, y0 := float32(area.X), float32(area.Y)
	x1, y1 := float32(area.X+area.Width), float32(area.Y+area.Height)
	var sw, sh float32 = 1, 1
	if src := d.slotTexture(t, m, 0); src != nil {
		sw, sh = float32(src.Width()), float32(src.Height())
	}

	c := m.MainColor
	if c == (Color{}) {
		c = ColorWhite
	}
	pc := c.toRGBA()
	cr, cg, cb, ca := float32(pc.R)/255, float32(pc.G)/255, float32(pc.B)/255, float32(pc.A)/255

	d.vertices = append(d.vertices[:0],
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: sh, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: sw, SrcY: sh, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: sw, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	)
	d.indices = QuadIndices(d.indices[:0], 1)
	return d.draw(img, t, m)
}

// DrawQuads implements Device. Source coordinates equal destination
// coordinates so full-size inputs such as the normal buffer line up with
// the target.
func (d *EbitenDevice) DrawQuads(dst *RenderTarget, m *Material, verts []Vertex) error {
	img, err := d.targetImage(dst)
	if err != nil {
		return err
	}
	t, err := d.technique(m)
	if err != nil {
		return err
	}
	for len(verts) >= 4 {
		n := min(len(verts)/4, maxQuadsPerDraw)
		d.vertices = d.vertices[:0]
		for _, v := range verts[:n*4] {
			d.vertices = append(d.vertices, ebiten.Vertex{
				DstX:    v.Pos.X(),
				DstY:    v.Pos.Y(),
				SrcX:    v.Pos.X(),
				SrcY:    v.Pos.Y(),
				ColorR:  float32(v.Color.R) / 255,
				ColorG:  float32(v.Color.G) / 255,
				ColorB:  float32(v.Color.B) / 255,
				ColorA:  float32(v.Color.A) / 255,
				Custom0: v.TexCoord.X(),
				Custom1: v.TexCoord.Y(),
				Custom2: v.TexCoord.Z(),
				Custom3: v.TexCoord.W(),
			})
		}
		d.indices = QuadIndices(d.indices[:0], n)
		if err := d.draw(img, t, m); err != nil {
			return err
		}
		verts = verts[n*4:]
	}
	return nil
}

// DrawObjects implements Device. Color clears fill the color attachment with
// the clear color and auxiliary attachments with a viewer-facing normal.
func (d *EbitenDevice) DrawObjects(dst *RenderTarget, pass ObjectPass) error {
	img, err := d.targetImage(dst)
	if err != nil {
		return err
	}
	if pass.Clear&ClearColor != 0 {
		if pass.ClearColor == (Color{}) {
			img.Clear()
		} else {
			img.Fill(pass.ClearColor.toRGBA())
		}
		if dst != nil {
			for _, aux := range dst.Textures()[1:] {
				if n, ok := aux.Native().(*ebitenTexture); ok {
					n.img.Fill(neutralNormal)
				}
			}
		}
	}

	tint := ColorWhite
	if pass.Input != nil && pass.Input.MainColor != (Color{}) {
		tint = pass.Input.MainColor
	}
	for _, obj := range pass.Objects {
		if dr, ok := obj.(EbitenDrawer); ok {
			dr.DrawTo(img, pass.ViewOffset, tint)
		}
	}
	return nil
}

func (d *EbitenDevice) targetImage(dst *RenderTarget) (*ebiten.Image, error) {
	if dst == nil {
		if d.screen == nil {
			return nil, errors.New("no display surface")
		}
		return d.screen, nil
	}
	return nativeImage(dst.Texture(0))
}

func nativeImage(tex *Texture) (*ebiten.Image, error) {
	if tex == nil {
		return nil, errors.New("nil texture")
	}
	n, ok := tex.Native().(*ebitenTexture)
	if !ok || n == nil {
		return nil, fmt.Errorf("texture %s: not allocated by this device", tex.Name())
	}
	return n.img, nil
}

func (d *EbitenDevice) technique(m *Material) (*ebitenTechnique, error) {
	t, ok := m.Technique.(*ebitenTechnique)
	if !ok || t == nil {
		return nil, fmt.Errorf("material technique %q: not created by this device", m.TechniqueName())
	}
	return t, nil
}

// slotTexture returns the texture bound to the technique's image index i.
// Solid reads mainTex at index 0. For a mixed slot it returns the first
// bound component.
func (d *EbitenDevice) slotTexture(t *ebitenTechnique, m *Material, i int) *Texture {
	if t.shader == nil {
		if i == 0 {
			return m.MainTexture()
		}
		return nil
	}
	d.sources = slotSources(d.sources[:0], t.slots[i], m)
	if len(d.sources) == 0 {
		return nil
	}
	return d.sources[0]
}

// slotSources appends to dst the material textures feeding a technique
// slot: every bound component of a mixed slot, or the single bound texture.
func slotSources(dst []*Texture, slot string, m *Material) []*Texture {
	if slot == "" {
		return dst
	}
	if parts, ok := mixedSlots[slot]; ok {
		for _, part := range parts {
			if tex := m.Texture(part); tex != nil {
				dst = append(dst, tex)
			}
		}
		return dst
	}
	if tex := m.Texture(slot); tex != nil {
		dst = append(dst, tex)
	}
	return dst
}

// draw submits d.vertices and d.indices with the material.
func (d *EbitenDevice) draw(dst *ebiten.Image, t *ebitenTechnique, m *Material) error {
	if t.shader == nil {
		return d.drawSolid(dst, m)
	}

	var op ebiten.DrawTrianglesShaderOptions
	op.Blend = m.Blend.EbitenBlend()

	var size image.Point
	for i := 0; i < 4; i++ {
		d.sources = slotSources(d.sources[:0], t.slots[i], m)
		if len(d.sources) == 0 {
			continue
		}
		if len(d.sources) > 1 {
			if size == (image.Point{}) {
				return fmt.Errorf("technique %s: mixed slot %q at image 0", t.name, t.slots[i])
			}
			img, err := d.mix(i, d.sources, size)
			if err != nil {
				return err
			}
			op.Images[i] = img
			continue
		}
		tex := d.sources[0]
		img, err := nativeImage(tex)
		if err != nil {
			return err
		}
		if size == (image.Point{}) {
			size = img.Bounds().Size()
		} else if img.Bounds().Size() != size {
			img = d.stage(stageKey{slot: i, w: size.X, h: size.Y}, img, tex.Filter(), 0)
		}
		op.Images[i] = img
	}

	clear(d.uniforms)
	for _, u := range m.Uniforms() {
		d.uniforms[kageUniformName(u.Name)] = uniformValue(u.Value)
	}
	op.Uniforms = d.uniforms

	dst.DrawTrianglesShader(d.vertices, d.indices, t.shader, &op)
	return nil
}

func (d *EbitenDevice) drawSolid(dst *ebiten.Image, m *Material) error {
	var op ebiten.DrawTrianglesOptions
	op.Blend = m.Blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	src := d.whiteSub
	if tex := m.MainTexture(); tex != nil {
		img, err := nativeImage(tex)
		if err != nil {
			return err
		}
		src = img
		if tex.Filter() == FilterLinear {
			op.Filter = ebiten.FilterLinear
		}
	} else {
		for i := range d.vertices {
			d.vertices[i].SrcX, d.vertices[i].SrcY = 1, 1
		}
	}
	dst.DrawTriangles(d.vertices, d.indices, src, &op)
	return nil
}

// stage scales img onto the cached staging image for key so every source
// of a shader draw has the same dimensions. A non-zero weight scales img and
// adds it to the staging image instead of replacing its contents.
func (d *EbitenDevice) stage(key stageKey, img *ebiten.Image, filter FilterMode, weight float32) *ebiten.Image {
	s, ok := d.staging[key]
	if !ok {
		s = ebiten.NewImage(key.w, key.h)
		d.staging[key] = s
	}
	b := img.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(key.w)/float64(b.Dx()), float64(key.h)/float64(b.Dy()))
	op.Blend = ebiten.BlendCopy
	if weight != 0 {
		op.Blend = ebiten.BlendLighter
		op.ColorScale.Scale(weight, weight, weight, weight)
	}
	if filter == FilterLinear {
		op.Filter = ebiten.FilterLinear
	}
	s.DrawImage(img, &op)
	return s
}

// mix averages texs into the staging image for image index slot at size.
func (d *EbitenDevice) mix(slot int, texs []*Texture, size image.Point) (*ebiten.Image, error) {
	key := stageKey{slot: slot, w: size.X, h: size.Y, mixed: true}
	if s, ok := d.staging[key]; ok {
		s.Clear()
	}
	weight := 1 / float32(len(texs))
	var out *ebiten.Image
	for _, tex := range texs {
		img, err := nativeImage(tex)
		if err != nil {
			return nil, err
		}
		out = d.stage(key, img, FilterLinear, weight)
	}
	return out, nil
}

// Dispose releases the device's shaders and staging images.
func (d *EbitenDevice) Dispose() {
	for _, t := range d.techniques {
		if t.shader != nil {
			t.shader.Deallocate()
		}
	}
	for _, s := range d.staging {
		s.Deallocate()
	}
	d.whiteImage.Deallocate()
	clear(d.techniques)
	clear(d.staging)
}

// kageUniformName maps a lower camel uniform name to the exported Kage
// variable name.
func kageUniformName(name string) string {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:]
}

func uniformValue(u Uniform) any {
	if u.Kind == UniformFloat {
		return u.V[0]
	}
	return append([]float32(nil), u.Floats()...)
}
