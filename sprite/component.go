// Package sprite implements the 2D sprite render component.
//
// Setters only mark state dirty. The rendering collaborator pulls the render
// contribution once per frame through Component.Render, which resolves all
// pending updates before handing out the render data.
package sprite

import (
	"log/slog"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/spritekit/glm"
)

// Renderer receives the render contribution of a component.
type Renderer interface {
	Commit(data *RenderData, texture asset.TextureView, assembler Assembler)
}

type Options struct {
	// RenderType of the host. Defaults to RenderTypeGPU.
	RenderType RenderType
}

// Component renders a sprite frame on a node. It is not safe for
// concurrent use, all methods and load callbacks run on the frame loop.
type Component struct {
	node       Node
	renderType RenderType

	enabled   bool
	destroyed bool

	spriteFrame *asset.SpriteFrame
	atlas       *asset.SpriteAtlas

	spriteType Type
	fillType   FillType
	fillCenter glm.Vec2f
	fillStart  float32
	fillRange  float32
	trim       bool
	sizeMode   SizeMode
	grayscale  bool
	color      glm.Color

	material   *Material
	assembler  Assembler
	renderData *RenderData

	// set when the render data needs to be updated before the next draw
	renderDataFlag bool

	// persistent load subscription marking uvs dirty
	frameUVSub asset.Subscription

	// one shot subscription waiting for the frames texture
	frameLoadSub asset.Subscription
}

// New attaches a disabled sprite component to the given node.
func New(node Node, opts Options) *Component {
	c := &Component{
		node:       node,
		renderType: opts.RenderType,
		fillCenter: glm.Vec2f{0.5, 0.5},
		trim:       true,
		sizeMode:   SizeModeTrimmed,
		material:   NewMaterial(MaterialAddColorAndTexture),
	}

	c.assembler = AssemblerFor(c)

	return c
}

func (c *Component) Node() Node {
	return c.node
}

func (c *Component) Enabled() bool {
	return c.enabled
}

func (c *Component) SpriteFrame() *asset.SpriteFrame {
	return c.spriteFrame
}

func (c *Component) SpriteAtlas() *asset.SpriteAtlas {
	return c.atlas
}

func (c *Component) Type() Type {
	return c.spriteType
}

func (c *Component) FillType() FillType {
	return c.fillType
}

func (c *Component) FillCenter() glm.Vec2f {
	return c.fillCenter
}

func (c *Component) FillStart() float32 {
	return c.fillStart
}

func (c *Component) FillRange() float32 {
	return c.fillRange
}

func (c *Component) Trim() bool {
	return c.trim
}

func (c *Component) SizeMode() SizeMode {
	return c.sizeMode
}

func (c *Component) Grayscale() bool {
	return c.grayscale
}

func (c *Component) Color() glm.Color {
	return c.color
}

func (c *Component) Material() *Material {
	return c.material
}

func (c *Component) Assembler() Assembler {
	return c.assembler
}

// RenderData returns the current render data, nil if absent.
func (c *Component) RenderData() *RenderData {
	return c.renderData
}

// RenderDataDirty returns true if an update is pending for the next draw.
func (c *Component) RenderDataDirty() bool {
	return c.renderDataFlag || (c.renderData != nil && c.renderData.dirty())
}

// SetSpriteFrame assigns the frame to render. The frame is shared, the
// component only subscribes to its load event.
func (c *Component) SetSpriteFrame(frame *asset.SpriteFrame) {
	if c.spriteFrame == frame {
		return
	}

	previous := c.spriteFrame

	// stop listening to the previous frame before subscribing to the new one
	c.frameUVSub.Cancel()
	c.frameLoadSub.Cancel()

	c.spriteFrame = frame

	// the dirty flag is recomputed when applying the new frame
	c.markForUpdateRenderData(false)
	c.applySpriteFrame(previous)
}

func (c *Component) SetSpriteAtlas(atlas *asset.SpriteAtlas) {
	c.atlas = atlas
}

func (c *Component) SetType(spriteType Type) {
	if c.spriteType == spriteType {
		return
	}

	c.spriteType = spriteType

	if !c.flushAssembler() {
		c.markForUpdateRenderData(true)
	}
}

// SetFillType changes the fill direction. Switching between radial and the
// bar fill types changes the data layout and rebuilds the render data,
// switching between bar fill types only marks uvs dirty.
func (c *Component) SetFillType(fillType FillType) {
	if c.fillType == fillType {
		return
	}

	c.fillType = fillType

	if !c.flushAssembler() {
		c.markUVDirty()
	}
}

// SetFillCenter sets the center of a radial fill, normalized to the node rectangle.
func (c *Component) SetFillCenter(center glm.Vec2f) {
	c.fillCenter = glm.Vec2f{
		clamp(center[0], 0, 1),
		clamp(center[1], 0, 1),
	}

	if c.spriteType == TypeFilled && c.renderData != nil {
		c.markForUpdateRenderData(true)
	}
}

// SetFillStart sets the start of the fill, clamped to [-1, 1].
func (c *Component) SetFillStart(value float32) {
	c.fillStart = clamp(value, -1, 1)

	if c.spriteType == TypeFilled && c.renderData != nil {
		c.markForUpdateRenderData(true)
		c.renderData.UVDirty = true
	}
}

// SetFillRange sets the filled fraction, clamped to [0, 1].
func (c *Component) SetFillRange(value float32) {
	c.fillRange = clamp(value, 0, 1)

	if c.spriteType == TypeFilled && c.renderData != nil {
		c.markForUpdateRenderData(true)
		c.renderData.UVDirty = true
	}
}

// SetTrim selects whether transparent borders of the frame are part of
// the node rectangle.
func (c *Component) SetTrim(trim bool) {
	if c.trim == trim {
		return
	}

	c.trim = trim

	if c.spriteType == TypeSimple && c.renderData != nil {
		c.markForUpdateRenderData(true)
	}
}

func (c *Component) SetSizeMode(mode SizeMode) {
	if c.sizeMode == mode {
		return
	}

	c.sizeMode = mode

	if mode != SizeModeCustom {
		c.applySpriteSize()
	}
}

func (c *Component) SetGrayscale(grayscale bool) {
	if c.grayscale == grayscale {
		return
	}

	c.grayscale = grayscale

	variant := MaterialAddColorAndTexture
	if grayscale {
		variant = MaterialGrayscale
	}

	c.material = NewMaterial(variant)
	c.activateMaterial()
}

func (c *Component) SetColor(color glm.Color) {
	if c.color == color {
		return
	}

	c.color = color

	if c.renderData != nil {
		c.assembler.UpdateColor(c)
	}
}

// ChangeSpriteFrameFromAtlas assigns the frame with the given name from the
// current atlas. Does nothing without an atlas or if the atlas has no such frame.
func (c *Component) ChangeSpriteFrameFromAtlas(name string) {
	if c.atlas == nil {
		return
	}

	frame := c.atlas.SpriteFrame(name)
	if frame == nil {
		asset.Logger().Debug("Sprite frame not found in atlas",
			slog.String("atlas", c.atlas.Name()),
			slog.String("frame", name),
		)

		return
	}

	c.markUVDirty()
	c.SetSpriteFrame(frame)
	c.markForUpdateRenderData(true)
}

// NodeResized must be called by the host after the node was resized from
// outside. A size that no longer matches the frame switches to SizeModeCustom.
func (c *Component) NodeResized() {
	if c.spriteFrame == nil || c.sizeMode == SizeModeCustom {
		return
	}

	if c.node.ContentSize() != c.frameSize() {
		c.sizeMode = SizeModeCustom
	}

	c.markForUpdateRenderData(true)
}

func (c *Component) OnEnable() {
	if c.destroyed || c.enabled {
		return
	}

	c.enabled = true

	c.flushAssembler()
	c.activateMaterial()
}

func (c *Component) OnDisable() {
	c.enabled = false
	c.destroyRenderData()
}

// OnDestroy tears the component down and cancels all load subscriptions.
func (c *Component) OnDestroy() {
	if c.destroyed {
		return
	}

	c.OnDisable()
	c.destroyed = true

	c.frameUVSub.Cancel()
	c.frameLoadSub.Cancel()
}

// CanRender returns false if the component is disabled or the sprite frame
// is missing or not yet loaded.
func (c *Component) CanRender() bool {
	if !c.enabled || c.destroyed {
		return false
	}

	if c.renderType != RenderTypeCanvas && c.material == nil {
		return false
	}

	return c.spriteFrame != nil && c.spriteFrame.Loaded()
}

// Render resolves all pending updates and commits the render data to r.
// Returns false without calling r if the component can not render. Render
// data left over from a frame that was destroyed while in use is dropped.
func (c *Component) Render(r Renderer) bool {
	if !c.CanRender() {
		if !c.canBuildRenderData() {
			c.destroyRenderData()
		}

		return false
	}

	c.flushAssembler()

	if c.RenderDataDirty() {
		c.assembler.UpdateRenderData(c)
		c.renderDataFlag = false
	}

	r.Commit(c.renderData, c.spriteFrame.TextureView(), c.assembler)
	return true
}

// flushAssembler selects the assembler for the current render mode. Render
// data of a previous assembler is dropped, render data is created if it
// is missing and the component can build it. Returns true if the assembler changed.
func (c *Component) flushAssembler() bool {
	assembler := AssemblerFor(c)

	changed := c.assembler != assembler
	if changed {
		asset.Logger().Debug("Switch sprite assembler",
			slog.String("from", c.assembler.Name()),
			slog.String("to", assembler.Name()),
		)

		c.destroyRenderData()
		c.assembler = assembler
	}

	if c.renderData == nil && c.canBuildRenderData() {
		c.renderData = c.assembler.CreateData(c)
		c.renderData.Material = c.material
		c.markForUpdateRenderData(true)
		c.assembler.UpdateColor(c)
	}

	return changed
}

func (c *Component) canBuildRenderData() bool {
	return c.enabled && !c.destroyed && c.spriteFrame != nil && c.spriteFrame.Loaded()
}

func (c *Component) destroyRenderData() {
	if c.renderData == nil {
		return
	}

	c.renderData.release()
	c.renderData = nil
	c.renderDataFlag = false
}

func (c *Component) markForUpdateRenderData(enable bool) {
	if !enable {
		c.renderDataFlag = false
		return
	}

	if c.renderData != nil {
		c.renderData.VertDirty = true
		c.renderDataFlag = true
	}
}

func (c *Component) markUVDirty() {
	if c.renderData != nil {
		c.renderData.UVDirty = true
		c.renderDataFlag = true
	}
}

func (c *Component) applySpriteFrame(previous *asset.SpriteFrame) {
	frame := c.spriteFrame

	// render data only lives as long as there is a loaded frame to render
	if frame == nil || !frame.Loaded() {
		c.destroyRenderData()
	}

	if rd := c.renderData; rd != nil {
		if !rd.UVDirty {
			// same uv layout, the texture coordinates can be reused
			rd.UVDirty = previous == nil || previous.UVHash() != frame.UVHash()
		}

		c.renderDataFlag = rd.UVDirty
	}

	// a destroyed component must not hold subscriptions on shared frames
	if frame == nil || c.destroyed {
		return
	}

	c.frameUVSub = frame.OnLoad(c.markUVDirty)

	if frame.Loaded() {
		c.onTextureLoaded()
	} else {
		c.frameLoadSub = frame.OnceLoad(c.onTextureLoaded)
	}
}

func (c *Component) onTextureLoaded() {
	if c.destroyed {
		return
	}

	c.frameLoadSub = asset.Subscription{}

	c.flushAssembler()
	c.applySpriteSize()
}

func (c *Component) frameSize() glm.Vec2f {
	switch c.sizeMode {
	case SizeModeRaw:
		return c.spriteFrame.OriginalSize().ToVec2f()
	case SizeModeTrimmed:
		return c.spriteFrame.Rect().Size().ToVec2f()
	default:
		return c.node.ContentSize()
	}
}

func (c *Component) applySpriteSize() {
	if c.spriteFrame == nil {
		return
	}

	if c.sizeMode != SizeModeCustom {
		c.node.SetContentSize(c.frameSize())
	}

	c.activateMaterial()
}

func (c *Component) activateMaterial() {
	if c.renderType == RenderTypeCanvas {
		c.markForUpdateRenderData(true)
		return
	}

	frame := c.spriteFrame
	if frame != nil && frame.Loaded() && c.material != nil {
		c.material.SetMainTexture(frame)
		c.markForUpdateRenderData(true)
	}

	if c.renderData != nil {
		c.renderData.Material = c.material
	}
}
