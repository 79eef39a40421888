package core

// SpriteKind tags an entity for the renderer.
type SpriteKind int

const (
	SpritePlatform SpriteKind = iota
	SpriteEnemy
	SpriteCoin
	SpriteRedCoin
	SpriteGoldenCoin
	SpritePowerUp
	SpritePlayer
	SpriteCar
	SpriteObstacleCar
	SpriteBullet
	SpriteMuzzle
	SpriteExplosion
	SpriteRunner
	SpriteCactus
	SpriteGround
)

// Sprite is a read-only view of one entity for the render collaborator.
// Rect is in world coordinates; Glyph and Color carry the visual state.
type Sprite struct {
	Kind  SpriteKind
	Rect  Rect
	Glyph rune
	Color Color
}
