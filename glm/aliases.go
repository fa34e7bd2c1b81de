package glm

type Vec2f = Vec2[float32]
type Vec4f = Vec4[float32]

type Vec2u = Vec2[uint32]
type Vec4u = Vec4[uint32]

type Rectangle2f = Rectangle2[float32]
type Rectangle2u = Rectangle2[uint32]
