package glm

import "fmt"

type Rectangle2[T numeric] struct {
	Min Vec2[T]
	Max Vec2[T]
}

func RectangleFromSize[T numeric](pos Vec2[T], size Vec2[T]) Rectangle2[T] {
	return RectangleFromPoints[T](pos, pos.Add(size))
}

func RectangleFromXYWH[T numeric](x, y, w, h T) Rectangle2[T] {
	return RectangleFromSize(Vec2[T]{x, y}, Vec2[T]{w, h})
}

func RectangleFromPoints[T numeric](a, b Vec2[T]) Rectangle2[T] {
	return Rectangle2[T]{
		Min: Vec2[T]{
			min(a[0], b[0]),
			min(a[1], b[1]),
		},
		Max: Vec2[T]{
			max(a[0], b[0]),
			max(a[1], b[1]),
		},
	}
}

func (r Rectangle2[T]) Extend(point Vec2[T]) Rectangle2[T] {
	return Rectangle2[T]{
		Min: Vec2[T]{min(r.Min[0], point[0]), min(r.Min[1], point[1])},
		Max: Vec2[T]{max(r.Max[0], point[0]), max(r.Max[1], point[1])},
	}
}

// Contains returns true if other lies completely within r.
func (r Rectangle2[T]) Contains(other Rectangle2[T]) bool {
	return other.Min[0] >= r.Min[0] && other.Min[1] >= r.Min[1] &&
		other.Max[0] <= r.Max[0] && other.Max[1] <= r.Max[1]
}

func (r Rectangle2[T]) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

func (r Rectangle2[T]) Offset() Vec2[T] {
	return r.Min
}

func (r Rectangle2[T]) Center() Vec2[T] {
	return r.Min.Add(r.Max).Div(Vec2[T]{2, 2})
}

func (r Rectangle2[T]) Size() Vec2[T] {
	return r.Max.Sub(r.Min)
}

func (r Rectangle2[T]) Width() T {
	return r.Max[0] - r.Min[0]
}

func (r Rectangle2[T]) Height() T {
	return r.Max[1] - r.Min[1]
}

func (r Rectangle2[T]) XYWH() (T, T, T, T) {
	x, y := r.Min.XY()
	w, h := r.Size().XY()
	return x, y, w, h
}

func (r Rectangle2[T]) String() string {
	x, y, w, h := r.XYWH()
	return fmt.Sprintf("Rect(x=%v, y=%v, w=%v, h=%v)", x, y, w, h)
}
