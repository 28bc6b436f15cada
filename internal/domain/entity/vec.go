package entity

import "fmt"

// Vec is an integer grid coordinate or offset
type Vec struct {
	X, Y int
}

// V is shorthand for Vec{X: x, Y: y}
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k
func (v Vec) Scale(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether v is the zero vector
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
