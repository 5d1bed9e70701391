package vec

// Axis2 selects an axis in 2D space.
type Axis2 uint8

// 2D axes.
const (
	Axis2X Axis2 = iota
	Axis2Y
)

// Axis3 selects an axis in 3D space.
type Axis3 uint8

// 3D axes.
const (
	Axis3X Axis3 = iota
	Axis3Y
	Axis3Z
)

// Unit returns the unit vector along the axis.
func (a Axis2) Unit() Vec2 {
	if a == Axis2X {
		return Vec2{X: 1}
	}
	return Vec2{Y: 1}
}

// Unit returns the unit vector along the axis.
func (a Axis3) Unit() Vec3 {
	switch a {
	case Axis3X:
		return Vec3{X: 1}
	case Axis3Z:
		return Vec3{Z: 1}
	default:
		return Vec3{Y: 1}
	}
}

// String returns the axis name.
func (a Axis2) String() string {
	if a == Axis2X {
		return "X"
	}
	return "Y"
}

// String returns the axis name.
func (a Axis3) String() string {
	switch a {
	case Axis3X:
		return "X"
	case Axis3Z:
		return "Z"
	default:
		return "Y"
	}
}

// FlattenX zeroes the X coordinate of v.
func FlattenX(v Vec3) Vec3 {
	return Vec3{0, v.Y, v.Z}
}

// FlattenY zeroes the Y coordinate of v.
func FlattenY(v Vec3) Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// FlattenZ zeroes the Z coordinate of v.
func FlattenZ(v Vec3) Vec3 {
	return Vec3{v.X, v.Y, 0}
}

// Flatten2 zeroes the coordinate of v along the given axis.
func Flatten2(v Vec2, axis Axis2) Vec2 {
	if axis == Axis2X {
		return Vec2{0, v.Y}
	}
	return Vec2{v.X, 0}
}

// Flatten3 zeroes the coordinate of v along the given axis.
func Flatten3(v Vec3, axis Axis3) Vec3 {
	switch axis {
	case Axis3X:
		return FlattenX(v)
	case Axis3Z:
		return FlattenZ(v)
	default:
		return FlattenY(v)
	}
}
