// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "math"

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	*m = M4{}
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
}

// Perspective sets m to a right-handed, zero-to-one-depth
// perspective projection matrix, following the same
// derivation as GLM's perspective (column-major, clip z
// in [0,1] for near/far respectively).
func (m *M4) Perspective(vfov, aspect, near, far float32) {
	*m = M4{}
	tanHalf := float32(math.Tan(float64(vfov) / 2))
	m[0][0] = 1 / (aspect * tanHalf)
	m[1][1] = 1 / tanHalf
	m[2][2] = far / (near - far)
	m[2][3] = -1
	m[3][2] = -(far * near) / (far - near)
}

// LookAt sets m to a view matrix looking from eye toward
// center, with the given up direction.
func (m *M4) LookAt(eye, center, up *V3) {
	var f, s, u V3
	f.Sub(center, eye)
	f.Norm(&f)
	s.Cross(&f, up)
	s.Norm(&s)
	u.Cross(&s, &f)

	m.I()
	m[0][0], m[1][0], m[2][0] = s[0], s[1], s[2]
	m[0][1], m[1][1], m[2][1] = u[0], u[1], u[2]
	m[0][2], m[1][2], m[2][2] = -f[0], -f[1], -f[2]
	m[3][0] = -s.Dot(eye)
	m[3][1] = -u.Dot(eye)
	m[3][2] = f.Dot(eye)
}
