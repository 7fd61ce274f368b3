package ras2tin

import (
	"math"
	"math/big"
)

// Geometric predicates. The fast paths are plain float64 determinants; when
// a result lands inside the rounding-error bound the determinant is redone
// in arbitrary precision, so near-degenerate configurations resolve to their
// exact sign instead of triggering false flips.

const (
	orientErrBound   = 3.3306690738754716e-16 // (3 + 16u)u, u = 2^-53
	incircleErrBound = 1.1102230246251565e-15 // (10 + 96u)u
)

// orient2d returns a positive value if a, b, c wind counterclockwise,
// negative if clockwise, zero if collinear.
func orient2d(ax, ay, bx, by, cx, cy float64, st *Stats) float64 {
	detLeft := (ax - cx) * (by - cy)
	detRight := (ay - cy) * (bx - cx)
	det := detLeft - detRight
	bound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > bound || -det > bound {
		return det
	}
	if st != nil {
		st.PredicateFallbacks++
	}
	return orient2dExact(ax, ay, bx, by, cx, cy)
}

func orient2dExact(ax, ay, bx, by, cx, cy float64) float64 {
	prec := uint(192)
	bax := new(big.Float).SetPrec(prec).SetFloat64(ax)
	bay := new(big.Float).SetPrec(prec).SetFloat64(ay)
	bbx := new(big.Float).SetPrec(prec).SetFloat64(bx)
	bby := new(big.Float).SetPrec(prec).SetFloat64(by)
	bcx := new(big.Float).SetPrec(prec).SetFloat64(cx)
	bcy := new(big.Float).SetPrec(prec).SetFloat64(cy)

	l := new(big.Float).SetPrec(prec).Mul(new(big.Float).Sub(bax, bcx), new(big.Float).Sub(bby, bcy))
	r := new(big.Float).SetPrec(prec).Mul(new(big.Float).Sub(bay, bcy), new(big.Float).Sub(bbx, bcx))
	det := new(big.Float).Sub(l, r)
	f, _ := det.Float64()
	return f
}

// inCircle returns a positive value if d lies strictly inside the
// circumcircle of the counterclockwise triangle a, b, c.
func inCircle(ax, ay, bx, by, cx, cy, dx, dy float64, st *Stats) float64 {
	adx := ax - dx
	ady := ay - dy
	bdx := bx - dx
	bdy := by - dy
	cdx := cx - dx
	cdy := cy - dy

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdx*cdy-bdy*cdx) +
		blift*(cdx*ady-cdy*adx) +
		clift*(adx*bdy-ady*bdx)

	permanent := alift*(math.Abs(bdx*cdy)+math.Abs(bdy*cdx)) +
		blift*(math.Abs(cdx*ady)+math.Abs(cdy*adx)) +
		clift*(math.Abs(adx*bdy)+math.Abs(ady*bdx))
	bound := incircleErrBound * permanent
	if det > bound || -det > bound {
		return det
	}
	if st != nil {
		st.PredicateFallbacks++
	}
	return inCircleExact(ax, ay, bx, by, cx, cy, dx, dy)
}

func inCircleExact(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	prec := uint(256)
	f := func(v float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(v) }
	sub := func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sub(a, b) }
	mul := func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(a, b) }
	add := func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Add(a, b) }

	adx, ady := sub(f(ax), f(dx)), sub(f(ay), f(dy))
	bdx, bdy := sub(f(bx), f(dx)), sub(f(by), f(dy))
	cdx, cdy := sub(f(cx), f(dx)), sub(f(cy), f(dy))

	alift := add(mul(adx, adx), mul(ady, ady))
	blift := add(mul(bdx, bdx), mul(bdy, bdy))
	clift := add(mul(cdx, cdx), mul(cdy, cdy))

	det := mul(alift, sub(mul(bdx, cdy), mul(bdy, cdx)))
	det = add(det, mul(blift, sub(mul(cdx, ady), mul(cdy, adx))))
	det = add(det, mul(clift, sub(mul(adx, bdy), mul(ady, bdx))))
	out, _ := det.Float64()
	return out
}
