package voronoi

import (
	"fmt"
	"math"
)

// Site is an input point. Sites are referenced by their index in the
// caller-owned slice, which must not change while a tree or sweep uses it.
type Site struct {
	X float64
	Y float64
}

// NoSite marks the missing second index of a leaf.
const NoSite = -1

type sitesByX struct {
	ids   []int
	sites []Site
}

func (s sitesByX) Len() int      { return len(s.ids) }
func (s sitesByX) Swap(i, j int) { s.ids[i], s.ids[j] = s.ids[j], s.ids[i] }
func (s sitesByX) Less(i, j int) bool {
	a, b := s.sites[s.ids[i]], s.sites[s.ids[j]]
	if a.X != b.X {
		return a.X < b.X
	}
	return s.ids[i] < s.ids[j]
}

// Above reports whether p1 is strictly higher than p2.
func Above(p1, p2 Site) bool {
	return p1.Y > p2.Y
}

// LeftOf reports whether p1 is strictly left of p2.
func LeftOf(p1, p2 Site) bool {
	return p1.X < p2.X
}

// cmp returns 0 if a == b, 1 if b > a and -1 otherwise.
func cmp(a, b float64) int {
	if a == b {
		return 0
	}
	if b > a {
		return 1
	}
	return -1
}

// Relation places pk against the breakpoint BP(pi, pj) at sweep height pk.Y.
// BP(pi, pj) is the breakpoint with the arc of pi on its left and the arc of
// pj on its right, so it differs from BP(pj, pi).
// pk must not be higher than pi or pj.
//
// Returns 0 if pk.X equals the breakpoint x, 1 if pk is to the right and
// -1 if it is to the left.
func Relation(pi, pj, pk Site) int {
	xi, yi := pi.X, pi.Y
	xj, yj := pj.X, pj.Y
	xk, yk := pk.X, pk.Y

	switch {
	case yi == yk:
		return cmp(xi, xk)
	case yj == yk:
		return cmp(xj, xk)
	case yi == yj:
		// both strictly above pk, the breakpoint is the vertical bisector
		if !(xi < xj) {
			panic(fmt.Sprintf("breakpoint (%v, %v) of level sites is not ordered left to right", pi, pj))
		}
		return cmp(0.5*(xi+xj), xk)
	case xi == xj:
		if xk > xi && yi > yj {
			return 1
		}
		if xk < xi && yi < yj {
			return -1
		}
		mid := 0.5*(yi+yj) - yk
		half := 0.5 * (yi - yj)
		d2 := mid * mid
		dk2 := half*half + (xi-xk)*(xi-xk)
		// straight below both sites, BP(lower, upper) is the right
		// intersection and pk lies left of it
		if xk > xi || (xk == xi && yi < yj) {
			return cmp(d2, dk2)
		}
		return cmp(dk2, d2)
	}

	// heights at which the parabolas of pi and pj, directrix y = yk, pass over xk
	yki := (xk-xi)*(xk-xi)/(yi-yk) + yi
	ykj := (xk-xj)*(xk-xj)/(yj-yk) + yj

	if yi > yj {
		switch {
		case yki == ykj:
			if xk < xj {
				return 0
			}
			return 1
		case yki > ykj:
			return 1
		case xk < xj:
			return -1
		default:
			return 1
		}
	}

	switch {
	case yki == ykj:
		if xk > xi {
			return 0
		}
		return 1
	case yki < ykj:
		return -1
	case xk < xi:
		return -1
	default:
		return 1
	}
}

// BreakpointX returns the x of the breakpoint between the arc of left and the
// arc of right when the sweep line is at directrix.
func BreakpointX(left, right Site, directrix float64) float64 {
	rfocx := right.X
	rfocy := right.Y
	pby2 := rfocy - directrix
	if pby2 == 0 {
		return rfocx
	}

	lfocx := left.X
	lfocy := left.Y
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx
	}

	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 != 0 {
		return (-b-math.Sqrt(b*b-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	return (rfocx + lfocx) / 2
}

// ParabolaY returns the height of the arc of site over x for the given
// directrix. The site must be strictly above the directrix.
func ParabolaY(site Site, x, directrix float64) float64 {
	p := site.Y - directrix
	return (x-site.X)*(x-site.X)/(2*p) + (site.Y+directrix)/2
}
