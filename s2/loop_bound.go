package s2

import "github.com/hypermodeinc/s2loop/s1"

// RectBound returns a tight bounding latitude-longitude rectangle for the
// loop, computed once at construction (and after any vertex mutation) and
// cached thereafter.
func (l *Loop) RectBound() Rect { return l.bound }

// subregionRectBound returns a bound with enough margin to be used when
// testing whether this loop's bound entirely contains another region's
// bound, which is a stricter test than plain intersection and needs extra
// slack to stay conservative.
func (l *Loop) subregionRectBound() Rect { return l.subregionBound }

// CellUnionBound returns a small set of coarse cells sampled from the
// loop's RectBound: all six face cells for a full bound, nil for an empty
// one, and otherwise the distinct level-4 cells containing the bound's
// low corner, high corner and center. The returned cells are not
// guaranteed to cover the whole RectBound.
func (l *Loop) CellUnionBound() []CellID {
	if l.bound.IsFull() {
		return []CellID{CellIDFromFace(0), CellIDFromFace(1), CellIDFromFace(2), CellIDFromFace(3), CellIDFromFace(4), CellIDFromFace(5)}
	}
	if l.bound.IsEmpty() {
		return nil
	}
	seen := map[CellID]bool{}
	var ids []CellID
	add := func(ll LatLng) {
		id := CellIDFromPoint(PointFromLatLng(ll)).Parent(4)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	add(LatLng{s1.Angle(l.bound.Lat.Lo), s1.Angle(l.bound.Lng.Lo)})
	add(LatLng{s1.Angle(l.bound.Lat.Hi), s1.Angle(l.bound.Lng.Hi)})
	add(l.bound.Center())
	return ids
}
