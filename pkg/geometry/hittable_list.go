package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// HittableList is a flat collection of objects tested one after another
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, _, isHit := l.HitObject(ray, tMin, tMax)
	return hit, isHit
}

// HitObject is Hit that also returns the object that produced the closest hit.
// Objects are intersected once, so stochastic ones such as media stay consistent.
func (l *HittableList) HitObject(ray core.Ray, tMin, tMax float64) (*core.HitRecord, core.Hittable, bool) {
	var closestHit *core.HitRecord
	var closestObject core.Hittable
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestObject = object
		}
	}

	return closestHit, closestObject, closestHit != nil
}

// BoundingBox returns the union of all object boxes. An empty list or one
// holding an unbounded object has no box.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}
