package cache

import "iris/internal/mathx"

// Orbit is one row of a planetary orbit table.
type Orbit struct {
	Radius    float64
	Count     int
	Speed     float64 // revolutions per second
	Direction float64 // +1 or -1
	Tilt      float64 // degrees
}

// OrbitInfo is the precomputed placement of one particle on its orbit.
type OrbitInfo struct {
	OrbitIndex   int
	Radius       float64
	Speed        float64
	Direction    float64
	Tilt         float64
	TiltCos      float64
	TiltSin      float64
	LocalIndex   int
	TotalInOrbit int
	BaseAngle    float64
}

// Orbits returns the orbit placement of every particle for the given count.
// The result is computed on first use and memoized by count alone; a later
// call with the same count and a different table returns the first result.
// Particles beyond the table's capacity fall back to the last orbit.
func (c *Cache) Orbits(count int, table []Orbit) []OrbitInfo {
	if infos, ok := c.orbits[count]; ok {
		return infos
	}
	if count < 0 {
		count = 0
	}
	infos := make([]OrbitInfo, 0, count)
	for id := 0; id < count; id++ {
		infos = append(infos, c.placeOrbit(id, table))
	}
	c.orbits[count] = infos
	return infos
}

func (c *Cache) placeOrbit(id int, table []Orbit) OrbitInfo {
	if len(table) == 0 {
		return OrbitInfo{TiltCos: 1, Direction: 1}
	}
	accumulated := 0
	for i, o := range table {
		if id < accumulated+o.Count {
			local := id - accumulated
			return c.orbitInfo(i, o, local)
		}
		accumulated += o.Count
	}
	last := len(table) - 1
	return c.orbitInfo(last, table[last], 0)
}

func (c *Cache) orbitInfo(index int, o Orbit, local int) OrbitInfo {
	tilt := c.TiltTrig(o.Tilt)
	base := 0.0
	if o.Count > 0 {
		base = float64(local) / float64(o.Count) * mathx.TwoPi
	}
	return OrbitInfo{
		OrbitIndex:   index,
		Radius:       o.Radius,
		Speed:        o.Speed,
		Direction:    o.Direction,
		Tilt:         o.Tilt,
		TiltCos:      tilt.Cos,
		TiltSin:      tilt.Sin,
		LocalIndex:   local,
		TotalInOrbit: o.Count,
		BaseAngle:    base,
	}
}
