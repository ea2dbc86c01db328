package lights

// Attenuation describes distance falloff as 1 / (1 + A + B·d + C·d²)
type Attenuation struct {
	A, B, C float64
}

// NoFalloff keeps the light color at every distance
var NoFalloff = Attenuation{}

// InverseSquare is the physically motivated quadratic falloff
var InverseSquare = Attenuation{C: 1}

// Factor returns the multiplier at distance d
func (a Attenuation) Factor(d float64) float64 {
	return 1 / (1 + a.A + a.B*d + a.C*d*d)
}
