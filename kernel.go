package hiraitarui

// C1Params shape the distance-based repulsion kernel c1.
type C1Params struct {
	CN0     float64 // value at contact, usually negative
	CR0     float64 // plateau value
	Beta    float64 // end of the initial ramp
	Gamma   float64 // end of the plateau
	Epsilon float64 // cutoff distance
}

// H1Params shape the distance-based cohesion kernel h1.
type H1Params struct {
	HR0    float64 // plateau value
	Lambda float64 // end of the plateau
	Sigma  float64 // cutoff distance
}

// TrapezoidParams shape the angle-based kernels c2 and h2.
// Both share the four breakpoints and differ only in their two levels.
type TrapezoidParams struct {
	Phi1 float64
	Phi2 float64
	Phi3 float64
	Phi4 float64

	CPhi1 float64 // c2 level below Phi1
	CPhi2 float64 // c2 level between Phi2 and Phi3
	HPhi1 float64 // h2 level below Phi1
	HPhi2 float64 // h2 level between Phi2 and Phi3
}

// c1 ramps linearly from CN0 at r=0 to CR0 at Beta, holds CR0 until
// Gamma, decays linearly to zero at Epsilon and stays zero beyond.
func c1(r float64, p C1Params) float64 {
	switch {
	case r < p.Beta:
		return p.CN0 + (p.CR0-p.CN0)*(r/p.Beta)
	case r < p.Gamma:
		return p.CR0
	case r < p.Epsilon:
		return p.CR0 * (1 - (r-p.Gamma)/(p.Epsilon-p.Gamma))
	}
	return 0
}

// h1 holds HR0 until Lambda, decays linearly to zero at Sigma and
// stays zero beyond.
func h1(r float64, p H1Params) float64 {
	switch {
	case r < p.Lambda:
		return p.HR0
	case r < p.Sigma:
		return p.HR0 * (1 - (r-p.Lambda)/(p.Sigma-p.Lambda))
	}
	return 0
}

// trapezoid evaluates the shared angular profile: v1 below Phi1, a
// linear ramp to v2 between Phi1 and Phi2, v2 until Phi3, a linear
// decay to zero at Phi4 and zero beyond. The domain is [0, π] since
// angles between vectors are never negative.
func trapezoid(φ, v1, v2 float64, p TrapezoidParams) float64 {
	switch {
	case φ < p.Phi1:
		return v1
	case φ < p.Phi2:
		return v1 - (v1-v2)*(φ-p.Phi1)/(p.Phi2-p.Phi1)
	case φ < p.Phi3:
		return v2
	case φ < p.Phi4:
		return v2 * (1 - (φ-p.Phi3)/(p.Phi4-p.Phi3))
	}
	return 0
}

// c2 is the angle-based repulsion kernel.
func c2(φ float64, p TrapezoidParams) float64 {
	return trapezoid(φ, p.CPhi1, p.CPhi2, p)
}

// h2 is the angle-based cohesion kernel.
func h2(φ float64, p TrapezoidParams) float64 {
	return trapezoid(φ, p.HPhi1, p.HPhi2, p)
}
