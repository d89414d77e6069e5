package environment

import (
	"math"

	"github.com/wildstyl3r/seaecho/internal/constants"
)

// density at one atmosphere, Millero & Poisson (1981) [kg/m^3]
func surfaceDensity(T, S float64) float64 {
	rhoW := 999.842594 + T*(6.793952e-2+T*(-9.095290e-3+T*(1.001685e-4+T*(-1.120083e-6+T*6.536332e-9))))
	A := 8.24493e-1 + T*(-4.0899e-3+T*(7.6438e-5+T*(-8.2467e-7+T*5.3875e-9)))
	B := -5.72466e-3 + T*(1.0227e-4-T*1.6546e-6)
	const C = 4.8314e-4
	return rhoW + A*S + B*S*math.Sqrt(S) + C*S*S
}

// secant bulk modulus of EOS-80, p in bar gauge [bar]
func secantBulkModulus(T, S, p float64) float64 {
	S15 := S * math.Sqrt(S)
	Kw := 19652.21 + T*(148.4206+T*(-2.327105+T*(1.360477e-2-T*5.155288e-5)))
	Aw := 3.239908 + T*(1.43713e-3+T*(1.16092e-4-T*5.77905e-7))
	Bw := 8.50935e-5 + T*(-6.12293e-6+T*5.2787e-8)
	K0 := Kw + S*(54.6746+T*(-0.603459+T*(1.09987e-2-T*6.1670e-5))) + S15*(7.944e-2+T*(1.6483e-2-T*5.3009e-4))
	A := Aw + S*(2.2838e-3+T*(-1.0981e-5-T*1.6078e-6)) + 1.91075e-4*S15
	B := Bw + S*(-9.9348e-7+T*(2.0816e-8+T*9.1697e-10))
	return K0 + p*(A+p*B)
}

// in-situ density [kg/m^3]
func density(T, S, z float64) float64 {
	rho0 := surfaceDensity(T, S)
	p := rho0 * constants.Gravity * z / constants.Bar
	return rho0 / (1. - p/secantBulkModulus(T, S, p))
}

// Coppens (1981), z in m [m/s]
func soundSpeedCoppens(T, S, z float64) float64 {
	t := T / 10.
	D := z / 1000.
	dS := S - 35.
	c0 := 1449.05 + t*(45.7+t*(-5.21+t*0.23)) + (1.333+t*(-0.126+t*0.009))*dS
	return c0 + (16.23+0.253*t)*D + (0.213-0.1*t)*D*D + (0.016+0.0002*dS)*dS*t*D
}

// Mackenzie (1981) nine-term equation, z in m [m/s]
func soundSpeedMackenzie(T, S, z float64) float64 {
	dS := S - 35.
	return 1448.96 + 4.591*T - 5.304e-2*T*T + 2.374e-4*T*T*T +
		1.340*dS + 1.630e-2*z + 1.675e-7*z*z -
		1.025e-2*T*dS - 7.139e-13*T*z*z*z
}

// Sharqawy et al. (2010) [Pa s]
func viscosity(T, S float64) float64 {
	s := S / 1000. // [kg/kg]
	muW := 4.2844e-5 + 1./(0.157*(T+64.993)*(T+64.993)-91.296)
	A := 1.541 + 1.998e-2*T - 9.52e-5*T*T
	B := 7.974 - 7.561e-2*T + 4.724e-4*T*T
	return muW * (1. + A*s + B*s*s)
}

// Nayar et al. (2014) [N/m]
func surfaceTension(T, S float64) float64 {
	tau := 1. - (T+constants.ZeroCelsius)/647.096
	sigmaW := 0.2358 * math.Pow(tau, 1.256) * (1. - 0.625*tau)
	return sigmaW * (1. + 3.766e-4*S + 2.347e-6*S*T)
}

// Buck (1981) over pure water with Raoult lowering for salinity [Pa]
func vaporPressure(T, S float64) float64 {
	pw := 611.21 * math.Exp((18.678-T/234.5)*(T/(257.14+T)))
	return pw / (1. + 0.57357*S/(1000.-S))
}

// Millero et al. (1973) at one atmosphere [J kg^-1 K^-1]
func specificHeat(T, S float64) float64 {
	cp0 := 4217.4 + T*(-3.720283+T*(0.1412855+T*(-2.654387e-3+T*2.093236e-5)))
	S15 := S * math.Sqrt(S)
	A := S * (-7.643575 + T*(0.1072763-T*1.38385e-3))
	B := S15 * (0.1770383 + T*(-4.07718e-3+T*5.148e-5))
	return cp0 + A + B
}
