package constants

const Gravity float64 = 9.81                 // [m s^-2]
const GasConstant float64 = 8.31446261815324 // [J mol^-1 K^-1]
const AtmosphericPressure float64 = 1.01e5   // [Pa], sea-level value used for bubble gas
const ZeroCelsius float64 = 273.15           // [K]
const ReferenceGasTemperature float64 = 20.  // [°C], free gas density at sea level
const Bar float64 = 1e5                      // [Pa]
const Decibar float64 = 1e4                  // [Pa]
