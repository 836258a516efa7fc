package study

// Constant is an entry of the formula quick reference.
type Constant struct {
	Label string
	Value string
}

// QuickRef is the short list shown on the home screen.
func QuickRef() []Constant {
	return []Constant{
		{Label: "Gravitational Constant", Value: "6.674 × 10⁻¹¹ m³/kg·s²"},
		{Label: "Euler's Number", Value: "2.71828"},
		{Label: "Ideal Gas Constant", Value: "8.314 J/mol·K"},
	}
}

// AllConstants is the full reference table.
func AllConstants() []Constant {
	return append(QuickRef(),
		Constant{Label: "Speed of Light", Value: "2.998 × 10⁸ m/s"},
		Constant{Label: "Planck Constant", Value: "6.626 × 10⁻³⁴ J·s"},
		Constant{Label: "Boltzmann Constant", Value: "1.381 × 10⁻²³ J/K"},
		Constant{Label: "Avogadro Constant", Value: "6.022 × 10²³ mol⁻¹"},
		Constant{Label: "Elementary Charge", Value: "1.602 × 10⁻¹⁹ C"},
		Constant{Label: "Vacuum Permittivity", Value: "8.854 × 10⁻¹² F/m"},
		Constant{Label: "Vacuum Permeability", Value: "1.257 × 10⁻⁶ H/m"},
		Constant{Label: "Stefan-Boltzmann Constant", Value: "5.670 × 10⁻⁸ W/m²·K⁴"},
		Constant{Label: "Standard Gravity", Value: "9.80665 m/s²"},
		Constant{Label: "Standard Atmosphere", Value: "101 325 Pa"},
		Constant{Label: "Water Density (4 °C)", Value: "1000 kg/m³"},
		Constant{Label: "Steel Young's Modulus", Value: "≈ 200 GPa"},
	)
}
