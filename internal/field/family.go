package field

import "fmt"

// Family names one of the supported closed-form solution families.
type Family string

const (
	FamilyMembrane  Family = "membrane"
	FamilyLegendre  Family = "legendre"
	FamilyMultipole Family = "multipole"
	FamilyHarmonic  Family = "harmonic"
	FamilyBessel    Family = "bessel"
)

// Families lists every family in notebook order.
func Families() []Family {
	return []Family{FamilyMembrane, FamilyLegendre, FamilyMultipole, FamilyHarmonic, FamilyBessel}
}

func (f Family) String() string { return string(f) }

// IsCurve reports whether the family samples a 1D curve rather than a 2D field.
func (f Family) IsCurve() bool {
	return f == FamilyLegendre || f == FamilyBessel
}

// ParseFamily resolves a family name.
func ParseFamily(name string) (Family, error) {
	for _, f := range Families() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown family: %s", name)
}
