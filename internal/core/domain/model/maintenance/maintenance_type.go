package maintenance

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Type classifies a maintenance record as planned upkeep or a repair.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypePreventive is planned, recurring upkeep.
	TypePreventive

	// TypeCorrective is a repair triggered by a fault.
	TypeCorrective
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:    "Unknown",
		TypePreventive: "Preventive",
		TypeCorrective: "Corrective",
	}
}

// Validate checks that the Type is Preventive or Corrective.
func (t Type) Validate() error {
	if t != TypePreventive && t != TypeCorrective {
		return errs.NewValueIsInvalidErrorWithCause("maintenance type is invalid",
			fmt.Errorf("%d is not a valid maintenance type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses a type name as produced by String.
func TypeFromString(str string) (Type, error) {
	switch str {
	case "Preventive":
		return TypePreventive, nil
	case "Corrective":
		return TypeCorrective, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("maintenance type is invalid",
			fmt.Errorf("%q is not a valid maintenance type", str))
	}
}
