package order

import (
	"fmt"

	"giftmarket/internal/pkg/errs"
)

// VerificationMethod is the evidentiary modality used to prove a token
// presenter's right to collection. It is recorded on the order exactly once,
// at collection time. Courier handovers are shop attestations and record no
// verification method.
type VerificationMethod int

const (
	// VerifiedNone is the zero value: the order has not been collected
	// through a token verification. It is also the final value for courier
	// handovers.
	VerifiedNone VerificationMethod = iota

	// VerifiedByScan means the token was machine-read from the presenter's
	// code. Device-bound evidence, the higher-assurance modality.
	VerifiedByScan

	// VerifiedManually means the shop typed the full token by hand. Lower
	// assurance: it bypasses optical evidence and must be visibly flagged
	// to the operator.
	VerifiedManually
)

func getVerificationMethodStrings() map[VerificationMethod]string {
	return map[VerificationMethod]string{
		VerifiedNone:     "None",
		VerifiedByScan:   "Scan",
		VerifiedManually: "Manual",
	}
}

// VerificationMethodFromModality parses the wire modality tag ("scan" or
// "manual") presented by the verification caller.
func VerificationMethodFromModality(modality string) (VerificationMethod, error) {
	switch modality {
	case "scan":
		return VerifiedByScan, nil
	case "manual":
		return VerifiedManually, nil
	default:
		return VerifiedNone, errs.NewValueIsInvalidErrorWithCause("modality",
			fmt.Errorf("%q is not a valid verification modality", modality))
	}
}

// Validate checks that the method is a token-backed modality.
// VerifiedNone is not acceptable as a collection input.
func (m VerificationMethod) Validate() error {
	if m != VerifiedByScan && m != VerifiedManually {
		return errs.NewValueIsInvalidErrorWithCause("verification method",
			fmt.Errorf("%d is not a valid verification method", m))
	}
	return nil
}

// IsLowAssurance reports whether the modality bypasses device-bound
// evidence. Manual entry must be flagged to the operator and carry an extra
// confirmation step.
func (m VerificationMethod) IsLowAssurance() bool {
	return m == VerifiedManually
}

// String returns the human-readable name of the method.
func (m VerificationMethod) String() string {
	if str, ok := getVerificationMethodStrings()[m]; ok {
		return str
	}
	return "None"
}
