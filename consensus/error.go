package consensus

// These constants are used to identify a specific RuleError.
var (
	// ErrNoCoinbase indicates the first transaction of a block is missing
	// or is not a coinbase transaction.
	ErrNoCoinbase = newRuleError("ErrNoCoinbase")

	// ErrFoundersRewardAmountNotFound indicates no coinbase output carries
	// the expected founders reward amount at a height where the founders
	// reward is required.
	ErrFoundersRewardAmountNotFound = newRuleError("ErrFoundersRewardAmountNotFound")

	// ErrFoundersRewardAddressNotFound indicates a coinbase output carries
	// the founders reward amount but none of them pays the address the
	// rotation schedule requires at that height.
	ErrFoundersRewardAddressNotFound = newRuleError("ErrFoundersRewardAddressNotFound")

	// ErrFundingStreamAmountNotFound indicates no coinbase output carries
	// an active funding stream's expected amount.
	ErrFundingStreamAmountNotFound = newRuleError("ErrFundingStreamAmountNotFound")

	// ErrFundingStreamAddressNotFound indicates a coinbase output carries
	// a funding stream's amount but does not pay the receiver's scheduled
	// address.
	ErrFundingStreamAddressNotFound = newRuleError("ErrFundingStreamAddressNotFound")

	// ErrMinerSubsidyRuleBroken indicates the coinbase claims more value
	// than the block subsidy plus the block's transaction fees allow.
	ErrMinerSubsidyRuleBroken = newRuleError("ErrMinerSubsidyRuleBroken")

	// ErrShieldedDescriptionsInvalid indicates the coinbase carries
	// shielded descriptions it is not allowed to have at its height.
	ErrShieldedDescriptionsInvalid = newRuleError("ErrShieldedDescriptionsInvalid")

	// ErrShieldedRuleBroken indicates the shielded output descriptions of
	// a coinbase failed balance or signature verification.
	ErrShieldedRuleBroken = newRuleError("ErrShieldedRuleBroken")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or transaction failed due to one of the many
// validation rules. The caller can use type assertions and errors.As to
// determine the specific rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}
