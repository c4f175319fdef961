package access

import (
	"crypto/subtle"
)

// Outcome of evaluating a pad lock against a presented code
type Outcome int

const (
	Accessible Outcome = iota
	Locked
)

// Evaluate decides whether a pad locked item can be shown.
// Public items are always accessible. Private items require the presented
// code to match the stored one; the comparison is constant time.
func Evaluate(padLocked bool, storedCode, presentedCode string) Outcome {
	if !padLocked {
		return Accessible
	}
	if presentedCode == "" {
		return Locked
	}
	if subtle.ConstantTimeCompare([]byte(storedCode), []byte(presentedCode)) == 1 {
		return Accessible
	}
	return Locked
}
