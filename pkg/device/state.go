package device

// State represents the device lifecycle state. Capturing is tracked as
// a separate flag on the device and is only meaningful once the device
// is initialized.
type State string

const (
	// StateConstructed means the device object exists but Initialize has
	// not completed. Every capture and control operation is illegal.
	StateConstructed State = "constructed"
	// StateInitialized means the worker controller is allocated and
	// capture operations may proceed.
	StateInitialized State = "initialized"
)
