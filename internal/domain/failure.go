package domain

// FailureCase represents a single failed test case inside a unit's output.
type FailureCase struct {
	TestName string `json:"test_name"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message,omitempty"`
}
