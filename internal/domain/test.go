package domain

// Proc is the body of a check. A nil return means the procedure completed
// normally. Assertion failures surface as a panic with *assert.Failure and
// are caught only at the execution boundary; any other error is returned.
type Proc func() error

// TestCase represents a single named check to be executed
type TestCase struct {
	Name string // Unique name within a run
	Proc Proc   // Procedure executed for this case
}
