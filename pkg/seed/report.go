package seed

// Report counts rows written by the seed command.
type Report struct {
	// Tools is the number of inserted or updated tools.
	Tools int

	// NewTools is the number of tools that did not exist before.
	NewTools int

	Repositories    int
	NewRepositories int
}
