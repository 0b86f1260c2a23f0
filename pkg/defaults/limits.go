package defaults

// Request and batch limits.
const (
	// MaxBulkRequests caps the number of recipes accepted in one batch request.
	MaxBulkRequests = 100

	// MaxRequestBodyBytes caps the size of an overclock request body.
	MaxRequestBodyBytes = 1 << 20

	// BatchParallelism is the default number of recipes overclocked concurrently.
	BatchParallelism = 8
)
