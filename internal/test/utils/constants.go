package testUtils

const (
	Decimals = 6

	SurfPoolRPCClient = "http://127.0.0.1:8899"
	SurfPoolWSClient  = "ws://127.0.0.1:8900"

	// Set this env var to run tests that need a local validator with the
	// Drip program deployed.
	LocalnetEnvVar = "DRIP_LOCALNET"
)
