package server

import "context"

func registerPrintConfigurationTrigger(_ context.Context, _ *Server) {
	// SIGUSR1 does not exist on windows
}
