// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package supervisor provides process supervision for the Senderos gateway
using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("senderos")
	├── DataSupervisor ("data-layer")
	│   ├── CatalogWarmerService
	│   └── BadgerGCService (badger preference store only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in the catalog warmer or the value-log GC restarts that service only;
the HTTP server keeps answering from whatever the catalog cache holds.

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog, which writes to zerolog via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewCatalogWarmerService(cached, interval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
