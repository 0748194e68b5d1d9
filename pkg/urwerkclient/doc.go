// Package urwerkclient provides the primary entry point for constructing
// urwerk API clients that implement the interfaces of the urwerk package.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces defined in the urwerk package. Most applications should import
// urwerkclient to build a client, then use the returned aggregate to access
// resource-specific clients, for example System(), Detectables(), Spectral().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/neusy/urwerk-client/pkg/urwerk"
//	  "github.com/neusy/urwerk-client/pkg/urwerkclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API URL. "http://" is assumed for bare hosts.
//	  sensor, err := urwerkclient.NewColorsensorWithURL("10.0.0.5/api/v1")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with logging, a custom transport and interceptors:
//	  sensor, err = urwerkclient.NewColorsensor(&urwerk.Config{
//	    APIURL:    "http://10.0.0.5/api/v1",
//	    UserAgent: "line-3-controller/1.0",
//	    Logger:    myLogger,
//	    Debug:     true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  detectables, err := sensor.Detectables().List(ctx, urwerk.DetectableFilter{})
//	  if err != nil { log.Fatal(err) }
//	  _ = detectables
//	}
//
// # Device database and releases
//
// NewDDB and NewReleases build clients for the device database and the
// firmware release service from the same Config type.
package urwerkclient
