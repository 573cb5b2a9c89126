// Package aeriesclient provides the primary entry point for constructing an
// Aeries SIS API client that implements the aeries.Client interface.
//
// It layers base URL normalization and HTTP transport construction on top of
// the resource interfaces and types defined in the aeries package. Most
// applications should import aeriesclient to build a client, then use the
// returned aeries.Client to access resource-specific clients, for example
// Schools(), Students(), Attendance(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/aeries-io/aeries/pkg/aeries"
//	  "github.com/aeries-io/aeries/pkg/aeriesclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: a district endpoint and its API certificate.
//	  cli, err := aeriesclient.NewWithCertificate("https://demo.aeries.net/aeries", "477abe9e...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  cli, err = aeriesclient.New(&aeries.Config{
//	    BaseURL:     "https://demo.aeries.net/aeries",
//	    Certificate: "477abe9e...",
//	    APIVersion:  "v5",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the aeries.Client interface
//	  schools, err := cli.Schools().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = schools
//	}
//
// # TLS
//
// Districts that self-host Aeries sometimes run with certificates a default
// trust store rejects. Config.SkipTLSVerify relaxes verification for that one
// client only; it never touches process-wide TLS settings.
package aeriesclient
