// Package aeries provides types, interfaces, and helpers for working with the
// Aeries Student Information System REST API.
//
// # Overview
//
// The aeries package defines the domain types (e.g., School, Student, Section,
// Gradebook) and the interfaces for resource-oriented clients (e.g.,
// SchoolsClient, StudentsClient). A concrete implementation of these clients
// is provided by the aeriesclient package, which wires configuration and
// transport. Most consumers should import aeriesclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := aeriesclient.New(&aeries.Config{
//	    BaseURL:     "https://demo.aeries.net/aeries/",
//	    Certificate: "477abe9e7d27439681d62f4e0de1f5e1",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  students, err := cli.Students().List(ctx, 990)
//	  if err != nil { log.Fatal(err) }
//	  _ = students
//	}
//
// # Endpoint segments
//
// Endpoint paths are expressed as ordered Segment values. A Segment is either
// present (a string or numeric path component) or Absent, which omits an
// optional trailing identifier entirely. The same accessor can therefore serve
// both "all students" and "one student" without a second path template:
//
//	cli.Raw(ctx, "", nil, aeries.Seg("schools"), aeries.SegInt(990))
//	cli.Raw(ctx, "", nil, aeries.Seg("schools"), aeries.Absent)
//
// # Errors
//
// Upstream error payloads are surfaced as *APIError with the HTTP status code
// preserved. A body that cannot be parsed as JSON is surfaced as *ParseError
// with the raw text retained. Use IsNotFound and IsUnauthorized to classify
// errors without inspecting status codes directly.
package aeries
