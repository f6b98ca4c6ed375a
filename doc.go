// Package medium is a client library for Medium.com content feeds.
//
// It fetches per-user, per-publication, per-topic and per-tag RSS feeds
// plus the topics directory, and normalizes each into a stable record
// schema. Every operation is a single request/response cycle: build the
// URL, call the injected transport, validate the response, decode the
// body and format the result. Nothing is cached, retried or shared
// between calls.
//
// The transport is injected explicitly; there is no ambient fallback:
//
//	client, err := medium.NewClient(medium.WithDefaultDependencies())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	items, err := client.User(ctx, "alice")
//
// Requests can be routed through an intermediary by prepending a proxy
// prefix to every outbound URL:
//
//	client, err := medium.NewClient(
//		medium.WithDefaultDependencies(),
//		medium.WithProxyPrefix("https://proxy.example.com/"),
//	)
//
// Errors fall into three kinds, distinguishable with IsValidationError,
// IsUpstreamError and IsParseError.
package medium
