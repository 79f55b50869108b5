// Package hub talks to an Automation Hub compatible catalog API.
//
// [Client] issues authenticated requests against the configured base
// URL and classifies transport failures. [Walker] drives the client
// through the cursor-paginated collection index of one content
// [Channel] and emits one [Collection] per published collection,
// including the runtime version constraint of its highest version.
//
// The package performs no caching and no retries: any failure aborts
// the walk and is surfaced to the caller with method and path context.
package hub
