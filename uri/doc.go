// Package uri inspects and rewrites URI-like strings that are not required to be well-formed:
// bare paths, protocol-less addresses, query-only or fragment-only references and Windows-style
// backslash paths.
//
// # Overview
//
// A string is treated as a sequence of segments:
//
//	https://test.com:8080/some/path?a=b&a=c#top
//	\______/\______/\___/\________/\______/\__/
//	protocol  host   port   path    query  fragment
//
// An optional "user@" prefix of the host is kept as is and never exposed.
//
// Every operation decomposes its input once, reads or replaces one segment and concatenates
// the segments back. Segments that are not targeted round-trip byte for byte:
//
//	s, _ := uri.SetPort("https://test.com/a?b#c", 8080)
//	// https://test.com:8080/a?b#c
//
// # Authority detection
//
// Without a protocol it is ambiguous whether a string starts with a host or with a path.
// [HasAuthority] answers it with a heuristic that favors paths: "test.com/some/path",
// "localhost:80" and "127.0.0.1" carry a host, while "some/path" and "file.1" do not.
// Prefix the string with '/' or with a protocol to avoid the ambiguity.
//
// # Validation
//
// Getters and mutators validate non-blank input with a [Validator] and fail with
// [ErrInvalidURI] when the check fails. [SetProtocol] and [SetHost] only log the failure,
// they are meant to build URIs from partial strings:
//
//	s, _ := uri.SetHost("some/path", "test.com")
//	s, _ = uri.SetProtocol(s, "https")
//	// https://test.com/some/path
//
// The default validator is [RFC3986Validator]. Use [New] with [WithValidator] to plug another one.
//
// Mutator arguments are not validated as a whole, but an argument holding a delimiter of
// another segment fails with [ErrInvalidInput]: a host with a ":port", a path with '?' or '#',
// a query or a query parameter with '#'.
//
// # Query parameters
//
// [Values] is an ordered multi-map that keeps key and value insertion order and distinguishes
// a bare key ("?flag") from an empty value ("?flag="). Query mutators never percent-encode,
// use [Encode] for keys and values that need it.
//
// # Paths
//
// [SanitizeStart], [SanitizeEnd] and [JoinPaths] normalize slashes:
//
//	uri.JoinPaths("https://test.com/", `\some\`, "path")
//	// https://test.com/some/path
//
// # Thread Safety
//
// All functions are pure. An [Editor] is immutable and can be shared between goroutines.
package uri
